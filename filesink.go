// FILE: tinylog-go/tinylog/filesink.go

package tinylog

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FileSink appends formatted lines to a single log file and rotates it by
// size. File logging is best-effort: directory creation, open, rename, and
// write failures are all tolerated and never surface to the producer.
type FileSink struct {
	mu       sync.Mutex // serializes all writers to this sink
	path     string
	maxBytes int64 // rotation threshold; 0 disables rotation
	maxFiles int   // primary file plus maxFiles-1 numbered backups
	utc      bool

	file *os.File
	size int64
}

// NewFileSink creates a sink writing to path. A maxBytes of 0 disables
// rotation entirely; maxFiles below 1 is normalized to 1 (no backups kept).
// The file is opened eagerly but an open failure is tolerated; the next
// write retries.
func NewFileSink(path string, maxBytes int64, maxFiles int, utc bool) *FileSink {
	if maxFiles < 1 {
		maxFiles = 1
	}
	s := &FileSink{
		path:     path,
		maxBytes: maxBytes,
		maxFiles: maxFiles,
		utc:      utc,
	}
	s.mu.Lock()
	_ = s.openFile()
	s.mu.Unlock()
	return s
}

// Write rotates first when the current file has reached the size
// threshold, then appends one formatted line. Colorization is never
// applied to file output.
func (s *FileSink) Write(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxBytes > 0 && s.size >= s.maxBytes {
		s.rotate()
	}
	if s.file == nil {
		if err := s.openFile(); err != nil {
			return
		}
	}

	line := FormatLine(m, s.utc, false)
	n, _ := s.file.Write(append([]byte(line), '\n'))
	s.size += int64(n)
}

// openFile is idempotent: opening an already-open file is a no-op. The
// parent directory is created when missing, and a missing file counts as
// size 0.
func (s *FileSink) openFile() error {
	if s.file != nil {
		return nil
	}
	if dir := filepath.Dir(s.path); dir != "" {
		_ = os.MkdirAll(dir, 0755)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open log file '%s': %w", s.path, err)
	}
	s.file = f
	s.size = 0
	if fi, errStat := f.Stat(); errStat == nil {
		s.size = fi.Size()
	}
	return nil
}

// rotate shifts existing backups upward by index and reopens a fresh
// primary file. The shift overwrites the backup at maxFiles-1, evicting
// the oldest content without an explicit delete. A failed rename is
// retried once after removing the destination; residual failure is
// tolerated.
func (s *FileSink) rotate() {
	if s.file != nil {
		_ = s.file.Close()
		s.file = nil
	}

	for i := s.maxFiles - 1; i >= 1; i-- {
		from := s.path
		if i > 1 {
			from = s.backupPath(i - 1)
		}
		if _, err := os.Stat(from); err != nil {
			continue
		}
		to := s.backupPath(i)
		if err := os.Rename(from, to); err != nil {
			_ = os.Remove(to)
			_ = os.Rename(from, to)
		}
	}

	s.size = 0
	_ = s.openFile()
}

// backupPath returns the numbered backup name; index 1 is most recent.
func (s *FileSink) backupPath(i int) string {
	return s.path + "." + strconv.Itoa(i)
}

// Close syncs and releases the file handle. A later Write reopens the
// file lazily, so Close does not retire the sink.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Sync()
	if closeErr := s.file.Close(); err == nil {
		err = closeErr
	}
	s.file = nil
	if err != nil {
		return fmtErrorf("failed to close log file '%s': %w", s.path, err)
	}
	return nil
}
