// FILE: tinylog-go/tinylog/builder.go

package tinylog

// Builder provides a fluent API for assembling a configured Logger.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a Logger with the built configuration, attaching the
// enabled sinks and starting the async consumer when requested.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg), nil
}

// Level sets the log level threshold.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the log level threshold from a name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// UTC selects UTC timestamp display.
func (b *Builder) UTC(utc bool) *Builder {
	b.cfg.UTC = utc
	return b
}

// Directory sets the log directory for the default file sink.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Name sets the base file name for the default file sink.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Extension sets the file extension for the default file sink.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// Console enables or disables the console sink.
func (b *Builder) Console(enable bool) *Builder {
	b.cfg.EnableConsole = enable
	return b
}

// Color enables or disables ANSI colorization on the console sink.
func (b *Builder) Color(enable bool) *Builder {
	b.cfg.ConsoleColor = enable
	return b
}

// File enables or disables the default rotating file sink.
func (b *Builder) File(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// MaxSizeKB sets the rotation threshold in KB. Zero disables rotation.
func (b *Builder) MaxSizeKB(size int64) *Builder {
	b.cfg.MaxSizeKB = size
	return b
}

// MaxSizeMB sets the rotation threshold in MB. Convenience.
func (b *Builder) MaxSizeMB(size int64) *Builder {
	b.cfg.MaxSizeKB = size * 1024
	return b
}

// MaxFiles sets the retained file count (primary plus backups).
func (b *Builder) MaxFiles(count int64) *Builder {
	b.cfg.MaxFiles = count
	return b
}

// Async enables the background queue and consumer.
func (b *Builder) Async(enable bool) *Builder {
	b.cfg.Async = enable
	return b
}

// BufferSize sets the async queue capacity.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// Example usage:
// logger, err := tinylog.NewBuilder().
//
//	Directory("/var/log/app").
//	LevelString("debug").
//	File(true).
//	MaxSizeMB(5).
//	Async(true).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("logger initialized")
//
// }
