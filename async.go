// FILE: tinylog-go/tinylog/async.go

package tinylog

import (
	"io"
	"time"
)

// Start switches the logger to asynchronous mode: producers enqueue onto a
// bounded FIFO queue and a single background consumer performs the sink
// fan-out. Safe to call more than once; only the first call takes effect.
func (l *Logger) Start() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	queue := make(chan Message, l.bufferSize.Load())
	l.activeQueue.Store(queue)
	l.processorExited.Store(false)
	go l.consume(queue)
}

// consume pops messages in FIFO order until the queue is closed, drains
// what remains, then exits.
func (l *Logger) consume(queue <-chan Message) {
	defer l.processorExited.Store(true)
	for m := range queue {
		l.dispatch(m)
	}
}

// currentQueue safely retrieves the active queue.
func (l *Logger) currentQueue() chan Message {
	return l.activeQueue.Load().(chan Message)
}

// sendMessage pushes onto the queue without ever blocking the producer.
// On overflow the message is dropped and counted; the next successful send
// emits a report carrying the count, so drops stay observable.
func (l *Logger) sendMessage(m Message) {
	defer func() {
		if r := recover(); r != nil { // send on a queue closed by Stop
			l.droppedLogs.Add(1)
		}
	}()

	select {
	case l.currentQueue() <- m:
		if dropped := l.droppedLogs.Swap(0); dropped > 0 {
			l.sendDropReport(dropped)
		}
	default:
		l.droppedLogs.Add(1)
	}
}

// sendDropReport enqueues an error-level message reporting dropped logs.
// If the report itself cannot be queued, the count is restored so a later
// send can retry.
func (l *Logger) sendDropReport(count uint64) {
	defer func() {
		if r := recover(); r != nil {
			l.droppedLogs.Add(count)
		}
	}()

	file, line, fn := callSite(2)
	report := newMessage(LevelError, file, line, fn,
		[]any{"log queue overflow, dropped ", count, " message(s)"})

	select {
	case l.currentQueue() <- report:
	default:
		l.droppedLogs.Add(count)
	}
}

// Stop leaves asynchronous mode. The queue is closed as the shutdown
// signal; the consumer drains remaining messages and exits. Stop waits up
// to the timeout (default 1s) for the consumer, and returns an error only
// when it fails to exit in time.
func (l *Logger) Stop(timeout ...time.Duration) error {
	if !l.started.CompareAndSwap(true, false) {
		return nil // Not in async mode
	}

	effective := defaultStopTimeout
	if len(timeout) > 0 {
		effective = timeout[0]
	}

	queue := l.currentQueue()

	// Swap in a pre-closed channel so in-flight producers fail fast and
	// fall back to the drop counter, then signal the consumer.
	closed := make(chan Message)
	close(closed)
	l.activeQueue.Store(closed)
	close(queue)

	deadline := time.Now().Add(effective)
	for time.Now().Before(deadline) {
		if l.processorExited.Load() {
			return nil
		}
		time.Sleep(minWaitTime)
	}
	if !l.processorExited.Load() {
		return fmtErrorf("consumer did not exit within timeout (%v)", effective)
	}
	return nil
}

// Shutdown drains any pending asynchronous messages and then releases
// every sink holding a file handle. Messages already enqueued are
// dispatched before the handles close. Only the first call takes effect.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.shutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	var finalErr error
	if l.started.Load() {
		finalErr = l.Stop(timeout...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sinks {
		if c, ok := s.(io.Closer); ok {
			if err := c.Close(); err != nil {
				finalErr = combineErrors(finalErr, err)
			}
		}
	}
	return finalErr
}
