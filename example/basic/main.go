// FILE: example/basic/main.go

package main

import (
	"time"

	"github.com/tinylog-go/tinylog"
)

func main() {
	logger, err := tinylog.NewBuilder().
		LevelString("trace").
		Directory("logs").
		Name("basic").
		Extension("log").
		Console(true).
		Color(true).
		File(true).
		MaxSizeMB(2).
		MaxFiles(3).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	logger.Trace("fine-grained detail")
	logger.Debug("debugging value: ", 42)
	logger.Info("hello ", 123)
	logger.Warn("disk usage at ", 91.5, "%")
	logger.Error("could not reach upstream")
	logger.Critical("unrecoverable state")

	func() {
		defer logger.Scope("loading-assets").End()
		time.Sleep(25 * time.Millisecond)
	}()

	// Package-level default logger works the same way
	tinylog.SetLevel(tinylog.LevelDebug)
	tinylog.AddConsoleSink(false)
	tinylog.Info("logged through the process default")
	tinylog.Shutdown()
}
