// FILE: examples/fasthttp/main.go

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/tinylog-go/tinylog"
	"github.com/tinylog-go/tinylog/compat"
)

func main() {
	// Create and configure logger
	cfg := tinylog.DefaultConfig()
	err := cfg.ApplyOverride(
		"directory=/var/log/fasthttp",
		"level=info",
		"enable_file=true",
		"async=true",
		"buffer_size=2048",
	)
	if err != nil {
		panic(err)
	}
	logger := tinylog.New(cfg)
	defer logger.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(tinylog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "tinylog-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	if strings.Contains(msg, "connection cannot be served") {
		return tinylog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return tinylog.LevelError
	}
	return -1
}
