// Command ripplerush-web serves the WebAssembly build of the game.
//
// Build the assets into ./web before starting the server:
//
//	go generate ./cmd/ripplerush-web
package main

//go:generate mkdir -p ../../web
//go:generate sh -c "GOOS=js GOARCH=wasm go build -o ../../web/game.wasm ../.."
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" ../../web/wasm_exec.js"

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/samber/lo"

	"github.com/iburimskiy/ripple-rush/internal/config"
	"github.com/iburimskiy/ripple-rush/internal/web"
)

func main() {
	cfg := config.Load()
	logger := cfg.Logger("web")
	logger.Info("starting", "mode", lo.Ternary(cfg.Production, "production", "development"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := web.Serve(ctx, cfg, logger); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}
