package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ripple-rush/internal/config"
	"github.com/iburimskiy/ripple-rush/internal/game"
	"github.com/iburimskiy/ripple-rush/internal/screen"
)

func main() {
	headless := flag.Bool("headless", false, "play one scripted session without a window and print the score")
	rate := flag.Float64("cps", 6, "clicks per second for --headless")
	envFile := flag.String("env", "", "optional .env file")
	flag.Parse()

	var cfg config.Config
	if *envFile != "" {
		cfg = config.Load(*envFile)
	} else {
		cfg = config.Load()
	}
	logger := cfg.Logger("ripple")
	log.SetDefault(logger)

	if *headless {
		if err := runHeadless(logger, *rate); err != nil {
			logger.Fatal("headless run failed", "err", err)
		}
		return
	}

	if err := runWindow(cfg, logger); err != nil {
		fatal(logger, err)
	}
}

func runWindow(cfg config.Config, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title + " - Click the canvas as fast as you can, Space: Start, T: Theme, Esc/Q: Quit")
	ebiten.SetTPS(cfg.TPS)

	driver := game.NewDriver(game.SystemClock, game.WithLogger(logger))
	defer driver.Cancel()

	app := screen.NewApp(driver, screen.ThemeByName(cfg.Theme), logger)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// runHeadless plays one session on the wall clock, clicking at random
// canvas positions at roughly the given rate.
func runHeadless(logger *log.Logger, cps float64) error {
	if cps <= 0 {
		return fmt.Errorf("clicks per second must be positive, got %v", cps)
	}
	driver := game.NewDriver(game.SystemClock,
		game.WithLogger(logger),
		game.WithFrameHook(func(f game.Frame) {
			logger.Debug("ripples", "live", len(f.Ripples), "state", f.State)
		}),
	)
	defer driver.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), game.Duration+game.Lifetime+5*time.Second)
	defer cancel()

	loop := game.NewLoop(driver, game.SystemClock, game.RefreshInterval)
	loop.Start()
	defer loop.Stop()
	driver.Start()

	interval := time.Duration(float64(time.Second) / cps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("session did not finish: %w", ctx.Err())
		case <-ticker.C:
			f := driver.Frame()
			if f.State == game.Finished && !f.Active {
				logger.Info("headless session complete", "clicks", f.Clicks, "cps", f.ScoreText())
				return nil
			}
			driver.Click(rand.Float64()*config.CanvasWidth, rand.Float64()*config.CanvasHeight)
		}
	}
}
