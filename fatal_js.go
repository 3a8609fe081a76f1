//go:build js

package main

import "github.com/charmbracelet/log"

func fatal(logger *log.Logger, err error) {
	logger.Fatal("ripple rush stopped", "err", err)
}
