//go:build !js

package main

import (
	"github.com/charmbracelet/log"
	"github.com/ncruces/zenity"
)

// fatal shows err in a dialog and exits.
func fatal(logger *log.Logger, err error) {
	if derr := zenity.Error(err.Error(), zenity.Title("Ripple Rush"), zenity.ErrorIcon); derr != nil {
		logger.Warn("could not show error dialog", "err", derr)
	}
	logger.Fatal("ripple rush stopped", "err", err)
}
