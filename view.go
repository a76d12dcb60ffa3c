//go:build !raylib

package main

import (
	"github.com/chazu/strata/pkg/config"
	"github.com/chazu/strata/pkg/kernel/raylib"
)

// view needs a window. Without the raylib tag it reports why it cannot
// open one.
func view(cfg *config.Config, path string) error {
	_, err := raylib.New()
	return err
}
