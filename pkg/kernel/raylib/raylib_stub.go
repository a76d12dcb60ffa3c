//go:build !raylib

package raylib

import (
	"errors"

	"github.com/chazu/strata/pkg/kernel"
)

// New returns an error indicating raylib is not available.
// Build with -tags=raylib to enable.
func New() (kernel.Sink, error) {
	return nil, errors.New("raylib sink not available: build with -tags=raylib")
}
