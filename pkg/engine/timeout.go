package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chazu/strata/pkg/recipe"
)

// EvalTimeout is the default hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

var (
	// ErrTimeout is returned when a script runs past the engine timeout.
	ErrTimeout = errors.New("evaluation timed out")
	// ErrSuperseded is returned to a caller whose evaluation finished
	// after a newer one had started.
	ErrSuperseded = errors.New("evaluation superseded by newer request")
)

// outcome carries one evaluation back from the worker goroutine.
type outcome struct {
	recipe *recipe.Recipe
	errors []EvalError
	err    error
}

// current reports whether gen is still the latest evaluation.
func (e *Engine) current(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return gen == e.generation
}

// await blocks until the worker reports on ch, the timeout passes or ctx
// is done. A worker abandoned this way keeps running; ch is buffered so
// its late result is simply dropped.
func (e *Engine) await(ctx context.Context, gen uint64, timeout time.Duration, ch <-chan outcome) (*recipe.Recipe, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		if !e.current(gen) {
			return nil, nil, ErrSuperseded
		}
		return out.recipe, out.errors, out.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("evaluation canceled: %w", ctx.Err())
	}
}
