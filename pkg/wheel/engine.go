// pkg/wheel/engine.go

package wheel

import (
	"math/rand"
	"time"

	cerr "github.com/cockroachdb/errors"
)

// DefaultPhases is the number of intermediate rotation draws before the
// final selection.
const DefaultPhases = 5

// Engine draws uniform selections from an option list. It owns its random
// source; nothing else in the process shares or reseeds it.
type Engine struct {
	rng    *rand.Rand
	phases int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the generator seed. Intended for reproducing a run under
// test; the default path seeds from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPhases overrides the rotation phase count.
func WithPhases(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.phases = n
		}
	}
}

// NewEngine returns an engine seeded from the current time unless WithSeed
// is supplied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		phases: DefaultPhases,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Select draws one index uniformly over [0, len(options)-1] and returns it
// with the option text. Errors only when the collection precondition was
// violated.
func (e *Engine) Select(options OptionList) (Selection, error) {
	if len(options) < MinOptions {
		return Selection{}, cerr.Newf("need at least %d options, got %d", MinOptions, len(options))
	}
	i := e.rng.Intn(len(options))
	return Selection{Index: i, Text: options[i]}, nil
}

// Spin draws the intermediate rotation phases followed by the final
// selection, all from the same generator in sequence.
func (e *Engine) Spin(options OptionList) (SpinResult, error) {
	if len(options) < MinOptions {
		return SpinResult{}, cerr.Newf("need at least %d options, got %d", MinOptions, len(options))
	}
	result := SpinResult{Phases: make([]Selection, 0, e.phases)}
	for p := 0; p < e.phases; p++ {
		i := e.rng.Intn(len(options))
		result.Phases = append(result.Phases, Selection{Index: i, Text: options[i]})
	}
	final, err := e.Select(options)
	if err != nil {
		return SpinResult{}, err
	}
	result.Final = final
	return result, nil
}
