// Package search provides tunable options, result types and error
// definitions for path search over a gridgraph.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidInput is the class of precondition violations by the caller.
	// Every more specific input error below wraps it.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrStartOutOfBounds is returned when start lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start out of bounds", ErrInvalidInput)

	// ErrGoalOutOfBounds is returned when goal lies outside the grid.
	ErrGoalOutOfBounds = fmt.Errorf("%w: goal out of bounds", ErrInvalidInput)

	// ErrStartBlocked is returned when start is a wall.
	ErrStartBlocked = fmt.Errorf("%w: start is blocked", ErrInvalidInput)

	// ErrGoalBlocked is returned when goal is a wall.
	ErrGoalBlocked = fmt.Errorf("%w: goal is blocked", ErrInvalidInput)

	// ErrUnknownStrategy is returned for a Strategy outside BFS/DFS/AStar.
	ErrUnknownStrategy = fmt.Errorf("%w: unknown strategy", ErrInvalidInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidPath is returned by ValidatePath for a malformed path.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Strategy selects the frontier discipline of a search.
type Strategy uint8

const (
	// BFS expands cells first-in-first-out; paths have the fewest steps.
	BFS Strategy = iota
	// DFS expands cells last-in-first-out; paths are valid but not minimal.
	DFS
	// AStar expands cells by ascending g + Manhattan(h); paths have the fewest steps.
	AStar
)

var strategyNames = [...]string{BFS: "bfs", DFS: "dfs", AStar: "astar"}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, AStar}
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool { return int(s) < len(strategyNames) }

// String returns the short lowercase name ("bfs", "dfs", "astar").
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

// ParseStrategy decodes a strategy name, case-insensitively.
// "a*" and "a-star" are accepted as aliases of "astar".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Result holds the outcome of one search invocation.
//   - Path: cells from start to goal, nil when not found.
//   - Found: false means the goal is unreachable (or the budget ran out).
//   - Expanded: cells popped and expanded.
//   - Enqueued: frontier pushes, the start entry included.
//   - Truncated: the search was abandoned by WithMaxExpansions.
type Result struct {
	Strategy  Strategy         `json:"strategy"`
	Path      []gridgraph.Cell `json:"path"`
	Found     bool             `json:"found"`
	Expanded  int              `json:"expanded"`
	Enqueued  int              `json:"enqueued"`
	Truncated bool             `json:"truncated,omitempty"`
}

// Steps returns the number of moves on the path, or -1 when not found.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, abandons the search after that many expansions.
	// A value of 0 disables the budget.
	MaxExpansions int

	// OnEnqueue is called when a cell is pushed onto the frontier,
	// with the number of steps from start.
	OnEnqueue func(c gridgraph.Cell, depth int)

	// OnExpand is called when a cell is popped and expanded.
	OnExpand func(c gridgraph.Cell, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no expansion budget
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnEnqueue:     func(gridgraph.Cell, int) {},
		OnExpand:      func(gridgraph.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: abandon after n expansions, reported as not found with Truncated set
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback to run on every frontier push.
func WithOnEnqueue(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run on every expansion.
func WithOnExpand(fn func(c gridgraph.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
