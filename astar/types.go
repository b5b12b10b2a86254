package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/neighbors"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that New received a nil *grid.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilSource indicates that New received a nil neighbors.Source.
	ErrNilSource = errors.New("astar: neighbor source is nil")

	// ErrSourceMismatch indicates a neighbor source built for another grid.
	ErrSourceMismatch = errors.New("astar: neighbor source belongs to a different grid")

	// ErrInvalidIndex indicates a start or goal index outside the grid.
	ErrInvalidIndex = grid.ErrInvalidIndex

	// ErrImpassableEndpoint indicates that the start or goal cell has cost 0
	// and therefore can never be part of a path.
	ErrImpassableEndpoint = errors.New("astar: start or goal is impassable")

	// ErrNoPath indicates that the goal is not reachable from the start.
	ErrNoPath = errors.New("astar: no path found")

	// ErrExpansionLimit indicates that the search expanded MaxExpansions
	// cells without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Result is the outcome of a successful search.
//
// Path     – cells after the start up to and including the goal.
// Cost     – sum of step costs along Path (terrain + Manhattan per step).
// Expanded – cells whose neighbors were examined.
// Pushed   – frontier insertions, the start included.
type Result struct {
	Path     []uint32
	Cost     uint64
	Expanded int
	Pushed   int
}

// Query is one start/goal pair for FindAll.
type Query struct {
	Start, Goal uint32
}

// BatchResult pairs a Query with its outcome. Err holds the per-query
// failure (ErrNoPath, ErrImpassableEndpoint, ...), or the context error if the
// query was never started.
type BatchResult struct {
	Query
	Result
	Err error
}

// Outcome classifies a finished search for logging and metrics.
type Outcome string

const (
	OutcomeFound   Outcome = "found"
	OutcomeNoPath  Outcome = "no_path"
	OutcomeInvalid Outcome = "invalid"
	OutcomeLimit   Outcome = "limit"
	OutcomeAborted Outcome = "aborted"
)

// outcomeOf maps a search error to its Outcome.
func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, ErrInvalidIndex), errors.Is(err, ErrImpassableEndpoint):
		return OutcomeInvalid
	default:
		return OutcomeAborted
	}
}

// Stats describes one finished search. It is handed to the Observer.
type Stats struct {
	Start, Goal uint32
	Outcome     Outcome
	Expanded    int
	Pushed      int
	PathLen     int
	Cost        uint64
	Elapsed     time.Duration
}

// Observer receives Stats after every search. Implementations must be safe
// for concurrent use when the Finder is shared between goroutines.
type Observer interface {
	ObserveSearch(Stats)
}

// Options configures a Finder.
//
// MaxExpansions – cap on expanded cells per search; 0 disables the cap.
// Workers       – concurrent searches run by FindAll; defaults to GOMAXPROCS.
// OnExpand      – runs before a cell's neighbors are examined; an error aborts.
// OnRelax       – runs whenever a cell gets a better cost (sentinel excluded).
// Logger        – receives one Debug record per search.
// Observer      – receives Stats per search; nil disables.
// Regions       – region labels used to reject disconnected queries early.
type Options struct {
	MaxExpansions int
	Workers       int
	OnExpand      func(idx uint32) error
	OnRelax       func(from, to uint32, cost uint64)
	Logger        *slog.Logger
	Observer      Observer
	Regions       *neighbors.Regions

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the Options used when none are given:
//   - MaxExpansions: 0 (unbounded)
//   - Workers:       runtime.GOMAXPROCS(0)
//   - OnExpand, OnRelax: no-ops
//   - Logger:        discards everything
//   - Observer:      nil
//   - Regions:       nil (every query is searched)
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
		Workers:       runtime.GOMAXPROCS(0),
		OnExpand:      func(uint32) error { return nil },
		OnRelax:       func(uint32, uint32, uint64) {},
		Logger:        slog.New(slog.DiscardHandler),
		Observer:      nil,
	}
}

// WithMaxExpansions bounds the number of expanded cells per search.
//
//	n > 0: fail with ErrExpansionLimit once n cells were expanded
//	n == 0: no limit
//	n < 0: invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithWorkers sets how many searches FindAll runs at once.
// n == 0 selects GOMAXPROCS; n < 0 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithOnExpand registers a hook run before each expansion.
func WithOnExpand(fn func(idx uint32) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a hook run on every successful relaxation.
func WithOnRelax(fn func(from, to uint32, cost uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver attaches an Observer, e.g. metrics.Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithRegions lets the Finder answer ErrNoPath without searching when start
// and goal lie in different regions. The regions must be built for the same
// grid as the Finder.
func WithRegions(r *neighbors.Regions) Option {
	return func(o *Options) {
		o.Regions = r
	}
}
