package neighbors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors for neighbor enumeration.
var (
	// ErrNilGrid indicates that NewPolicy received a nil *grid.Grid.
	ErrNilGrid = errors.New("neighbors: grid is nil")

	// ErrNilPolicy indicates that BuildCache received a nil *Policy.
	ErrNilPolicy = errors.New("neighbors: policy is nil")

	// ErrNilSource indicates that BuildRegions received a nil Source.
	ErrNilSource = errors.New("neighbors: source is nil")

	// ErrGridMismatch indicates a Source that enumerates a different grid.
	ErrGridMismatch = errors.New("neighbors: source belongs to a different grid")

	// ErrUnknownMode indicates a Mode outside the defined constants.
	ErrUnknownMode = errors.New("neighbors: unknown mode")

	// ErrInvalidLink indicates a vertical link whose index is out of bounds or
	// whose target floor does not exist.
	ErrInvalidLink = errors.New("neighbors: invalid vertical link")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("neighbors: invalid option supplied")
)

// Source yields the traversable neighbors of a cell.
//
// Implementations append into buf[:0] or return a view of their own storage;
// either way the caller must treat the result as read-only and must not keep
// it past the next call that reuses buf.
type Source interface {
	Neighbors(idx uint32, buf []uint32) []uint32
}

// Mode selects which planar cells count as adjacent.
type Mode int

const (
	// Omnidirectional enumerates the 4 orthogonal and 4 diagonal cells.
	// Diagonals may cut through wall corners.
	Omnidirectional Mode = iota

	// CardinalOnly enumerates the 4 orthogonal cells only (N, W, E, S).
	CardinalOnly
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Omnidirectional:
		return "omnidirectional"
	case CardinalOnly:
		return "cardinal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return m == Omnidirectional || m == CardinalOnly }

// Degree returns the maximum number of planar neighbors under m.
func (m Mode) Degree() int {
	if m == CardinalOnly {
		return 4
	}
	return 8
}

// ParseMode maps a case-insensitive name back to a Mode.
// Accepted: "omnidirectional", "omni", "8"; "cardinal", "cardinal-only", "4".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "omnidirectional", "omni", "8":
		return Omnidirectional, nil
	case "cardinal", "cardinal-only", "4":
		return CardinalOnly, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Options configures NewPolicy and BuildCache. Each field belongs to one
// constructor; passing its option to the other one is an ErrOptionViolation.
//
// Links   – read by NewPolicy only; nil means a purely planar policy.
// Workers – read by BuildCache only. Must be ≥ 0; 0 selects GOMAXPROCS.
type Options struct {
	Links   *Links
	Workers int

	// internal error recorded during option parsing
	err error

	// options explicitly supplied, checked against the consuming constructor
	linksSet   bool
	workersSet bool
}

// Option is a functional option for NewPolicy and BuildCache.
type Option func(*Options)

// DefaultOptions returns Options with no vertical links and
// Workers = runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		Links:   nil,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithLinks attaches vertical links to the policy. BuildCache rejects it.
func WithLinks(l *Links) Option {
	return func(o *Options) {
		o.Links = l
		o.linksSet = true
	}
}

// WithWorkers sets the number of goroutines BuildCache may run at once.
// NewPolicy rejects it.
//
//	n > 0: at most n workers
//	n == 0: GOMAXPROCS workers
//	n < 0: invalid → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.workersSet = true
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

func applyPolicyOptions(opts []Option) (Options, error) {
	cfg := applyOptions(opts)
	if cfg.err == nil && cfg.workersSet {
		cfg.err = fmt.Errorf("%w: WithWorkers applies to BuildCache, not NewPolicy", ErrOptionViolation)
	}

	return cfg, cfg.err
}

func applyCacheOptions(opts []Option) (Options, error) {
	cfg := applyOptions(opts)
	if cfg.err == nil && cfg.linksSet {
		cfg.err = fmt.Errorf("%w: WithLinks applies to NewPolicy, not BuildCache", ErrOptionViolation)
	}

	return cfg, cfg.err
}

func applyOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
