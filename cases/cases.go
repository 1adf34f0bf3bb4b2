package cases

import (
	"fmt"
	"slices"
	"testing"

	"github.com/zero-day-ai/enumkit/enum"
)

// Mode selects how WithNames filters cases.
type Mode int

const (
	// Include keeps only the named cases.
	Include Mode = iota
	// Exclude drops the named cases.
	Exclude
)

var modes = enum.MustNew("cases.Mode",
	enum.M("INCLUDE", Include),
	enum.M("EXCLUDE", Exclude),
)

// Modes returns the set of filter modes.
func Modes() *enum.Set[Mode] {
	return modes
}

// ParseMode returns the mode declared under name ("INCLUDE" or "EXCLUDE").
func ParseMode(name string) (Mode, error) {
	return modes.Lookup(name)
}

func (m Mode) String() string {
	if name, ok := modes.NameOf(m); ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Option configures case selection.
type Option func(*options)

type options struct {
	names   []string
	mode    Mode
	factory Factory
}

// WithNames restricts cases by name. With no names every case is kept.
func WithNames(names ...string) Option {
	return func(o *options) {
		o.names = append(o.names, names...)
	}
}

// WithMode sets whether WithNames includes or excludes. Default: Include.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithFactory sets the factory used to instantiate hierarchy leaves.
// Default: DefaultFactory.
func WithFactory(f Factory) Option {
	return func(o *options) {
		o.factory = f
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		mode:    Include,
		factory: DefaultFactory{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) keep(name string) bool {
	if len(o.names) == 0 {
		return true
	}
	named := slices.Contains(o.names, name)
	if o.mode == Exclude {
		return !named
	}
	return named
}

// Values returns the constants of s selected by opts, in declaration order.
func Values[T comparable](s *enum.Set[T], opts ...Option) []T {
	o := newOptions(opts)

	var out []T
	for name, v := range s.All() {
		if o.keep(name) {
			out = append(out, v)
		}
	}
	return out
}

// Run runs fn as a subtest for each constant of s selected by opts.
func Run[T comparable](t *testing.T, s *enum.Set[T], fn func(t *testing.T, v T), opts ...Option) {
	t.Helper()
	o := newOptions(opts)

	for name, v := range s.All() {
		if !o.keep(name) {
			continue
		}
		t.Run(name, func(t *testing.T) {
			fn(t, v)
		})
	}
}
