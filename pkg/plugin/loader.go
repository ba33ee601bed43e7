// Package plugin acquires and validates optional parser plugins.
//
// Plugins register a Factory under a name from init(). A Loader acquires
// the named plugin, checks that it carries a parser at
// configs → flat → languageOptions → parser, and reports an Outcome. Every
// failure degrades to StateUnavailable with a single operator diagnostic;
// Load never panics and never returns an error.
//
//	loader := plugin.NewLoader("mdx", plugin.WithDiagnostics(plugin.SlogDiagnostics{Logger: logger}))
//	if p, ok := loader.Load(ctx).Ready(); ok {
//		// install parser.NewConsistencyFilter(p.Parser)
//	}
package plugin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// AcquireFunc obtains a raw plugin module by name.
type AcquireFunc func(ctx context.Context, name string) (*Module, error)

// Loader acquires one plugin once. Create one per configuration build.
type Loader struct {
	name    string
	acquire AcquireFunc
	diag    Diagnostics

	once    sync.Once
	outcome Outcome
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithAcquirer replaces registry acquisition.
func WithAcquirer(fn AcquireFunc) LoaderOption {
	return func(l *Loader) {
		if fn != nil {
			l.acquire = fn
		}
	}
}

// WithDiagnostics sets the sink for operator warnings.
func WithDiagnostics(d Diagnostics) LoaderOption {
	return func(l *Loader) {
		if d != nil {
			l.diag = d
		}
	}
}

// NewLoader creates a loader for the named plugin.
func NewLoader(name string, opts ...LoaderOption) *Loader {
	l := &Loader{
		name:    name,
		acquire: Acquire,
		diag:    SlogDiagnostics{Logger: slog.Default()},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name returns the plugin name the loader acquires.
func (l *Loader) Name() string {
	return l.name
}

// Load acquires and validates the plugin. The first call does the work;
// later calls return the same Outcome without emitting diagnostics again.
func (l *Loader) Load(ctx context.Context) Outcome {
	l.once.Do(func() {
		l.outcome = l.load(ctx)
	})
	return l.outcome
}

func (l *Loader) load(ctx context.Context) Outcome {
	mod, err := l.safeAcquire(ctx)
	if err != nil {
		l.diag.Warn(CategoryLoadFailed,
			fmt.Sprintf("[flatlint] plugin %q not found or failed to load, support disabled: %v", l.name, err))
		return unavailableOutcome(ReasonLoadFailed, err)
	}

	p, err := Validate(l.name, mod)
	if err != nil {
		l.diag.Warn(CategoryIncompatible,
			fmt.Sprintf("[flatlint] plugin %q structure incompatible, support may be limited: %v", l.name, err))
		return unavailableOutcome(ReasonIncompatible, err)
	}
	return readyOutcome(p)
}

// safeAcquire guards against custom acquirers that panic.
func (l *Loader) safeAcquire(ctx context.Context) (mod *Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			mod = nil
			err = fmt.Errorf("acquire plugin %q panicked: %v", l.name, r)
		}
	}()
	if ctx == nil {
		ctx = context.Background()
	}
	mod, err = l.acquire(ctx, l.name)
	if err == nil && mod == nil {
		err = ErrNilModule
	}
	return mod, err
}
