// SPDX-License-Identifier: MIT

// Package logger hands out named loggers to the engine packages.
//
// A package asks for its logger once, at init time, with Named. The
// backend behind it is built on the first call that needs it, so a program
// can still install its own Factory from main. Until then, and by default,
// backends are zap loggers at WarnLevel (see NewZap).
//
//	var plog = logger.Named("interval")
//	...
//	plog.Debugf("subtract %s: %s", iv, set)
//
// Once any backend exists the factory is fixed; SetFactory then fails with
// ErrFactoryLocked.
package logger

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Level is a log severity. A logger emits entries at or above its level.
type Level int8

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	// CriticalLevel entries are programming errors.
	CriticalLevel
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case CriticalLevel:
		return "critical"
	default:
		return "unknown"
	}
}

// Logger is what the engine packages log through.
type Logger interface {
	SetLevel(Level)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Panicf(format string, args ...any)
}

// Factory builds the backend for the logger called name.
type Factory func(name string) Logger

// ErrFactoryLocked is returned by SetFactory once a factory was installed
// or a backend was already built.
var ErrFactoryLocked = errors.New("logger: factory can no longer be changed")

type registry struct {
	mu      sync.Mutex
	factory Factory
	built   bool
	named   map[string]*deferred
}

var reg = registry{named: make(map[string]*deferred)}

// SetFactory installs f for every backend built from now on. It can be
// called once, before the first message is logged.
func SetFactory(f Factory) error {
	if f == nil {
		return errors.New("logger: nil factory")
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.factory != nil || reg.built {
		return ErrFactoryLocked
	}
	reg.factory = f
	return nil
}

// Named returns the logger called name; repeated calls return the same
// value.
func Named(name string) Logger {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	d, ok := reg.named[name]
	if !ok {
		d = &deferred{name: name}
		reg.named[name] = d
	}
	return d
}

func (r *registry) build(name string) Logger {
	r.mu.Lock()
	r.built = true
	f := r.factory
	r.mu.Unlock()
	if f == nil {
		return NewZap(name)
	}
	return f(name)
}

// deferred builds its backend on first use and replays the last SetLevel
// made before that.
type deferred struct {
	name string
	once sync.Once

	mu      sync.Mutex
	backend Logger
	level   *Level
}

func (d *deferred) get() Logger {
	d.once.Do(func() {
		b := reg.build(d.name)
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.level != nil {
			b.SetLevel(*d.level)
		}
		d.backend = b
	})
	return d.backend
}

func (d *deferred) SetLevel(l Level) {
	d.mu.Lock()
	d.level = &l
	b := d.backend
	d.mu.Unlock()
	if b != nil {
		b.SetLevel(l)
	}
}

func (d *deferred) Debugf(format string, args ...any) { d.get().Debugf(format, args...) }
func (d *deferred) Infof(format string, args ...any)  { d.get().Infof(format, args...) }
func (d *deferred) Warnf(format string, args ...any)  { d.get().Warnf(format, args...) }
func (d *deferred) Errorf(format string, args ...any) { d.get().Errorf(format, args...) }
func (d *deferred) Panicf(format string, args ...any) { d.get().Panicf(format, args...) }
