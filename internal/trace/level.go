package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff   Level = iota
	LevelError       // nothing is streamed; the ring is dumped on faults
	LevelPhase       // driver + passes
	LevelSpec        // + one span per spec
	LevelDebug       // + every fragment generator
)

var levelNames = [...]string{
	LevelOff:   "off",
	LevelError: "error",
	LevelPhase: "phase",
	LevelSpec:  "spec",
	LevelDebug: "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, s) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|spec|debug)", s)
}

// ShouldEmit reports whether events of the given scope are recorded at this
// level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelSpec:
		return scope <= ScopeSpec
	case LevelDebug:
		return true
	default:
		return false
	}
}

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeDriver    Scope = iota + 1 // CLI command
	ScopePass                       // load, validate, generate, render, write
	ScopeSpec                       // one spec file
	ScopeGenerator                  // one fragment generator
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeSpec:
		return "spec"
	case ScopeGenerator:
		return "generator"
	default:
		return "unknown"
	}
}
