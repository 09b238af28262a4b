package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is a tri-state switch shared by --ui and --color: auto follows
// whether the stream is a terminal.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

var uiModeNames = map[string]uiMode{
	"":       uiModeAuto,
	"auto":   uiModeAuto,
	"on":     uiModeOn,
	"always": uiModeOn,
	"off":    uiModeOff,
	"never":  uiModeOff,
}

func parseSwitch(flag, value string) (uiMode, error) {
	mode, ok := uiModeNames[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return uiModeAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
	return mode, nil
}

// on resolves auto against f.
func (m uiMode) on(f *os.File) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return isTerminal(f)
}

func readUIMode(value string) (uiMode, error) { return parseSwitch("ui", value) }

// shouldUseTUI draws progress on stdout, so auto needs stdout to be a terminal.
func shouldUseTUI(mode uiMode) bool { return mode.on(os.Stdout) }

// colorEnabled resolves the --color flag for f.
func colorEnabled(value string, f *os.File) (bool, error) {
	mode, err := parseSwitch("color", value)
	if err != nil {
		return false, err
	}
	return mode.on(f), nil
}
