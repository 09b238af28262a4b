package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"specc/internal/buildpipeline"
	"specc/internal/driver"
	"specc/internal/ui"
)

type compileOutcome struct {
	result *driver.Result
	err    error
}

// runCompileWithUI compiles paths while a progress view follows the events.
func runCompileWithUI(ctx context.Context, title string, paths []string, opts driver.Options) (*driver.Result, error) {
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan compileOutcome, 1)

	go func() {
		opts.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := driver.CompileFiles(ctx, paths, opts)
		outcomeCh <- compileOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, buildpipeline.DisplayPaths(paths, opts.BaseDir), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// после выхода из UI события больше никто не читает
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

// runCompile picks between the progress view and a plain compile.
func runCompile(ctx context.Context, title string, paths []string, opts driver.Options, mode uiMode) (*driver.Result, error) {
	if shouldUseTUI(mode) && len(paths) > 0 {
		return runCompileWithUI(ctx, title, paths, opts)
	}
	return driver.CompileFiles(ctx, paths, opts)
}
