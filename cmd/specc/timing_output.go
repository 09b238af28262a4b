package main

import (
	"fmt"
	"io"
	"time"

	"specc/internal/buildpipeline"
	"specc/internal/observ"
)

// printStageTimings prints the per-stage totals summed over every file.
func printStageTimings(out io.Writer, timings *buildpipeline.Timings) {
	if out == nil || timings == nil {
		return
	}
	for _, st := range buildpipeline.Stages {
		d := timings.Duration(st)
		if d == 0 {
			continue
		}
		fmt.Fprintf(out, "%-9s %.1f ms\n", st, toMillis(d))
	}
}

func printTimings(out io.Writer, timer *observ.Timer, timings *buildpipeline.Timings) {
	if timer != nil {
		fmt.Fprint(out, timer.Summary())
	}
	printStageTimings(out, timings)
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
