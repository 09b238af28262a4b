package driver

import (
	"encoding/json"
	"fmt"

	"specc/internal/diag"
	"specc/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// AppendTimingDiagnostic adds an OBS6001 info diagnostic carrying the timer
// report as JSON in its note. It is added even when the bag is full.
func AppendTimingDiagnostic(bag *diag.Bag, kind string, report observ.Report) {
	if bag == nil {
		return
	}
	if kind == "" {
		kind = "pipeline"
	}
	data, err := json.Marshal(timingPayload{Kind: kind, TotalMS: report.TotalMS, Phases: report.Phases})
	if err != nil {
		return
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, diag.Origin{},
		fmt.Sprintf("timings (%s): total %.2f ms", kind, report.TotalMS)).
		WithNote(diag.Origin{}, string(data))
	if bag.Add(d) {
		return
	}
	overflow := diag.NewBag(1)
	overflow.Add(d)
	bag.Merge(overflow)
}
