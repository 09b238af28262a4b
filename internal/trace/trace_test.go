package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLevel(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelError, LevelPhase, LevelSpec, LevelDebug} {
		got, err := ParseLevel(strings.ToUpper(l.String()))
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel accepted an unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		want  []Scope
	}{
		{LevelOff, nil},
		{LevelError, nil},
		{LevelPhase, []Scope{ScopeDriver, ScopePass}},
		{LevelSpec, []Scope{ScopeDriver, ScopePass, ScopeSpec}},
		{LevelDebug, []Scope{ScopeDriver, ScopePass, ScopeSpec, ScopeGenerator}},
	}
	for _, tt := range tests {
		var got []Scope
		for s := ScopeDriver; s <= ScopeGenerator; s++ {
			if tt.level.ShouldEmit(s) {
				got = append(got, s)
			}
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s emits (-want +got):\n%s", tt.level, diff)
		}
	}
}

func TestStreamFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	Begin(tr, ScopePass, "validate", 0).End("ok")
	Begin(tr, ScopeSpec, "spec:BadgeSpec", 0).End("")

	out := buf.String()
	if !strings.Contains(out, "→ validate") || !strings.Contains(out, "← validate (ok)") {
		t.Errorf("pass span missing from output:\n%s", out)
	}
	if strings.Contains(out, "BadgeSpec") {
		t.Errorf("spec span emitted at phase level:\n%s", out)
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	root := Begin(tr, ScopeDriver, "gen", 0)
	Begin(tr, ScopeGenerator, "gen:equivalence", root.ID()).WithExtra("spec", "BadgeSpec").End("")
	root.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}
	var ev jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Kind != "end" || ev.Scope != "generator" || ev.ParentID != root.ID() || ev.Extra["spec"] != "BadgeSpec" {
		t.Errorf("unexpected event %+v", ev)
	}
}

func TestRingWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d"} {
		Point(r, ScopePass, name, "")
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	if diff := cmp.Diff([]string{"b", "c", "d"}, names); diff != "" {
		t.Errorf("ring contents (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatAuto); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestRingAtErrorLevelKeepsSpecs(t *testing.T) {
	r := NewRingTracer(8, LevelError)
	Point(r, ScopeSpec, "spec:A", "")
	Point(r, ScopeGenerator, "gen:flags", "")
	snap := r.Snapshot()
	if len(snap) != 1 || snap[0].Name != "spec:A" {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestNewAndRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(tr, ScopePass, "write", "")
	r, ok := Ring(tr)
	if !ok || len(r.Snapshot()) != 1 {
		t.Fatal("ring tracer not reachable through the multi tracer")
	}
	if !strings.Contains(buf.String(), "write") {
		t.Error("stream half did not receive the event")
	}

	off, err := New(Config{Level: LevelOff})
	if err != nil || off.Enabled() {
		t.Errorf("off tracer = %v, %v", off, err)
	}
}

func TestContextSpans(t *testing.T) {
	r := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	ctx, outer := Start(ctx, ScopePass, "generate")
	_, inner := Start(ctx, ScopeGenerator, "gen:props")
	inner.End("")
	outer.End("")

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("got %d events", len(snap))
	}
	if snap[1].ParentID != outer.ID() {
		t.Errorf("inner parent = %d, want %d", snap[1].ParentID, outer.ID())
	}
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should yield Nop")
	}
}

func TestHeartbeatNil(t *testing.T) {
	if h := StartHeartbeat(Nop, 0); h != nil {
		t.Fatal("heartbeat started for a disabled tracer")
	}
	var h *Heartbeat
	h.Stop()
}
