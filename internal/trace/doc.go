// Package trace records what the compiler is doing while it does it.
//
// Spans mark the start and end of driver operations, pipeline passes, per
// spec compilation and individual fragment generators. Tracing is off by
// default and costs one interface call per span when disabled.
//
//	specc gen --trace=- --trace-level=spec ./widgets
//
// Storage modes:
//
//   - stream: events are written as they happen (text or ndjson)
//   - ring: the last N events are kept in memory and dumped when the
//     compiler faults
//   - both
//
// Levels select the finest scope that is emitted: off, error, phase
// (driver and passes), spec (one span per spec) and debug (every
// generator).
//
// Tracers travel through the pipeline in the context:
//
//	ctx = trace.WithTracer(ctx, t)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "validate", 0)
//	defer span.End("")
package trace
