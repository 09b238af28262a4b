// Package driver runs the compile pipeline over spec files:
// load → validate → generate → assemble → render, optionally in parallel
// and backed by an on-disk cache of rendered output.
package driver
