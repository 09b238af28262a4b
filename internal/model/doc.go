// Package model defines the semantic IR of one component specification.
//
// # Purpose
//
//   - Describe a spec as data: identity, declared members tagged by role,
//     delegate methods tagged by kind, render-data diffs, specialization flags
//     and free-form metadata.
//   - Offer read-only accessors and derived queries (HasState,
//     NeedsRenderData, ShouldCheckID, ...) that validators and generators
//     consume without reaching into storage.
//
// # Variants
//
// Spec is implemented by *MountSpec and *RenderSpec. Both embed Base, which
// owns every piece of shared data; the variants only add specialization
// flags (pooling for mount specs, section/deep-copy support for render
// specs). Generators switch on the concrete type when a fragment is
// specialization-specific.
//
// # Immutability
//
// A spec is built once from a Decl via NewMountSpec / NewRenderSpec and is
// never mutated afterwards. List accessors return fresh, non-nil slices, so
// a caller may sort or append to them freely. Any number of goroutines may
// read the same spec concurrently.
//
// Consistency of the declarations (unique names, resolvable diffs, allowed
// parameter roles) is not checked here; that is internal/validate's job.
package model
