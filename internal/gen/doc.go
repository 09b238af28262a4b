// Package gen holds the fragment generators: pure functions from a validated
// spec to the fields, methods and nested types of its implementation.
//
// Every generator is registered with the Section it fills. Generators never
// see each other's output and always return an explicit Fragment, empty when
// their preconditions are unmet, so the assembler never special-cases a
// missing piece. A generator that meets a state validation should have
// rejected returns a *Fault.
package gen
