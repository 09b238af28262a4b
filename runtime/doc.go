// Package runtime is the contract generated components link against: the
// component and section interfaces, the embedded bases that carry identity,
// and the comparison and copy helpers generated methods call.
//
// Generated files import it under the name runtime, so the package name
// shadows the standard library package of the same name inside them. The
// standard library runtime is never needed by generated code.
package runtime
