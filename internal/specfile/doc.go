// Package specfile reads component specs from TOML files and freezes them
// into the semantic IR.
//
// A spec file has one [spec] table, an optional [mount] or [render] table
// with the variant flags, and arrays of [[member]] and [[method]] tables.
// Methods list their parameters as [[method.param]]:
//
//	[spec]
//	name = "example.com/widgets.BadgeSpec"
//	variant = "mount"
//	imports = ["image"]
//	diffs = ["text"]
//
//	[mount]
//	pool_size = 3
//	mount_type = "drawable"
//
//	[[member]]
//	name = "text"
//	role = "prop"
//	type = "string"
//
//	[[method]]
//	name = "onMount"
//	kind = "create_layout"
//
//	[[method.param]]
//	name = "text"
//	role = "prop"
//	type = "string"
//
// Problems in the file itself (syntax, unknown keys, values that cannot be
// converted) are reported as IO diagnostics. Semantic problems are left to
// the validator.
package specfile
