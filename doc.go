// Package fieldschema is a declarative structural validation engine for
// untyped nested values such as decoded request bodies.
//
// - Schemas are built once with the staged builder in dsl/ and frozen into a Validator[T].
// - Validate resolves every declared dot path (e.g. "address.num") from the root, applies the
//   field's compiled constraints and stops at the first violation.
// - Results are a tagged union: Result[T].Valid() with Value(), or an Issue naming the field path
//   and the violated constraint.
// - Configuration errors (bad paths, inconsistent bounds) surface from Build, never from Validate.
//
// Design policy:
// - Keep the error model, path resolution and Validator in the root package.
// - Place constraint providers under constraint/, the builder under dsl/, and net/http glue under
//   middleware/.
// - Validation is pure, synchronous and performs no I/O.
//
// Typical usage:
//
//	v := dsl.New[map[string]any]().
//	    Requires("username").ToBeString().WithMinLength(5).
//	    MustBuild()
//	res := v.ValidateJSON(body)
//	if err := res.Err(); err != nil {
//	    iss, _ := fieldschema.AsIssues(err)
//	    _ = iss[0].Path
//	}
package fieldschema
