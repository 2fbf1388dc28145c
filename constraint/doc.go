// Package constraint holds the per-kind constraint providers used by the
// fieldschema builder.
//
// A Provider carries only the bounds that make sense for its kind and
// compiles itself into a Check: a pure function taking the resolved value and
// the field's display name and returning the first violated constraint as a
// fieldschema.Issue.
//
//   - String: type, trim, min/max length (in runes), regex, UUID format.
//   - Integer: numeric kind, mathematically integral, inclusive min/max.
//   - Array: array-like kind, inclusive min/max element count, then every
//     element through the nested provider (which may itself be an Array).
//   - Boolean: kind only.
//   - DateTime: RFC 3339 string or time.Time.
//   - Object: a map validated by another built Validator.
//
// Bound setters check consistency immediately; the first configuration error
// is kept on the provider and returned by Compile.
//
//	prices := constraint.Array(constraint.Integer().WithMinValue(0)).WithMaxLength(10)
//	check, err := prices.Compile()
package constraint
