// Package dsl provides the staged, type-safe schema builder for fieldschema.
//
// Overview
//   - New[T]() starts in BuildStep: open a field with Requires/Optional or freeze with Build/MustBuild.
//   - Requires/Optional move to TypeStep, where the field's kind is chosen (ToBeString, ToBeInteger,
//     ToBeArray, ToBeBoolean, ToBeDateTime).
//   - Each kind has its own step exposing only the bounds that apply to it; every kind step is also
//     a BuildStep, so the next Requires/Optional/Build can follow directly.
//   - Array elements are described with standalone providers from the constraint package, which
//     nest freely (arrays of arrays, arrays of objects validated by another Validator).
//
// Lifecycle
//   - Opening a field seals the previous one: its provider is compiled into a pure checker.
//   - Configuration mistakes (empty path segments, min above max, bad regex, an array without an
//     element provider) are recorded when they happen and returned by Build; MustBuild panics.
//     They never surface from Validate.
//   - The builder is single-owner and not reusable after Build. The Validator it returns is
//     immutable and safe for concurrent use; build it once (e.g. in a package variable).
//
// Example
//
//	var signup = dsl.New[map[string]any]().
//	    Requires("username").ToBeString().WithMinLength(5).
//	    Requires("address.num").ToBeInteger().WithMinValue(0).WithMaxValue(500).
//	    Optional("tags").ToBeArray().WithMaxLength(10).WithElements(constraint.String().WithMinLength(1)).
//	    MustBuild()
//
//	res := signup.Validate(body)
//	if !res.Valid() {
//	    it, _ := res.Issue()
//	    _ = it // it.Path == "address.num", it.Code == fieldschema.CodeTooBig
//	}
//
// Example (array of objects)
//
//	item := dsl.New[map[string]any]().
//	    Requires("sku").ToBeString().WithMinLength(1).
//	    Requires("qty").ToBeInteger().WithMinValue(1).
//	    MustBuild()
//	order := dsl.New[map[string]any]().
//	    Requires("items").ToBeArray().WithMinLength(1).WithElements(constraint.Object(item)).
//	    MustBuild()
//	// {"items":[{"sku":"a","qty":0}]} fails at items.0.qty
package dsl
