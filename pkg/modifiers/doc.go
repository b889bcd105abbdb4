// Package modifiers resolves modifier shorthand into canonical modifier
// specifications.
//
// Rule authors write modifiers the way they think about them: full names
// ("command"), abbreviations ("cmd"), the glyphs from the macOS menus
// ("⌘⌥"), side-qualified forms ("left-shift", "<⌘", "r⌥"), named
// combinations ("hyper"), optional forms ("?shift", {optional: "cmd"}) and
// the "any" wildcard ("??", "?any", "optionalAny").
//
// Resolution happens in layers:
//
//   - ResolveSingle turns one token into a Descriptor (key + side)
//   - ResolveMulti and ResolveList turn combinations into a Set
//   - ResolveOptional handles the optional and wildcard shapes
//   - Assemble walks an Expr and returns the final Specification, with
//     mandatory and optional modifiers kept disjoint
//
// Every failure is a *errors.KarabuildError with one of the codes
// UNKNOWN_ALIAS, INVALID_SIDE_QUALIFIER, UNRECOGNIZED_OPTIONAL_SYNTAX,
// CONFLICTING_MODIFIER or INVALID_EXPRESSION.
//
// The vocabulary tables are built once at package initialisation and only
// read afterwards, so every function here is safe for concurrent use.
package modifiers
