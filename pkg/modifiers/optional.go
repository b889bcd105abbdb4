package modifiers

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/karabuild/pkg/errors"
)

// optionalShape is the only accepted form of a "?" alias: the marker,
// an optional side marker, then either a glyph run or a single word.
var optionalShape = regexp.MustCompile(`(?i)^\?(?:(?:left|right|l|r)[-_]?|[<>‹›])?(?:[⌘⌥⌃⇧⇪]*|[a-z][a-z_]*)$`)

// Optional is the result of resolving an optional modifier expression.
type Optional struct {
	// Any is set by the wildcard spellings; any unlisted modifier may be held.
	Any bool
	Set Set
}

// ResolveOptional resolves the optional shapes: a wildcard ("??", "?any",
// "optionalAny"), a "?"-prefixed alias, or an object with only an optional
// member. Anything else fails with UNRECOGNIZED_OPTIONAL_SYNTAX.
func ResolveOptional(e Expr) (Optional, error) {
	switch e.kind {
	case exprAlias:
		if IsWildcard(e.alias) {
			return Optional{Any: true}, nil
		}
		if strings.HasPrefix(e.alias, "?") {
			set, err := resolvePrefixed(e.alias)
			if err != nil {
				return Optional{}, err
			}
			return Optional{Set: set}, nil
		}
		return Optional{}, unrecognizedOptional(e.alias)
	case exprObject:
		if e.optional == nil || e.mandatory != nil {
			return Optional{}, errors.Newf(errors.ErrUnrecognizedOptionalSyntax,
				"%s is not an optional modifier object, expected {optional: ...}", e)
		}
		var p partition
		if err := p.collect(*e.optional, true); err != nil {
			return Optional{}, err
		}
		return Optional{Any: p.any, Set: p.optional}, nil
	default:
		return Optional{}, errors.Newf(errors.ErrUnrecognizedOptionalSyntax, "%s is not an optional modifier", e)
	}
}

// resolvePrefixed checks the shape of a "?" alias before touching the
// vocabulary, then resolves what follows the "?".
func resolvePrefixed(alias string) (Set, error) {
	if !optionalShape.MatchString(alias) {
		return nil, unrecognizedOptional(alias)
	}
	set, err := resolveString(alias[1:])
	if err != nil {
		return nil, reanchor(err, alias)
	}
	return set, nil
}

// reanchor rewrites the alias and position details of an error raised for
// the body of a "?" alias so they refer to the full token.
func reanchor(err error, alias string) error {
	details := errors.GetErrorDetails(err)
	if details == nil {
		return err
	}
	details["alias"] = alias
	if pos, ok := details["position"].(int); ok {
		details["position"] = pos + 1
	}
	return err
}
