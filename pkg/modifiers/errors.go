package modifiers

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/arthur-debert/karabuild/pkg/errors"
)

// maxSuggestionDistance bounds how far a typo may be from a real alias
// before we stop offering it as a suggestion.
const maxSuggestionDistance = 2

func unknownAlias(alias string) *errors.KarabuildError {
	err := errors.Newf(errors.ErrUnknownAlias, "unknown modifier alias %q", alias).
		WithDetail("alias", alias)
	if s := suggest(alias); s != "" {
		err.Message += fmt.Sprintf(", did you mean %q?", s)
		err.WithDetail("suggestion", s)
	}
	return err
}

func unknownSymbol(alias string, symbol rune, position int) *errors.KarabuildError {
	return errors.Newf(errors.ErrUnknownAlias, "unknown modifier symbol %q at position %d in %q", symbol, position, alias).
		WithDetail("alias", alias).
		WithDetail("symbol", string(symbol)).
		WithDetail("position", position)
}

func invalidSide(alias string, key Key) *errors.KarabuildError {
	return errors.Newf(errors.ErrInvalidSideQualifier, "%s has no left/right variant in %q", key, alias).
		WithDetail("alias", alias).
		WithDetail("modifier", key.String())
}

func unrecognizedOptional(alias string) *errors.KarabuildError {
	return errors.Newf(errors.ErrUnrecognizedOptionalSyntax,
		"%q is not an optional modifier; expected ?<modifier>, ?<side><symbols> or one of %s",
		alias, strings.Join(wildcardAliases, ", ")).
		WithDetail("alias", alias)
}

// suggest returns the word alias closest to alias, or "" when nothing is
// close enough to be a plausible typo. Side-qualified typos keep the marker
// the author used ("left-shfit" suggests "left-shift").
func suggest(alias string) string {
	word := strings.ToLower(alias)
	if word == "" {
		return ""
	}

	best, bestDist := "", maxSuggestionDistance+1
	consider := func(prefix, body string, sidedOnly bool) {
		for _, a := range keyAliasList {
			if !isASCII([]rune(a.token)[0]) || (sidedOnly && !a.key.Sided()) {
				continue
			}
			if d := levenshtein.ComputeDistance(body, a.token); d < bestDist && d < len(body) {
				best, bestDist = prefix+a.token, d
			}
		}
		if sidedOnly {
			return
		}
		for name := range namedCombinations {
			if d := levenshtein.ComputeDistance(body, name); d < bestDist && d < len(body) {
				best, bestDist = name, d
			}
		}
	}

	consider("", word, false)
	if _, rest, sided := splitSide(word); sided && rest != "" {
		consider(word[:len(word)-len(rest)], rest, true)
	}
	return best
}
