package modifiers

import (
	"strings"
)

// ResolveSingle resolves one modifier token, optionally prefixed with a
// side marker, into a Descriptor.
//
//	ResolveSingle("cmd")        // {KeyCommand, SideNone}
//	ResolveSingle("left-shift") // {KeyShift, SideLeft}
//	ResolveSingle("›⌥")         // {KeyOption, SideRight}
func ResolveSingle(alias string) (Descriptor, error) {
	if key, ok := lookupKey(alias); ok {
		return Descriptor{Key: key}, nil
	}

	side, rest, sided := splitSide(alias)
	if !sided || rest == "" {
		return Descriptor{}, unknownAlias(alias)
	}
	key, ok := lookupKey(rest)
	if !ok {
		return Descriptor{}, unknownAlias(alias)
	}
	if !key.Sided() {
		return Descriptor{}, invalidSide(alias, key)
	}
	return Descriptor{Key: key, Side: side}, nil
}

// ResolveMulti resolves a named combination ("hyper", "meh") or a run of
// modifier glyphs ("⌘⌥", "<⌘⇧") into a Set. A side marker in front of a
// glyph run applies to every glyph.
func ResolveMulti(alias string) (Set, error) {
	if keys, ok := namedCombinations[strings.ToLower(alias)]; ok {
		ds := make([]Descriptor, len(keys))
		for i, k := range keys {
			ds[i] = Descriptor{Key: k}
		}
		return NewSet(ds...), nil
	}
	return resolveSymbols(alias)
}

// ResolveList resolves each alias with ResolveSingle and returns the union.
// The first failing alias aborts resolution and its error is returned.
func ResolveList(aliases []string) (Set, error) {
	ds := make([]Descriptor, 0, len(aliases))
	for _, alias := range aliases {
		d, err := ResolveSingle(alias)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return NewSet(ds...), nil
}

func resolveSymbols(alias string) (Set, error) {
	side, rest, _ := splitSide(alias)
	if rest == "" {
		return nil, unknownAlias(alias)
	}

	offset := len([]rune(alias)) - len([]rune(rest))
	var ds []Descriptor
	for i, r := range []rune(rest) {
		key, ok := symbolKeys[r]
		if !ok {
			return nil, unknownSymbol(alias, r, offset+i)
		}
		if side != SideNone && !key.Sided() {
			return nil, invalidSide(alias, key)
		}
		ds = append(ds, Descriptor{Key: key, Side: side})
	}
	return NewSet(ds...), nil
}

// resolveString resolves any bare string alias: a named combination, a
// glyph run, or a single modifier.
func resolveString(alias string) (Set, error) {
	if _, ok := namedCombinations[strings.ToLower(alias)]; ok {
		return ResolveMulti(alias)
	}
	if looksLikeSymbolRun(alias) {
		return resolveSymbols(alias)
	}
	d, err := ResolveSingle(alias)
	if err != nil {
		return nil, err
	}
	return NewSet(d), nil
}

// looksLikeSymbolRun reports whether alias, once any side marker is
// removed, is two or more runes starting with a modifier glyph.
func looksLikeSymbolRun(alias string) bool {
	_, rest, _ := splitSide(alias)
	runes := []rune(rest)
	if len(runes) < 2 {
		return false
	}
	_, ok := symbolKeys[runes[0]]
	return ok
}
