package modifiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabularyResolvesDeterministically(t *testing.T) {
	for _, entry := range Vocabulary() {
		switch entry.Kind {
		case KindModifier:
			first, err := ResolveSingle(entry.Alias)
			require.NoError(t, err, entry.Alias)
			second, err := ResolveSingle(entry.Alias)
			require.NoError(t, err, entry.Alias)

			assert.Equal(t, first, second, entry.Alias)
			assert.Equal(t, entry.Meaning, first.Key.String(), entry.Alias)
			assert.Equal(t, SideNone, first.Side, entry.Alias)
		case KindCombination:
			first, err := ResolveMulti(entry.Alias)
			require.NoError(t, err, entry.Alias)
			second, err := ResolveMulti(entry.Alias)
			require.NoError(t, err, entry.Alias)
			assert.Equal(t, first, second, entry.Alias)
		case KindWildcard:
			assert.True(t, IsWildcard(entry.Alias), entry.Alias)
		}
	}
}

func TestVocabularyEntries(t *testing.T) {
	byAlias := make(map[string]AliasEntry)
	for _, e := range Vocabulary() {
		_, dup := byAlias[e.Alias]
		assert.False(t, dup, "alias %q listed twice", e.Alias)
		byAlias[e.Alias] = e
	}

	assert.Equal(t, AliasEntry{Alias: "hyper", Kind: KindCombination, Meaning: "⌘⌥⌃⇧"}, byAlias["hyper"])
	assert.Equal(t, AliasEntry{Alias: "meh", Kind: KindCombination, Meaning: "⌥⌃⇧"}, byAlias["meh"])
	assert.Equal(t, KindSide, byAlias["‹"].Kind)
	assert.Equal(t, KindWildcard, byAlias["??"].Kind)

	// every key is reachable by its full name
	for _, k := range AllKeys {
		assert.Equal(t, k.String(), byAlias[k.String()].Meaning)
	}
}

func TestFullNameAndSymbolRoundTrip(t *testing.T) {
	for _, k := range AllKeys {
		if k.Symbol() == "" {
			continue
		}
		byName, err := ResolveSingle(k.String())
		require.NoError(t, err)
		bySymbol, err := ResolveSingle(k.Symbol())
		require.NoError(t, err)

		assert.Equal(t, byName, bySymbol, k.String())
		assert.Equal(t, Descriptor{Key: k}, byName)
	}
}

func TestDescriptorNameIsLossless(t *testing.T) {
	seen := make(map[string]Descriptor)
	for _, k := range AllKeys {
		sides := []Side{SideNone}
		if k.Sided() {
			sides = append(sides, SideLeft, SideRight)
		}
		for _, s := range sides {
			d := Descriptor{Key: k, Side: s}
			name := d.Name()

			other, dup := seen[name]
			assert.False(t, dup, "%v and %v share name %q", d, other, name)
			seen[name] = d

			back, err := ResolveSingle(name)
			require.NoError(t, err, name)
			assert.Equal(t, d, back, name)
		}
	}

	assert.Equal(t, "left_command", Descriptor{Key: KeyCommand, Side: SideLeft}.Name())
	assert.Equal(t, "right_option", Descriptor{Key: KeyOption, Side: SideRight}.Name())
	assert.Equal(t, "caps_lock", Descriptor{Key: KeyCapsLock}.Name())
	assert.Equal(t, "fn", Descriptor{Key: KeyFn}.String())
}

func TestSplitSide(t *testing.T) {
	tests := []struct {
		token    string
		wantSide Side
		wantRest string
		wantOK   bool
	}{
		{"left⌘", SideLeft, "⌘", true},
		{"left-shift", SideLeft, "shift", true},
		{"left_command", SideLeft, "command", true},
		{"LEFT-shift", SideLeft, "shift", true},
		{"lshift", SideLeft, "shift", true},
		{"<⌘", SideLeft, "⌘", true},
		{"‹⌥", SideLeft, "⌥", true},
		{"right⌃", SideRight, "⌃", true},
		{"r⌥", SideRight, "⌥", true},
		{">⇧", SideRight, "⇧", true},
		{"›⌘", SideRight, "⌘", true},
		{"left", SideLeft, "", true},
		{"cmd", SideNone, "cmd", false},
		{"⌘", SideNone, "⌘", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			side, rest, ok := splitSide(tt.token)
			assert.Equal(t, tt.wantSide, side)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestKeySidedness(t *testing.T) {
	assert.True(t, KeyCommand.Sided())
	assert.True(t, KeyOption.Sided())
	assert.True(t, KeyControl.Sided())
	assert.True(t, KeyShift.Sided())
	assert.False(t, KeyFn.Sided())
	assert.False(t, KeyCapsLock.Sided())
}
