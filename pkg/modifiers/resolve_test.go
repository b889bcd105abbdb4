package modifiers

import (
	"testing"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cmd      = Descriptor{Key: KeyCommand}
	opt      = Descriptor{Key: KeyOption}
	ctrl     = Descriptor{Key: KeyControl}
	shift    = Descriptor{Key: KeyShift}
	leftCmd  = Descriptor{Key: KeyCommand, Side: SideLeft}
	leftOpt  = Descriptor{Key: KeyOption, Side: SideLeft}
	rightOpt = Descriptor{Key: KeyOption, Side: SideRight}
)

func TestResolveSingle(t *testing.T) {
	tests := []struct {
		alias string
		want  Descriptor
	}{
		{"cmd", cmd},
		{"Command", cmd},
		{"⌘", cmd},
		{"alt", opt},
		{"⌃", ctrl},
		{"capslock", Descriptor{Key: KeyCapsLock}},
		{"⇪", Descriptor{Key: KeyCapsLock}},
		{"function", Descriptor{Key: KeyFn}},
		{"left-shift", Descriptor{Key: KeyShift, Side: SideLeft}},
		{"right_option", rightOpt},
		{"›⌥", rightOpt},
		{"r-alt", rightOpt},
		{"lcmd", leftCmd},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := ResolveSingle(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSideMarkerSpellingsAreEquivalent(t *testing.T) {
	sided := []struct {
		key   Key
		names []string
	}{
		{KeyCommand, []string{"⌘", "cmd", "command"}},
		{KeyOption, []string{"⌥", "opt", "option", "alt"}},
		{KeyControl, []string{"⌃", "ctrl", "control"}},
		{KeyShift, []string{"⇧", "shift"}},
	}
	markers := map[Side][]string{
		SideLeft:  {"left", "l", "<", "‹", "left-", "left_", "l-"},
		SideRight: {"right", "r", ">", "›", "right-", "right_", "r_"},
	}

	for _, s := range sided {
		for side, prefixes := range markers {
			want := Descriptor{Key: s.key, Side: side}
			for _, prefix := range prefixes {
				for _, name := range s.names {
					got, err := ResolveSingle(prefix + name)
					require.NoError(t, err, prefix+name)
					assert.Equal(t, want, got, prefix+name)
				}
			}
		}
	}
}

func TestResolveSingleErrors(t *testing.T) {
	tests := []struct {
		alias    string
		wantCode errors.ErrorCode
	}{
		{"bogus", errors.ErrUnknownAlias},
		{"", errors.ErrUnknownAlias},
		{"left", errors.ErrUnknownAlias},
		{"<", errors.ErrUnknownAlias},
		{"left-bogus", errors.ErrUnknownAlias},
		{"hyper", errors.ErrUnknownAlias},
		{"⌘⌥", errors.ErrUnknownAlias},
		{"left-fn", errors.ErrInvalidSideQualifier},
		{"<⇪", errors.ErrInvalidSideQualifier},
		{"right_caps_lock", errors.ErrInvalidSideQualifier},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			_, err := ResolveSingle(tt.alias)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
			assert.Equal(t, tt.alias, errors.GetErrorDetails(err)["alias"])
		})
	}
}

func TestUnknownAliasSuggestions(t *testing.T) {
	tests := []struct {
		alias string
		want  interface{}
	}{
		{"cmmd", "cmd"},
		{"shfit", "shift"},
		{"left-shfit", "left-shift"},
		{"hypr", "hyper"},
		{"zzzzzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			_, err := AssembleAlias(tt.alias)
			require.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlias))
			assert.Equal(t, tt.want, errors.GetErrorDetails(err)["suggestion"])
		})
	}
}

func TestResolveMulti(t *testing.T) {
	tests := []struct {
		alias string
		want  Set
	}{
		{"⌘⌥", NewSet(cmd, opt)},
		{"⌥⌘", NewSet(cmd, opt)},
		{"⌘⌘", NewSet(cmd)},
		{"⌘", NewSet(cmd)},
		{"hyper", NewSet(cmd, opt, ctrl, shift)},
		{"Hyper", NewSet(cmd, opt, ctrl, shift)},
		{"meh", NewSet(opt, ctrl, shift)},
		{"<⌘⌥", NewSet(leftCmd, leftOpt)},
		{"left⌘⌥", NewSet(leftCmd, leftOpt)},
		{"⌘⇪", NewSet(cmd, Descriptor{Key: KeyCapsLock})},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := ResolveMulti(tt.alias)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMultiErrors(t *testing.T) {
	t.Run("unknown symbol carries position", func(t *testing.T) {
		_, err := ResolveMulti("⌘x⌥")
		require.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlias))
		details := errors.GetErrorDetails(err)
		assert.Equal(t, 1, details["position"])
		assert.Equal(t, "x", details["symbol"])
	})

	t.Run("position counts the side marker", func(t *testing.T) {
		_, err := ResolveMulti("<⌘?")
		require.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlias))
		assert.Equal(t, 2, errors.GetErrorDetails(err)["position"])
	})

	t.Run("side marker on unsided glyph", func(t *testing.T) {
		_, err := ResolveMulti("<⌘⇪")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidSideQualifier))
	})

	t.Run("bare side marker", func(t *testing.T) {
		_, err := ResolveMulti("‹")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlias))
	})

	t.Run("word aliases are not symbols", func(t *testing.T) {
		_, err := ResolveMulti("cmd")
		require.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlias))
		assert.Equal(t, 0, errors.GetErrorDetails(err)["position"])
	})
}

func TestSymbolRunMatchesLists(t *testing.T) {
	concatenated, err := ResolveMulti("⌘⌥")
	require.NoError(t, err)

	glyphs, err := ResolveList([]string{"⌘", "⌥"})
	require.NoError(t, err)

	names, err := ResolveList([]string{"cmd", "opt"})
	require.NoError(t, err)

	assert.Equal(t, concatenated, glyphs)
	assert.Equal(t, concatenated, names)
}

func TestHyperMatchesConstituents(t *testing.T) {
	hyper, err := ResolveMulti("hyper")
	require.NoError(t, err)

	explicit, err := ResolveList([]string{"command", "option", "control", "shift"})
	require.NoError(t, err)

	assert.Equal(t, explicit, hyper)
}

func TestResolveList(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		got, err := ResolveList([]string{"cmd", "⌘", "command"})
		require.NoError(t, err)
		assert.Equal(t, NewSet(cmd), got)
	})

	t.Run("sided and unsided stay distinct", func(t *testing.T) {
		got, err := ResolveList([]string{"cmd", "left-cmd"})
		require.NoError(t, err)
		assert.Equal(t, NewSet(cmd, leftCmd), got)
	})

	t.Run("first failure is returned", func(t *testing.T) {
		_, err := ResolveList([]string{"cmd", "nope", "left-fn"})
		require.True(t, errors.IsErrorCode(err, errors.ErrUnknownAlias))
		assert.Equal(t, "nope", errors.GetErrorDetails(err)["alias"])
	})

	t.Run("empty list", func(t *testing.T) {
		got, err := ResolveList(nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSetOperations(t *testing.T) {
	a := NewSet(shift, cmd)
	b := NewSet(cmd, opt)

	assert.Equal(t, Set{cmd, shift}, a)
	assert.Equal(t, NewSet(cmd, opt, shift), a.Union(b))
	assert.Equal(t, NewSet(cmd), a.Intersect(b))
	assert.Nil(t, a.Intersect(NewSet(ctrl)))
	assert.True(t, a.Contains(shift))
	assert.False(t, a.Contains(leftCmd))
	assert.Equal(t, []string{"command", "shift"}, a.Names())
	assert.Equal(t, "[command shift]", a.String())

	// receivers are never modified
	assert.Equal(t, Set{cmd, shift}, a)
	assert.Equal(t, Set{cmd, opt}, b)
}
