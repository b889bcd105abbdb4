package modifiers

import (
	"sort"
	"strings"
)

// Key is a canonical modifier key.
type Key int

const (
	KeyCommand Key = iota + 1
	KeyOption
	KeyControl
	KeyShift
	KeyFn
	KeyCapsLock
)

// AllKeys lists every modifier key in canonical order.
var AllKeys = []Key{KeyCommand, KeyOption, KeyControl, KeyShift, KeyFn, KeyCapsLock}

// String returns the Karabiner name of the key ("command", "caps_lock", ...).
func (k Key) String() string {
	switch k {
	case KeyCommand:
		return "command"
	case KeyOption:
		return "option"
	case KeyControl:
		return "control"
	case KeyShift:
		return "shift"
	case KeyFn:
		return "fn"
	case KeyCapsLock:
		return "caps_lock"
	default:
		return "unknown"
	}
}

// Symbol returns the glyph used for the key in macOS menus, or "" for fn.
func (k Key) Symbol() string {
	switch k {
	case KeyCommand:
		return "⌘"
	case KeyOption:
		return "⌥"
	case KeyControl:
		return "⌃"
	case KeyShift:
		return "⇧"
	case KeyCapsLock:
		return "⇪"
	default:
		return ""
	}
}

// Sided reports whether the key has distinct left and right physical keys.
func (k Key) Sided() bool {
	switch k {
	case KeyCommand, KeyOption, KeyControl, KeyShift:
		return true
	default:
		return false
	}
}

// Side qualifies a Key with the physical key it refers to.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns "left", "right" or "" for SideNone.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

// Descriptor is one resolved modifier.
type Descriptor struct {
	Key  Key
	Side Side
}

// Name returns the Karabiner token for the descriptor: "command",
// "left_command", "fn", ... Distinct descriptors always have distinct names.
func (d Descriptor) Name() string {
	if d.Side == SideNone {
		return d.Key.String()
	}
	return d.Side.String() + "_" + d.Key.String()
}

func (d Descriptor) String() string {
	return d.Name()
}

func (d Descriptor) less(o Descriptor) bool {
	if d.Key != o.Key {
		return d.Key < o.Key
	}
	return d.Side < o.Side
}

// AliasKind classifies entries of the vocabulary.
type AliasKind string

const (
	KindModifier    AliasKind = "modifier"
	KindSide        AliasKind = "side"
	KindCombination AliasKind = "combination"
	KindWildcard    AliasKind = "wildcard"
)

// AliasEntry is one row of the vocabulary as reported by Vocabulary.
type AliasEntry struct {
	Alias   string    `json:"alias"`
	Kind    AliasKind `json:"kind"`
	Meaning string    `json:"meaning"`
}

type keyAlias struct {
	token string
	key   Key
}

// keyAliasList is the single source for modifier-name lookups; keyAliases
// and symbolKeys are indexes over it.
var keyAliasList = []keyAlias{
	{"⌘", KeyCommand},
	{"command", KeyCommand},
	{"cmd", KeyCommand},

	{"⌥", KeyOption},
	{"option", KeyOption},
	{"opt", KeyOption},
	{"alt", KeyOption},

	{"⌃", KeyControl},
	{"control", KeyControl},
	{"ctrl", KeyControl},

	{"⇧", KeyShift},
	{"shift", KeyShift},

	{"⇪", KeyCapsLock},
	{"caps_lock", KeyCapsLock},
	{"capslock", KeyCapsLock},
	{"caps", KeyCapsLock},

	{"fn", KeyFn},
	{"function", KeyFn},
}

type sideMarker struct {
	token string
	side  Side
	// word markers may be followed by a "-" or "_" separator
	word bool
}

// Longest markers first so "left" wins over "l".
var sideMarkers = []sideMarker{
	{"left", SideLeft, true},
	{"right", SideRight, true},
	{"l", SideLeft, true},
	{"r", SideRight, true},
	{"<", SideLeft, false},
	{">", SideRight, false},
	{"‹", SideLeft, false},
	{"›", SideRight, false},
}

var namedCombinations = map[string][]Key{
	"hyper": {KeyCommand, KeyOption, KeyControl, KeyShift},
	"meh":   {KeyOption, KeyControl, KeyShift},
}

var wildcardAliases = []string{"optionalAny", "?any", "??"}

var (
	keyAliases = indexKeyAliases()
	symbolKeys = indexSymbolKeys()
)

func indexKeyAliases() map[string]Key {
	m := make(map[string]Key, len(keyAliasList))
	for _, a := range keyAliasList {
		m[a.token] = a.key
	}
	return m
}

func indexSymbolKeys() map[rune]Key {
	m := make(map[rune]Key)
	for _, a := range keyAliasList {
		r := []rune(a.token)
		if len(r) == 1 && !isASCII(r[0]) {
			m[r[0]] = a.key
		}
	}
	return m
}

func isASCII(r rune) bool {
	return r < 0x80
}

// lookupKey finds a modifier name or glyph. Names are case-insensitive.
func lookupKey(token string) (Key, bool) {
	k, ok := keyAliases[strings.ToLower(token)]
	return k, ok
}

// splitSide strips a leading side marker from token. When no marker is
// present it returns SideNone, the token unchanged and false.
func splitSide(token string) (Side, string, bool) {
	for _, m := range sideMarkers {
		if len(token) < len(m.token) || !strings.EqualFold(token[:len(m.token)], m.token) {
			continue
		}
		rest := token[len(m.token):]
		if m.word && rest != "" && (rest[0] == '-' || rest[0] == '_') {
			rest = rest[1:]
		}
		return m.side, rest, true
	}
	return SideNone, token, false
}

// IsWildcard reports whether alias is one of the "any modifier" spellings.
func IsWildcard(alias string) bool {
	for _, w := range wildcardAliases {
		if alias == w {
			return true
		}
	}
	return false
}

// Vocabulary returns every accepted alias, grouped by kind and sorted
// within each group. The returned slice is a fresh copy.
func Vocabulary() []AliasEntry {
	var entries []AliasEntry

	for _, a := range keyAliasList {
		entries = append(entries, AliasEntry{Alias: a.token, Kind: KindModifier, Meaning: a.key.String()})
	}

	for _, m := range sideMarkers {
		meaning := m.side.String() + " side, e.g. " + m.token + "⌘"
		if m.word {
			meaning = m.side.String() + " side, e.g. " + m.token + "⌘ or " + m.token + "-shift"
		}
		entries = append(entries, AliasEntry{Alias: m.token, Kind: KindSide, Meaning: meaning})
	}

	names := make([]string, 0, len(namedCombinations))
	for name := range namedCombinations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		var glyphs strings.Builder
		for _, k := range namedCombinations[name] {
			glyphs.WriteString(k.Symbol())
		}
		entries = append(entries, AliasEntry{Alias: name, Kind: KindCombination, Meaning: glyphs.String()})
	}

	for _, w := range wildcardAliases {
		entries = append(entries, AliasEntry{Alias: w, Kind: KindWildcard, Meaning: "any other modifiers allowed"})
	}

	return entries
}
