// Package rules loads karabuild rules files and turns them into Karabiner
// complex modifications.
//
// # File format
//
// Rules files may be TOML, YAML or JSON; the format is picked from the file
// extension. A TOML example:
//
//	[parameters]
//	"basic.to_if_alone_timeout_milliseconds" = 200
//
//	[[rules]]
//	description = "Hyper navigation"
//
//	[[rules.map]]
//	from = "h"
//	modifiers = "hyper"
//	to = "left_arrow"
//
//	[[rules.map]]
//	from = "j"
//	modifiers = ["hyper", "?caps"]
//	to = "down_arrow"
//	to_modifiers = "⇧"
//
//	[[rules.map]]
//	from = "escape"
//	modifiers = { optional = "any" }
//	to = "caps_lock"
//	frontmost_apps = ["^com\\.apple\\.Terminal$"]
//
// The modifiers field accepts every shape understood by package modifiers;
// to_modifiers must resolve to mandatory modifiers only.
//
// # Mapping fields
//
//   - from: key code that triggers the mapping (required)
//   - modifiers: modifier expression held with from
//   - to: key code emitted
//   - to_modifiers: modifiers emitted with to
//   - to_if_alone: key code emitted when from is pressed and released alone
//   - shell: shell command run on trigger
//   - frontmost_apps: bundle identifier patterns limiting the mapping
//
// Every mapping needs from and at least one of to, to_if_alone or shell.
package rules
