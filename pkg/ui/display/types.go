// Package display holds the result types karabuild commands hand to a
// renderer.
package display

import (
	"strings"

	"github.com/arthur-debert/karabuild/pkg/karabiner"
	"github.com/arthur-debert/karabuild/pkg/modifiers"
)

// Resolution is the outcome of resolving one modifier expression.
type Resolution struct {
	Input     string                   `json:"input"`
	Modifiers *karabiner.FromModifiers `json:"modifiers"`
	Error     string                   `json:"error,omitempty"`
}

// Summary renders the resolved modifiers on one line, for example
// "mandatory: command shift  optional: any".
func (r Resolution) Summary() string {
	if r.Modifiers == nil {
		return "(no modifiers)"
	}
	var parts []string
	if len(r.Modifiers.Mandatory) > 0 {
		parts = append(parts, "mandatory: "+strings.Join(r.Modifiers.Mandatory, " "))
	}
	if len(r.Modifiers.Optional) > 0 {
		parts = append(parts, "optional: "+strings.Join(r.Modifiers.Optional, " "))
	}
	return strings.Join(parts, "  ")
}

// ResolveResult is printed by the resolve command.
type ResolveResult struct {
	Results []Resolution `json:"results"`
}

// Failed reports whether any expression failed to resolve.
func (r *ResolveResult) Failed() bool {
	for _, res := range r.Results {
		if res.Error != "" {
			return true
		}
	}
	return false
}

// AliasTable is printed by the aliases command.
type AliasTable struct {
	Aliases []modifiers.AliasEntry `json:"aliases"`
}

// ProfileList is printed by the profiles command.
type ProfileList struct {
	Path     string   `json:"path"`
	Profiles []string `json:"profiles"`
	// Current is the profile build writes to by default.
	Current string `json:"current"`
}
