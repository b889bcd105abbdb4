// Package karabiner models the parts of the Karabiner-Elements configuration
// schema that karabuild generates: complex modification rules, their
// manipulators and the from/to events they contain.
//
// See https://karabiner-elements.pqrs.org/docs/json/root-data-structure/
package karabiner

import (
	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/modifiers"
)

// AnyModifier is Karabiner's token for "any other modifier may be held".
const AnyModifier = "any"

// ComplexModifications is the value of a profile's complex_modifications key.
type ComplexModifications struct {
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Rules      []Rule                 `json:"rules"`
}

// Rule is one entry of complex_modifications.rules.
type Rule struct {
	Description  string        `json:"description"`
	Manipulators []Manipulator `json:"manipulators"`
}

// Manipulator is a "basic" manipulator.
type Manipulator struct {
	Type       string      `json:"type"`
	From       FromEvent   `json:"from"`
	To         []ToEvent   `json:"to,omitempty"`
	ToIfAlone  []ToEvent   `json:"to_if_alone,omitempty"`
	Conditions []Condition `json:"conditions,omitempty"`
}

// FromEvent is the key press a manipulator matches.
type FromEvent struct {
	KeyCode   string         `json:"key_code"`
	Modifiers *FromModifiers `json:"modifiers,omitempty"`
}

// FromModifiers is the from.modifiers object.
type FromModifiers struct {
	Mandatory []string `json:"mandatory,omitempty"`
	Optional  []string `json:"optional,omitempty"`
}

// ToEvent is one event a manipulator emits.
type ToEvent struct {
	KeyCode      string   `json:"key_code,omitempty"`
	Modifiers    []string `json:"modifiers,omitempty"`
	ShellCommand string   `json:"shell_command,omitempty"`
}

// Condition restricts when a manipulator applies.
type Condition struct {
	Type              string   `json:"type"`
	BundleIdentifiers []string `json:"bundle_identifiers,omitempty"`
}

// ManipulatorBasic is the only manipulator type karabuild emits.
const ManipulatorBasic = "basic"

// ConditionFrontmostApplicationIf matches when one of the bundle identifiers
// is the frontmost application.
const ConditionFrontmostApplicationIf = "frontmost_application_if"

// NewFromModifiers maps a resolved specification onto from.modifiers. It
// returns nil for an empty specification so the key is omitted.
func NewFromModifiers(spec modifiers.Specification) *FromModifiers {
	if spec.IsEmpty() {
		return nil
	}
	fm := &FromModifiers{
		Mandatory: spec.Mandatory.Names(),
		Optional:  spec.Optional.Names(),
	}
	if spec.AnyOptional {
		// "any" already covers every listed optional modifier
		fm.Optional = []string{AnyModifier}
	}
	return fm
}

// NewToModifiers maps a resolved specification onto a to-event's modifier
// list. To-events have no notion of optional modifiers, so a specification
// with an optional part is rejected.
func NewToModifiers(spec modifiers.Specification) ([]string, error) {
	if spec.HasOptional() {
		return nil, errors.New(errors.ErrInvalidExpression,
			"to-event modifiers cannot be optional").
			WithDetail("optional", spec.Optional.Names()).
			WithDetail("any", spec.AnyOptional)
	}
	return spec.Mandatory.Names(), nil
}
