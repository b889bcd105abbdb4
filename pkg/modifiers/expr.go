package modifiers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"gopkg.in/yaml.v3"
)

type exprKind int

const (
	exprInvalid exprKind = iota
	exprAlias
	exprList
	exprObject
)

// Expr is a modifier expression as written by a rule author. It is one of:
//
//   - an alias: "cmd", "⌘⌥", "hyper", "?shift", "??"
//   - a list of expressions: ["cmd", "?shift"]
//   - an object with "mandatory" and/or "optional" members
//
// The zero Expr is invalid; build one with Alias, Aliases, List,
// OptionalOf, Object or FromValue.
type Expr struct {
	kind      exprKind
	alias     string
	items     []Expr
	mandatory *Expr
	optional  *Expr
}

// Alias returns an expression for a single alias string.
func Alias(alias string) Expr {
	return Expr{kind: exprAlias, alias: alias}
}

// Aliases returns a list expression of plain aliases.
func Aliases(aliases ...string) Expr {
	items := make([]Expr, len(aliases))
	for i, a := range aliases {
		items[i] = Alias(a)
	}
	return Expr{kind: exprList, items: items}
}

// List returns a list expression.
func List(items ...Expr) Expr {
	return Expr{kind: exprList, items: append([]Expr(nil), items...)}
}

// OptionalOf returns {optional: e}.
func OptionalOf(e Expr) Expr {
	return Expr{kind: exprObject, optional: &e}
}

// Object returns {mandatory: mandatory, optional: optional}; either may be nil
// but not both.
func Object(mandatory, optional *Expr) Expr {
	return Expr{kind: exprObject, mandatory: mandatory, optional: optional}
}

// IsZero reports whether e was never initialised.
func (e Expr) IsZero() bool {
	return e.kind == exprInvalid
}

// String renders e in a compact JSON-like form for messages and logs.
func (e Expr) String() string {
	switch e.kind {
	case exprAlias:
		return fmt.Sprintf("%q", e.alias)
	case exprList:
		parts := make([]string, len(e.items))
		for i, item := range e.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case exprObject:
		var parts []string
		if e.mandatory != nil {
			parts = append(parts, "mandatory: "+e.mandatory.String())
		}
		if e.optional != nil {
			parts = append(parts, "optional: "+e.optional.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid>"
	}
}

// FromValue converts a generic decoded value (as produced by encoding/json,
// yaml.v3 or go-toml into interface{}) into an Expr. Accepted shapes are a
// string, a list of accepted shapes, or a map whose only keys are
// "mandatory" and "optional".
func FromValue(v interface{}) (Expr, error) {
	switch val := v.(type) {
	case string:
		return Alias(val), nil
	case []string:
		return Aliases(val...), nil
	case []interface{}:
		items := make([]Expr, len(val))
		for i, item := range val {
			e, err := FromValue(item)
			if err != nil {
				return Expr{}, errors.Wrapf(err, errors.ErrInvalidExpression, "list element %d", i).
					WithDetail("index", i)
			}
			items[i] = e
		}
		return Expr{kind: exprList, items: items}, nil
	case map[string]interface{}:
		return objectFromMap(val)
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return Expr{}, invalidExpression(fmt.Sprintf("object key %v is not a string", k))
			}
			m[key] = item
		}
		return objectFromMap(m)
	case nil:
		return Expr{}, invalidExpression("modifier expression is empty")
	default:
		return Expr{}, invalidExpression(fmt.Sprintf("unsupported modifier expression of type %T", v))
	}
}

func objectFromMap(m map[string]interface{}) (Expr, error) {
	if len(m) == 0 {
		return Expr{}, invalidExpression("modifier object needs a mandatory or optional member")
	}

	var unknown []string
	for k := range m {
		if k != "mandatory" && k != "optional" {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Expr{}, invalidExpression(fmt.Sprintf("unknown modifier object keys %s, expected mandatory or optional",
			strings.Join(unknown, ", "))).WithDetail("keys", unknown)
	}

	obj := Expr{kind: exprObject}
	if v, ok := m["mandatory"]; ok {
		e, err := FromValue(v)
		if err != nil {
			return Expr{}, errors.Wrap(err, errors.ErrInvalidExpression, "mandatory member")
		}
		obj.mandatory = &e
	}
	if v, ok := m["optional"]; ok {
		e, err := FromValue(v)
		if err != nil {
			return Expr{}, errors.Wrap(err, errors.ErrInvalidExpression, "optional member")
		}
		obj.optional = &e
	}
	return obj, nil
}

func invalidExpression(msg string) *errors.KarabuildError {
	return errors.New(errors.ErrInvalidExpression, msg)
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Expr) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, errors.ErrInvalidExpression, "malformed modifier expression")
	}
	parsed, err := FromValue(v)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return errors.Wrap(err, errors.ErrInvalidExpression, "malformed modifier expression")
	}
	parsed, err := FromValue(v)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
