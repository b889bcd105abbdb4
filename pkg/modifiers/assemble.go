package modifiers

import (
	"strings"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/logging"
)

// Specification is a fully resolved modifier expression. Mandatory and
// Optional never share a descriptor.
type Specification struct {
	Mandatory Set
	Optional  Set
	// AnyOptional permits any modifier not listed in Mandatory.
	AnyOptional bool
}

// IsEmpty reports whether the specification names no modifiers at all.
func (s Specification) IsEmpty() bool {
	return len(s.Mandatory) == 0 && len(s.Optional) == 0 && !s.AnyOptional
}

// HasOptional reports whether any optional modifier, or the wildcard, is set.
func (s Specification) HasOptional() bool {
	return len(s.Optional) > 0 || s.AnyOptional
}

// Assemble resolves e into a Specification. Plain aliases and lists are
// mandatory; "?" aliases, wildcards and "optional" members are optional. A
// descriptor that ends up both mandatory and optional is rejected with
// CONFLICTING_MODIFIER.
func Assemble(e Expr) (Specification, error) {
	logger := logging.GetLogger("modifiers")

	var p partition
	if err := p.collect(e, false); err != nil {
		logger.Trace().Err(err).Str("expr", e.String()).Msg("Modifier expression rejected")
		return Specification{}, err
	}

	if conflicts := p.mandatory.Intersect(p.optional); len(conflicts) > 0 {
		names := conflicts.Names()
		return Specification{}, errors.Newf(errors.ErrConflictingModifier,
			"%s cannot be both mandatory and optional", strings.Join(names, ", ")).
			WithDetail("modifier", names[0]).
			WithDetail("modifiers", names)
	}

	spec := Specification{Mandatory: p.mandatory, Optional: p.optional, AnyOptional: p.any}
	logger.Trace().
		Str("expr", e.String()).
		Strs("mandatory", spec.Mandatory.Names()).
		Strs("optional", spec.Optional.Names()).
		Bool("any", spec.AnyOptional).
		Msg("Modifier expression resolved")
	return spec, nil
}

// AssembleAlias is shorthand for Assemble(Alias(alias)).
func AssembleAlias(alias string) (Specification, error) {
	return Assemble(Alias(alias))
}

// partition accumulates the mandatory and optional halves of an expression.
type partition struct {
	mandatory Set
	optional  Set
	any       bool
}

func (p *partition) collect(e Expr, optional bool) error {
	switch e.kind {
	case exprAlias:
		return p.collectAlias(e.alias, optional)
	case exprList:
		for _, item := range e.items {
			if err := p.collect(item, optional); err != nil {
				return err
			}
		}
		return nil
	case exprObject:
		if e.mandatory == nil && e.optional == nil {
			return invalidExpression("modifier object needs a mandatory or optional member")
		}
		// inside an optional wrapper everything stays optional
		if e.mandatory != nil {
			if err := p.collect(*e.mandatory, optional); err != nil {
				return err
			}
		}
		if e.optional != nil {
			if err := p.collect(*e.optional, true); err != nil {
				return err
			}
		}
		return nil
	default:
		return invalidExpression("modifier expression is empty")
	}
}

func (p *partition) collectAlias(alias string, optional bool) error {
	if IsWildcard(alias) || (optional && strings.EqualFold(alias, "any")) {
		p.any = true
		return nil
	}

	if strings.HasPrefix(alias, "?") {
		set, err := resolvePrefixed(alias)
		if err != nil {
			return err
		}
		p.optional = p.optional.Union(set)
		return nil
	}

	set, err := resolveString(alias)
	if err != nil {
		return err
	}
	if optional {
		p.optional = p.optional.Union(set)
	} else {
		p.mandatory = p.mandatory.Union(set)
	}
	return nil
}
