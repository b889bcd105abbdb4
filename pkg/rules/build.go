package rules

import (
	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/karabiner"
	"github.com/arthur-debert/karabuild/pkg/logging"
	"github.com/arthur-debert/karabuild/pkg/modifiers"
)

// Build resolves every mapping in f and returns the complex modifications
// to write into a profile. The first invalid mapping stops the build; the
// returned error names the rule and mapping and wraps the underlying cause.
func Build(f *File) (karabiner.ComplexModifications, error) {
	logger := logging.GetLogger("rules.build")

	cm := karabiner.ComplexModifications{
		Parameters: f.Parameters,
		Rules:      make([]karabiner.Rule, 0, len(f.Rules)),
	}

	for i, r := range f.Rules {
		if r.Description == "" {
			return karabiner.ComplexModifications{}, errors.Newf(errors.ErrRulesInvalid, "rule %d has no description", i+1).
				WithDetail("rule", i+1)
		}
		if len(r.Map) == 0 {
			return karabiner.ComplexModifications{}, errors.Newf(errors.ErrRulesInvalid, "rule %d (%s) has no mappings", i+1, r.Description).
				WithDetail("rule", i+1)
		}

		rule := karabiner.Rule{
			Description:  r.Description,
			Manipulators: make([]karabiner.Manipulator, 0, len(r.Map)),
		}
		for j, m := range r.Map {
			manipulator, err := buildManipulator(m)
			if err != nil {
				return karabiner.ComplexModifications{}, errors.Wrapf(err, errors.ErrRulesInvalid,
					"rule %d (%s), mapping %d", i+1, r.Description, j+1).
					WithDetail("rule", i+1).
					WithDetail("mapping", j+1)
			}
			rule.Manipulators = append(rule.Manipulators, manipulator)
		}
		cm.Rules = append(cm.Rules, rule)
	}

	logger.Debug().Int("rules", len(cm.Rules)).Msg("Complex modifications built")
	return cm, nil
}

func buildManipulator(m Mapping) (karabiner.Manipulator, error) {
	if m.From == "" {
		return karabiner.Manipulator{}, errors.New(errors.ErrRulesInvalid, "mapping has no from key")
	}
	if m.To == "" && m.ToIfAlone == "" && m.Shell == "" {
		return karabiner.Manipulator{}, errors.New(errors.ErrRulesInvalid, "mapping needs one of to, to_if_alone or shell")
	}
	if m.ToModifiers != nil && m.To == "" {
		return karabiner.Manipulator{}, errors.New(errors.ErrRulesInvalid, "to_modifiers requires to")
	}

	manipulator := karabiner.Manipulator{
		Type: karabiner.ManipulatorBasic,
		From: karabiner.FromEvent{KeyCode: m.From},
	}

	if m.Modifiers != nil {
		spec, err := resolve(m.Modifiers)
		if err != nil {
			return karabiner.Manipulator{}, err
		}
		manipulator.From.Modifiers = karabiner.NewFromModifiers(spec)
	}

	if m.To != "" {
		to := karabiner.ToEvent{KeyCode: m.To}
		if m.ToModifiers != nil {
			spec, err := resolve(m.ToModifiers)
			if err != nil {
				return karabiner.Manipulator{}, err
			}
			if to.Modifiers, err = karabiner.NewToModifiers(spec); err != nil {
				return karabiner.Manipulator{}, err
			}
		}
		manipulator.To = append(manipulator.To, to)
	}
	if m.Shell != "" {
		manipulator.To = append(manipulator.To, karabiner.ToEvent{ShellCommand: m.Shell})
	}
	if m.ToIfAlone != "" {
		manipulator.ToIfAlone = []karabiner.ToEvent{{KeyCode: m.ToIfAlone}}
	}
	if len(m.FrontmostApps) > 0 {
		manipulator.Conditions = []karabiner.Condition{{
			Type:              karabiner.ConditionFrontmostApplicationIf,
			BundleIdentifiers: m.FrontmostApps,
		}}
	}

	return manipulator, nil
}

func resolve(v interface{}) (modifiers.Specification, error) {
	expr, err := modifiers.FromValue(v)
	if err != nil {
		return modifiers.Specification{}, err
	}
	return modifiers.Assemble(expr)
}
