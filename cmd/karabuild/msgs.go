package karabuild

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Build Karabiner-Elements rules from readable modifier aliases"
	MsgBuildShort      = "Write a rules file into a Karabiner-Elements profile"
	MsgResolveShort    = "Show how modifier expressions resolve"
	MsgAliasesShort    = "List every modifier alias"
	MsgProfilesShort   = "List the profiles in karabiner.json"
	MsgConfigShort     = "Show the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice    = "dry run: karabiner.json was not modified"
	MsgBuiltRules      = "Built %d rule(s) from %s"
	MsgConfigSources   = "# loaded from: %s\n"
	MsgNoConfigSources = "# no config files found, showing defaults\n"
	MsgVersionFormat   = "karabuild version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrResolveFailed = "%d of %d expression(s) failed to resolve"
	MsgErrExprLiteral   = "cannot parse %q as a JSON or YAML literal"
	MsgErrNoRulesFile   = "no rules file given and none configured"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Print the result instead of writing karabiner.json"
	MsgFlagConfig        = "Config file (default $XDG_CONFIG_HOME/karabuild/config.toml)"
	MsgFlagProfile       = "Karabiner-Elements profile to write to"
	MsgFlagKarabinerJSON = "Path of karabiner.json"
	MsgFlagFormat        = "Output format: auto, term, text or json"
	MsgFlagTemplate      = "Print a commented config file template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
