package karabuild

import (
	"embed"
	"fmt"
	"strings"

	"github.com/arthur-debert/karabuild/internal/version"
	"github.com/arthur-debert/karabuild/pkg/cobrax/topics"
	"github.com/arthur-debert/karabuild/pkg/config"
	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/karabiner"
	"github.com/arthur-debert/karabuild/pkg/logging"
	"github.com/arthur-debert/karabuild/pkg/modifiers"
	"github.com/arthur-debert/karabuild/pkg/profile"
	"github.com/arthur-debert/karabuild/pkg/rules"
	"github.com/arthur-debert/karabuild/pkg/style"
	"github.com/arthur-debert/karabuild/pkg/ui"
	"github.com/arthur-debert/karabuild/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed topics
var topicsFS embed.FS

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "karabuild",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.Options{
				Verbosity: opts.verbosity,
				Console:   cmd.ErrOrStderr(),
			})
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newAliasesCmd(opts))
	rootCmd.AddCommand(newProfilesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Help topics ship inside the binary
	topicOpts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewMarkdownRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig loads the layered configuration with command-line overrides
func loadConfig(opts *rootOptions, overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.Options{
		ConfigFile: opts.configFile,
		Overrides:  overrides,
	})
}

// newRenderer picks the renderer for the configured output format
func newRenderer(cmd *cobra.Command, cfg *config.Config) (ui.Renderer, error) {
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var profileName, karabinerJSON string

	cmd := &cobra.Command{
		Use:     "build [rules-file]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")

			overrides := map[string]interface{}{
				"profile":               profileName,
				"karabiner.config_file": karabinerJSON,
			}
			if len(args) == 1 {
				overrides["rules.file"] = args[0]
			}
			cfg, err := loadConfig(opts, overrides)
			if err != nil {
				return err
			}
			if cfg.Rules.File == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoRulesFile)
			}

			done := logging.LogOperationStart(logger, "build")
			defer done()

			file, err := rules.Load(cfg.Rules.File)
			if err != nil {
				return err
			}
			cm, err := rules.Build(file)
			if err != nil {
				return err
			}
			logger.Info().Msgf(MsgBuiltRules, len(cm.Rules), cfg.Rules.File)

			target := profile.Target{
				Name:          cfg.Profile,
				DryRun:        opts.dryRun,
				KarabinerJSON: cfg.KarabinerJSON(),
			}
			if err := profile.Write(target, cm, cmd.OutOrStdout()); err != nil {
				return err
			}
			if target.DryRun || target.Name == profile.DryRunName {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.WarningIndicator+" "+MsgDryRunNotice)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", MsgFlagProfile)
	cmd.Flags().StringVar(&karabinerJSON, "karabiner-json", "", MsgFlagKarabinerJSON)
	return cmd
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "resolve <expression>...",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, map[string]interface{}{"output.format": format})
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}

			result := &display.ResolveResult{}
			failed := 0
			for _, arg := range args {
				res := resolveArg(arg)
				if res.Error != "" {
					failed++
				}
				result.Results = append(result.Results, res)
			}

			if err := renderer.RenderResult(result); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Newf(errors.ErrInvalidExpression, MsgErrResolveFailed, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

// resolveArg resolves one command-line expression
func resolveArg(arg string) display.Resolution {
	res := display.Resolution{Input: arg}

	expr, err := parseExpression(arg)
	if err == nil {
		var spec modifiers.Specification
		if spec, err = modifiers.Assemble(expr); err == nil {
			res.Modifiers = karabiner.NewFromModifiers(spec)
			return res
		}
	}

	res.Error = err.Error()
	return res
}

// parseExpression reads an argument as a plain alias, or as a list or
// object literal when it starts with [ or {
func parseExpression(arg string) (modifiers.Expr, error) {
	trimmed := strings.TrimSpace(arg)
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return modifiers.Alias(arg), nil
	}

	// YAML flow syntax is a superset of JSON
	var v interface{}
	if err := yaml.Unmarshal([]byte(trimmed), &v); err != nil {
		return modifiers.Expr{}, errors.Wrapf(err, errors.ErrInvalidExpression, MsgErrExprLiteral, arg)
	}
	return modifiers.FromValue(v)
}

func newAliasesCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "aliases",
		Short:   MsgAliasesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, map[string]interface{}{"output.format": format})
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}
			return renderer.RenderResult(&display.AliasTable{Aliases: modifiers.Vocabulary()})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newProfilesCmd(opts *rootOptions) *cobra.Command {
	var format, karabinerJSON string

	cmd := &cobra.Command{
		Use:     "profiles",
		Short:   MsgProfilesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, map[string]interface{}{
				"output.format":         format,
				"karabiner.config_file": karabinerJSON,
			})
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, cfg)
			if err != nil {
				return err
			}

			target := profile.Target{KarabinerJSON: cfg.KarabinerJSON()}
			names, err := profile.NewWriter(afero.NewOsFs(), cmd.OutOrStdout()).Profiles(target)
			if err != nil {
				return err
			}
			return renderer.RenderResult(&display.ProfileList{
				Path:     target.Path(),
				Profiles: names,
				Current:  cfg.Profile,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVar(&karabinerJSON, "karabiner-json", "", MsgFlagKarabinerJSON)
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if template {
				_, err := fmt.Fprintln(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}
			content, err := cfg.Encode()
			if err != nil {
				return err
			}

			if len(cfg.Sources) == 0 {
				_, _ = fmt.Fprint(out, MsgNoConfigSources)
			} else {
				_, _ = fmt.Fprintf(out, MsgConfigSources, strings.Join(cfg.Sources, ", "))
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Run == nil {
				return errors.New(errors.ErrInternal, "help command unavailable")
			}
			helpCmd.Run(helpCmd, []string{"topics"})
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// FormatError renders a command error for the terminal, adding hints
// carried in the error details.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

	details := errors.GetErrorDetails(err)
	if available, ok := details["available"].([]string); ok && len(available) > 0 {
		b.WriteString("\n")
		b.WriteString(style.MutedStyle.Render("Available profiles: " + strings.Join(available, ", ")))
	}
	if errors.IsErrorCode(err, errors.ErrUnknownAlias) {
		b.WriteString("\n")
		b.WriteString(style.MutedStyle.Render("Run 'karabuild aliases' for the full list."))
	}
	return b.String()
}
