// Package topics adds help topics to a cobra command tree. Topics are text
// or markdown files read from an fs.FS, usually one embedded in the binary,
// and are shown by "help <topic>" next to the usual command help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/agnivade/levenshtein"
	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/spf13/cobra"
)

// optionPrefix marks a topic documenting a flag: option-dry-run.txt is
// listed and looked up as --dry-run.
const optionPrefix = "option-"

// maxSuggestionDistance bounds "did you mean" suggestions for unknown topics
const maxSuggestionDistance = 2

// Topic is one help file
type Topic struct {
	Name     string // file name without extension
	Title    string // one-line summary shown by "help topics"
	FilePath string
	Content  string
}

// IsOption reports whether the topic documents a flag
func (t *Topic) IsOption() bool {
	return strings.HasPrefix(t.Name, optionPrefix)
}

// DisplayName is the name users type: "--dry-run" for option topics
func (t *Topic) DisplayName() string {
	if t.IsOption() {
		return "--" + strings.TrimPrefix(t.Name, optionPrefix)
	}
	return t.Name
}

// TopicManager loads topics and answers help requests
type TopicManager struct {
	fsys       fs.FS
	topicsDir  string
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Options configures the TopicManager
type Options struct {
	// Extensions considered topics, [".txt", ".md"] when empty
	Extensions []string
	// Renderer formats topic content, PlainRenderer when nil
	Renderer Renderer
}

// New creates a TopicManager with the default options
func New(fsys fs.FS, topicsDir string) *TopicManager {
	return NewWithOptions(fsys, topicsDir, Options{})
}

// NewWithOptions creates a TopicManager
func NewWithOptions(fsys fs.FS, topicsDir string, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topicsDir:  topicsDir,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

func (tm *TopicManager) supported(ext string) bool {
	for _, e := range tm.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// scanTopics loads every supported file under topicsDir, subdirectories
// included. A missing directory yields no topics.
func (tm *TopicManager) scanTopics() error {
	if _, err := fs.Stat(tm.fsys, tm.topicsDir); err != nil {
		return nil
	}

	return fs.WalkDir(tm.fsys, tm.topicsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if d.IsDir() || !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		topic := &Topic{
			Name:     strings.TrimSuffix(path.Base(p), ext),
			FilePath: p,
			Content:  string(content),
		}
		topic.Title = titleOf(topic)
		tm.topics[topic.Name] = topic
		return nil
	})
}

// titleOf returns the first non-blank line without markdown heading marks,
// skipping a line that only repeats the topic's name.
func titleOf(t *Topic) string {
	for _, line := range strings.Split(t.Content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line == "" || line == t.DisplayName() {
			continue
		}
		return line
	}
	return ""
}

// GetTopic finds a topic by name. Leading dashes are ignored, and flag
// names also match option topics.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the closest of candidates and the topic display names
// to name, or "" when nothing is close.
func (tm *TopicManager) Suggest(name string, candidates ...string) string {
	for _, n := range tm.ListTopics() {
		candidates = append(candidates, tm.topics[n].DisplayName())
	}

	best, bestDist := "", maxSuggestionDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func (tm *TopicManager) render(w io.Writer, topic *Topic) {
	_, _ = fmt.Fprint(w, tm.renderer.Render(topic.Content, path.Ext(topic.FilePath)))
}

func (tm *TopicManager) printTopicList(w io.Writer, program string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []*Topic
	for _, name := range names {
		if t := tm.topics[name]; t.IsOption() {
			options = append(options, t)
		} else {
			general = append(general, t)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Available help topics:")
	for _, section := range []struct {
		heading string
		topics  []*Topic
	}{{"General topics:", general}, {"Option topics:", options}} {
		if len(section.topics) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(tw, "\n%s\n", section.heading)
		for _, t := range section.topics {
			_, _ = fmt.Fprintf(tw, "  %s\t%s\n", t.DisplayName(), t.Title)
		}
	}
	_ = tw.Flush()
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Initialize sets up topic help with the default options
func Initialize(rootCmd *cobra.Command, fsys fs.FS, topicsDir string) error {
	return InitializeWithOptions(rootCmd, fsys, topicsDir, Options{})
}

// InitializeWithOptions loads the topics and replaces rootCmd's help
// command and help func with topic-aware versions.
func InitializeWithOptions(rootCmd *cobra.Command, fsys fs.FS, topicsDir string, opts Options) error {
	tm := NewWithOptions(fsys, topicsDir, opts)
	if err := tm.scanTopics(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to scan help topics").
			WithDetail("dir", topicsDir)
	}

	originalHelp := rootCmd.HelpFunc()
	program := rootCmd.Name()

	commandNames := func() []string {
		var names []string
		for _, c := range rootCmd.Commands() {
			if c.IsAvailableCommand() {
				names = append(names, c.Name())
			}
		}
		return names
	}

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic in the application.\n" +
			"Type " + program + " help [path to command or topic] for full details.\n\n" +
			"To see all available help topics:\n  " + program + " help topics",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := append([]string{"topics"}, commandNames()...)
			for _, name := range tm.ListTopics() {
				completions = append(completions, tm.topics[name].DisplayName())
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		// Flags are topic names here, "help --dry-run" included
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				originalHelp(rootCmd, nil)
				return
			case args[0] == "-h" || args[0] == "--help":
				originalHelp(cmd, nil)
				return
			case args[0] == "topics":
				tm.printTopicList(out, program)
				return
			}

			if topic, ok := tm.GetTopic(args[0]); ok {
				tm.render(out, topic)
				return
			}

			target, _, err := rootCmd.Find(args)
			if err == nil && target != nil && target != rootCmd {
				originalHelp(target, nil)
				return
			}

			_, _ = fmt.Fprintf(out, "Unknown help topic %q.", args[0])
			if s := tm.Suggest(args[0], commandNames()...); s != "" {
				_, _ = fmt.Fprintf(out, " Did you mean %q?", s)
			}
			_, _ = fmt.Fprintf(out, "\nRun '%s help topics' for the list of topics.\n", program)
		},
	}

	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := tm.GetTopic(args[0]); ok {
				tm.render(cmd.OutOrStdout(), topic)
				return
			}
		}
		originalHelp(cmd, args)
	})

	return nil
}
