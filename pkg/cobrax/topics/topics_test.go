package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/option-dry-run.txt": {Data: []byte("Information about dry-run mode")},
		"help/modifiers.md":       {Data: []byte("# Modifiers\n\nAlias details")},
		"help/config.txxt":        {Data: []byte("Configuration Guide")},
		"help/ignore.json":        {Data: []byte("This should be ignored")},
		"help/advanced/rules.md":  {Data: []byte("# Rules")},
		"other/not-a-topic.md":    {Data: []byte("elsewhere")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), "help")
		require.NoError(t, tm.scanTopics())

		assert.Equal(t, []string{"modifiers", "option-dry-run", "rules"}, tm.ListTopics())

		topic, ok := tm.GetTopic("modifiers")
		require.True(t, ok)
		assert.Equal(t, "# Modifiers\n\nAlias details", topic.Content)
		assert.Equal(t, "help/modifiers.md", topic.FilePath)
		assert.Equal(t, "Modifiers", topic.Title)
		assert.False(t, topic.IsOption())

		topic, ok = tm.GetTopic("dry-run")
		require.True(t, ok)
		assert.True(t, topic.IsOption())
		assert.Equal(t, "--dry-run", topic.DisplayName())
		assert.Equal(t, "Information about dry-run mode", topic.Title)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), "help", Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("missing directory", func(t *testing.T) {
		tm := New(testFS(), "nope")
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	for _, name := range []string{"dry-run", "--dry-run", "-dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Information about dry-run mode", topic.Content)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return strings.ToUpper(content)
}

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "karabuild", Short: "root"}
	root.AddCommand(&cobra.Command{Use: "build", Short: "Build rules", Run: func(*cobra.Command, []string) {}})
	return root
}

func TestInitialize_HelpCommand(t *testing.T) {
	renderer := &upperRenderer{}
	root := newRoot()
	require.NoError(t, InitializeWithOptions(root, testFS(), "help", Options{Renderer: renderer}))

	run := func(args ...string) string {
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return out.String()
	}

	t.Run("topic", func(t *testing.T) {
		assert.Equal(t, "# MODIFIERS\n\nALIAS DETAILS", run("help", "modifiers"))
		assert.Equal(t, ".md", renderer.formats[len(renderer.formats)-1])
	})

	t.Run("topic list", func(t *testing.T) {
		out := run("help", "topics")
		assert.Contains(t, out, "General topics:\n  modifiers  Modifiers\n  rules      Rules\n")
		assert.Contains(t, out, "Option topics:\n  --dry-run  Information about dry-run mode\n")
		assert.Contains(t, out, "Use 'karabuild help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		assert.Contains(t, run("help", "build"), "Build rules")
	})

	t.Run("root", func(t *testing.T) {
		assert.Contains(t, run("help"), "build")
	})

	t.Run("flag-style topic", func(t *testing.T) {
		assert.Equal(t, "INFORMATION ABOUT DRY-RUN MODE", run("help", "--dry-run"))
	})

	t.Run("unknown topic with suggestion", func(t *testing.T) {
		out := run("help", "modifers")
		assert.Contains(t, out, `Unknown help topic "modifers". Did you mean "modifiers"?`)
		assert.Contains(t, out, "Run 'karabuild help topics'")
	})

	t.Run("unknown topic", func(t *testing.T) {
		out := run("help", "zzzzzzzz")
		assert.Contains(t, out, `Unknown help topic "zzzzzzzz".`)
		assert.NotContains(t, out, "Did you mean")
	})
}

func TestTitleSkipsRepeatedName(t *testing.T) {
	topic := &Topic{Name: "option-verbose", Content: "--verbose\n\nMore output.\n"}
	assert.Equal(t, "More output.", titleOf(topic))

	assert.Equal(t, "", titleOf(&Topic{Name: "empty", Content: "\n\n"}))
}

func TestSuggest(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, "rules", tm.Suggest("rulse"))
	assert.Equal(t, "--dry-run", tm.Suggest("--dry-rn"))
	assert.Equal(t, "build", tm.Suggest("buld", "build", "resolve"))
	assert.Equal(t, "", tm.Suggest("something-else"))
}

func TestInitialize_NoTopics(t *testing.T) {
	root := newRoot()
	require.NoError(t, Initialize(root, fstest.MapFS{}, "help"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "No help topics available.\n", out.String())
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
}

func TestMarkdownRenderer(t *testing.T) {
	r := &MarkdownRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Modifier aliases\n\nSome *text*.\n", ".md")
	assert.Contains(t, out, "Modifier aliases")
	assert.Contains(t, out, "text")
}

func TestNewMarkdownRendererWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "notty", NewMarkdownRenderer().Style)
}

func TestMarkdownRendererFallsBackOnBadStyle(t *testing.T) {
	r := &MarkdownRenderer{Style: "/nonexistent/style.json"}
	assert.Equal(t, "# x", r.Render("# x", ".md"))
}
