package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/ghannotate/pkg/annotate"
	"github.com/dkoosis/ghannotate/pkg/render"
	"github.com/dkoosis/ghannotate/pkg/stacktrace"
)

func located(msg string) stacktrace.ParsedError {
	return stacktrace.ParsedError{
		Message:  msg,
		Location: &stacktrace.Location{File: "test/foo.js", Line: "11", Column: "15"},
	}
}

func TestTerminal_RendersFailures(t *testing.T) {
	t.Parallel()

	r := render.NewTerminal(render.MonoTheme(), 80, false)
	out := r.Render([]render.Failure{
		{Browser: annotate.Browser{Name: "Chrome"}, FullName: "Foo can Bar", Parsed: located("Error: Expected 0 to be 1.")},
		{Browser: annotate.Browser{Name: "Chrome"}, FullName: "Foo can Baz", Parsed: stacktrace.ParsedError{Message: "Error: nope"}},
	})

	assert.Equal(t, strings.Join([]string{
		"x Foo can Bar",
		"    test/foo.js:11:15",
		"    Error: Expected 0 to be 1.",
		"x Foo can Baz",
		"    Error: nope",
		"x 2 Spec Failures",
		"",
	}, "\n"), out)
}

func TestTerminal_ShowBrowser(t *testing.T) {
	t.Parallel()

	r := render.NewTerminal(render.MonoTheme(), 80, true)
	out := r.Render([]render.Failure{
		{Browser: annotate.Browser{Name: "Chrome (Linux)"}, FullName: "Foo can Bar", Parsed: located("Error")},
	})

	assert.Contains(t, out, "x Foo can Bar [Chrome (Linux)]\n")
	assert.Contains(t, out, "x 1 Spec Failure\n")
}

func TestTerminal_NoFailures(t *testing.T) {
	t.Parallel()

	out := render.NewTerminal(render.MonoTheme(), 0, false).Render(nil)

	assert.Equal(t, "+ No Spec Failures\n", out)
}

func TestTerminal_TruncatesLongMessages(t *testing.T) {
	t.Parallel()

	r := render.NewTerminal(render.MonoTheme(), 20, false)
	out := r.Render([]render.Failure{
		{FullName: "T", Parsed: stacktrace.ParsedError{Message: "Error: this message is far too long"}},
	})

	lines := strings.Split(out, "\n")
	assert.Equal(t, "    Error: this mes…", lines[1])
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mono", render.ThemeByName("mono").Name)
	assert.Equal(t, "default", render.ThemeByName("default").Name)
	assert.Equal(t, "default", render.ThemeByName("unknown").Name)
}
