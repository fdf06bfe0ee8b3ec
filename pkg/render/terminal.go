package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// messageIndent is the prefix for detail lines under a failure heading.
const messageIndent = "    "

// Terminal renders failures as styled terminal output via lipgloss.
type Terminal struct {
	theme       Theme
	width       int
	showBrowser bool
}

// NewTerminal creates a terminal renderer. Widths of zero or less fall back
// to 80 columns.
func NewTerminal(theme Theme, width int, showBrowser bool) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, showBrowser: showBrowser}
}

// Render formats all failures followed by a one-line summary.
func (t *Terminal) Render(failures []Failure) string {
	var sb strings.Builder
	for _, f := range failures {
		t.renderFailure(&sb, f)
	}
	sb.WriteString(t.renderSummary(len(failures)))
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderFailure(sb *strings.Builder, f Failure) {
	sb.WriteString(t.theme.Error.Render(t.theme.Icons.Fail))
	sb.WriteString(" ")
	sb.WriteString(t.theme.Bold.Render(f.FullName))
	if t.showBrowser && f.Browser.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(t.theme.Muted.Render("[" + f.Browser.Name + "]"))
	}
	sb.WriteString("\n")

	if f.Parsed.Location != nil {
		sb.WriteString(messageIndent)
		sb.WriteString(t.theme.Location.Render(f.Parsed.Location.String()))
		sb.WriteString("\n")
	}

	sb.WriteString(messageIndent)
	sb.WriteString(truncate(f.Parsed.Message, t.width-len(messageIndent)))
	sb.WriteString("\n")
}

func (t *Terminal) renderSummary(n int) string {
	if n == 0 {
		return t.theme.Success.Render(t.theme.Icons.Pass + " " + title("no spec failures"))
	}
	noun := "spec failures"
	if n == 1 {
		noun = "spec failure"
	}
	return t.theme.Error.Render(fmt.Sprintf("%s %d %s", t.theme.Icons.Fail, n, title(noun)))
}

// title upper-cases the first letter of each word. A Caser is not safe for
// concurrent use, so one is built per call.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// truncate shortens s to at most width terminal cells, counting East Asian
// wide characters as two cells.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
