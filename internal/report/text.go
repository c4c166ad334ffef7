package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/modu-ai/namelint/internal/ui"
)

type textRenderer struct {
	styles ui.Styles
}

func newTextRenderer(color bool) textRenderer {
	return textRenderer{styles: ui.NewTheme(ui.ThemeConfig{NoColor: !color}).Styles()}
}

// Render writes one `path: [rule] message` line per violation, a blank
// line between files and a closing summary.
func (t textRenderer) Render(w io.Writer, r *Report) error {
	var sb strings.Builder
	for i, g := range r.Groups() {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, v := range g.Violations {
			sb.WriteString(t.styles.File.Render(v.FilePath))
			sb.WriteString(": ")
			sb.WriteString(t.styles.Rule.Render("[" + string(v.Rule) + "]"))
			sb.WriteString(" ")
			sb.WriteString(t.styles.Message.Render(v.Message))
			if s := suggestionNote(v); s != "" {
				sb.WriteString(" ")
				sb.WriteString(t.styles.Hint.Render(fmt.Sprintf("(suggested: %s)", s)))
			}
			sb.WriteString("\n")
		}
	}

	if len(r.Violations) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(t.summary(r))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t textRenderer) summary(r *Report) string {
	files := plural(r.Summary.Files, "file", "files")
	if !r.Failed() {
		return t.styles.Success.Render("No naming violations in " + files + ".")
	}
	affected := len(r.Groups())
	return t.styles.Failure.Render(fmt.Sprintf("%s in %d of %s.",
		plural(r.Summary.Violations, "violation", "violations"), affected, files))
}
