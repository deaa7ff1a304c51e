// Package helpdoc builds and renders the command reference shown by the
// help command.
package helpdoc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/amonks/tab/command"
	internalstrings "github.com/amonks/tab/internal/strings"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Markdown returns the command reference as markdown.
func Markdown() string {
	var builder strings.Builder
	builder.WriteString("# Commands\n\n")
	builder.WriteString("Arguments use prefixes: `m/` module, `s/` student id, `t/` task id, ")
	builder.WriteString("`n/` name, `e/` email, `d/` description. Bracketed arguments are optional.\n")
	for _, usage := range command.Usages() {
		fmt.Fprintf(&builder, "\n## %s\n\n%s.\n\n", usage.Word, usage.Summary)
		for _, line := range strings.Split(usage.Format, "\n") {
			fmt.Fprintf(&builder, "    %s\n", line)
		}
	}
	return builder.String()
}

// Render returns the command reference formatted for a terminal of the
// given width. Rendering failures fall back to the markdown source.
func Render(width int) string {
	if width < 1 {
		width = 80
	}
	source := Markdown()
	rendered := safeRender(rendererFor(width), source)
	rendered = internalstrings.TrimTrailingNewlines(rendered)
	return rendered + "\n"
}

func safeRender(r renderer, source string) (out string) {
	if r == nil {
		return source
	}
	defer func() {
		if recover() != nil {
			out = source
		}
	}()
	formatted, err := r.Render(source)
	if err != nil || strings.TrimSpace(formatted) == "" {
		return source
	}
	return formatted
}

func rendererFor(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
