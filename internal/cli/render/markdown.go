package render

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/agenthub-dev/agenthub/internal/frontmatter"
)

// Renderer converts asset documentation into styled terminal output
type Renderer struct {
	term  *glamour.TermRenderer
	width int
}

// New creates a renderer with terminal-appropriate styling. If glamour fails
// to initialize, the renderer degrades to plain text.
func New(width int) *Renderer {
	if width <= 0 {
		width = 80 // Default terminal width
	}

	term, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Detect light/dark terminal
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return &Renderer{width: width}
	}

	return &Renderer{term: term, width: width}
}

// Document splits front matter off the content, renders the metadata block
// as a table and the remainder as markdown
func (r *Renderer) Document(content string) string {
	meta, body := frontmatter.Parse(content)

	var b strings.Builder
	if len(meta) > 0 {
		b.WriteString(metadataTable(meta))
		b.WriteString("\n")
	}
	if body != "" {
		b.WriteString(r.Markdown(body))
	}
	return b.String()
}

// Markdown converts markdown to styled terminal output, returning the
// original text if rendering fails
func (r *Renderer) Markdown(markdown string) string {
	if r.term == nil {
		return markdown
	}

	rendered, err := r.term.Render(markdown)
	if err != nil {
		return markdown
	}

	return strings.TrimSuffix(rendered, "\n")
}

// metadataTable formats front matter pairs in a stable key order
func metadataTable(meta map[string]string) string {
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("METADATA\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "  %s\t%s\n", key, meta[key])
	}
	w.Flush()
	return b.String()
}
