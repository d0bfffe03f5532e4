// Package markdown renders marketing copy with glamour.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle removes the document margins glamour adds by default.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// plainEmphasisStyle drops the literal markers notty keeps around emphasis.
const plainEmphasisStyle = `{
	"emph": {"block_prefix": "", "block_suffix": ""},
	"strong": {"block_prefix": "", "block_suffix": ""},
	"strikethrough": {"block_prefix": "", "block_suffix": ""}
}`

// Renderer wraps a glamour renderer and memoizes output per source.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int

	mu    sync.Mutex
	cache map[string]string
}

// New creates a renderer that wraps at width. style is "dark", "light" or
// "plain" (no ANSI styling); empty means "dark".
// A fixed style path is used instead of auto-detection so glamour never
// queries the terminal background.
func New(width int, style string) (*Renderer, error) {
	opts := []glamour.TermRendererOption{}
	switch style {
	case "":
		opts = append(opts, glamour.WithStylePath("dark"))
	case "plain":
		opts = append(opts,
			glamour.WithStylePath("notty"),
			glamour.WithStylesFromJSONBytes([]byte(plainEmphasisStyle)),
		)
	default:
		opts = append(opts, glamour.WithStylePath(style))
	}
	opts = append(opts,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, cache: make(map[string]string)}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if out, ok := r.cache[markdown]; ok {
		return out, nil
	}
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	out = strings.Trim(out, "\n")
	r.cache[markdown] = out
	return out, nil
}

// MustRender renders markdown, falling back to the raw source on error.
func (r *Renderer) MustRender(markdown string) string {
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
