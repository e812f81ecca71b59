package renderer

import (
	"bytes"
	"context"

	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// newMarkdown builds the goldmark instance with GFM extensions so README
// tables, task lists and autolinks render the way they do on github.com.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
			// README markdown may embed raw HTML; it is allowed through
			// goldmark and then stripped down by the bluemonday policy.
			goldmarkhtml.WithUnsafe(),
		),
	)
}

// newSanitizePolicy restricts README HTML to a safe subset: text
// formatting, images, and links. Scripts and styles are removed including
// their content, and every absolute link is forced to open in a new
// browsing context without opener access.
func newSanitizePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("title", "width", "height").OnElements("img")
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// MarkdownToHTML converts untrusted user-authored markdown into a
// sanitized HTML fragment. This is the one security-relevant step of the
// pipeline: no executable content may survive it.
func (x *Renderer) MarkdownToHTML(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := x.md.Convert([]byte(markdown), &buf); err != nil {
		return "", goerr.Wrap(types.ErrRenderFailed, "failed to convert markdown", goerr.V("cause", err.Error()))
	}

	return x.policy.Sanitize(buf.String()), nil
}
