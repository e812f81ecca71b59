package renderer

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"

	"github.com/m-mizutani/ghresume/pkg/domain/interfaces"
	"github.com/m-mizutani/ghresume/pkg/domain/model"
	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

//go:embed templates/resume.html.tmpl
var resumeTemplate string

// StyleCSS is the resume stylesheet. It is inlined into every rendered
// document so the markup stays self-contained for file:// loading, and the
// server additionally exposes it under /static/.
//
//go:embed templates/resume.css
var StyleCSS string

// Renderer renders resume view models into HTML documents and converts
// README markdown into sanitized fragments.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	tmpl   *template.Template
}

var _ interfaces.Renderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{
		md:     newMarkdown(),
		policy: newSanitizePolicy(),
		tmpl:   template.Must(template.New("resume").Parse(resumeTemplate)),
	}
}

type templateData struct {
	Resume *model.Resume

	// ReadmeHTML is already sanitized; the template embeds it verbatim.
	ReadmeHTML template.HTML

	Style   template.CSS
	Preview bool
}

// RenderResume renders the view model into a full HTML document. The
// preview variant carries a download affordance pointing at the PDF route;
// the document variant is the final markup handed to the exporter.
func (x *Renderer) RenderResume(ctx context.Context, resume *model.Resume, variant types.RenderVariant) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := &templateData{
		Resume:     resume,
		ReadmeHTML: template.HTML(resume.ReadmeHTML),
		Style:      template.CSS(StyleCSS),
		Preview:    variant == types.RenderVariantPreview,
	}

	var buf bytes.Buffer
	if err := x.tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(types.ErrRenderFailed, "failed to execute resume template", goerr.V("variant", variant))
	}

	return buf.String(), nil
}
