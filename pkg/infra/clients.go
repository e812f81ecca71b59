package infra

import (
	"github.com/m-mizutani/ghresume/pkg/domain/interfaces"
	"github.com/m-mizutani/ghresume/pkg/infra/exporter"
	"github.com/m-mizutani/ghresume/pkg/infra/renderer"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	renderer     interfaces.Renderer
	pdfExporter  interfaces.PDFExporter
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		renderer:    renderer.New(),
		pdfExporter: exporter.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) Renderer() interfaces.Renderer {
	return x.renderer
}
func (x *Clients) PDFExporter() interfaces.PDFExporter {
	return x.pdfExporter
}

func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithRenderer(r interfaces.Renderer) Option {
	return func(x *Clients) {
		x.renderer = r
	}
}

func WithPDFExporter(e interfaces.PDFExporter) Option {
	return func(x *Clients) {
		x.pdfExporter = e
	}
}
