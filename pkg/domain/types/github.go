package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubUser  string
	GitHubToken string
	RequestID   string
)

// RenderVariant selects the resume template variant.
type RenderVariant string

const (
	// RenderVariantPreview includes the download affordance for browsers.
	RenderVariantPreview RenderVariant = "preview"
	// RenderVariantDocument is the final markup rasterized into the PDF.
	RenderVariantDocument RenderVariant = "document"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubUser) String() string {
	return string(x)
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
