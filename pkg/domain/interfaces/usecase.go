package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/ghresume/pkg/domain/types"
)

type UseCase interface {
	// Preview builds and renders the resume as HTML with the download
	// affordance included.
	Preview(ctx context.Context, user types.GitHubUser) (string, error)

	// ExportPDF builds and renders the resume, then rasterizes it to PDF.
	ExportPDF(ctx context.Context, user types.GitHubUser) ([]byte, error)
}
