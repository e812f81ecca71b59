package exporter

import (
	"os"

	"github.com/m-mizutani/ghresume/pkg/domain/types"
	"github.com/m-mizutani/ghresume/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// writeTempHTML writes the document to a temporary file so the browser can
// load it over file://. The caller must invoke cleanup.
func writeTempHTML(content string) (string, func(), error) {
	fd, err := os.CreateTemp("", "ghresume-*.html")
	if err != nil {
		return "", nil, goerr.Wrap(types.ErrRenderFailed, "failed to create temp file", goerr.V("cause", err.Error()))
	}

	if _, err := fd.WriteString(content); err != nil {
		safe.Close(fd)
		safe.Remove(fd.Name())
		return "", nil, goerr.Wrap(types.ErrRenderFailed, "failed to write temp file", goerr.V("cause", err.Error()))
	}
	if err := fd.Close(); err != nil {
		safe.Remove(fd.Name())
		return "", nil, goerr.Wrap(types.ErrRenderFailed, "failed to close temp file", goerr.V("cause", err.Error()))
	}

	path := fd.Name()
	cleanup := func() { safe.Remove(path) }
	return path, cleanup, nil
}
