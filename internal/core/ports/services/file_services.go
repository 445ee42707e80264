package services

import (
	"context"
	"io"

	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

// FileSvcFacade serves stored uploads.
type FileSvcFacade interface {
	// Open streams the object behind a public uploads path.
	Open(ctx context.Context, rawKey string) (io.ReadCloser, *portsrepo.ObjectInfo, error)
}
