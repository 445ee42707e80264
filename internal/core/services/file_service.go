package services

import (
	"context"
	"io"

	"github.com/vinque/vinque_backend/internal/apperrors"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/utils"
)

// fileService implements FileSvcFacade.
type fileService struct {
	BaseService
	store portsrepo.FileStore
}

// NewFileService serves uploads from store.
func NewFileService(store portsrepo.FileStore) portssvc.FileSvcFacade {
	return &fileService{store: store}
}

var _ portssvc.FileSvcFacade = (*fileService)(nil)

func (s *fileService) Open(ctx context.Context, rawKey string) (io.ReadCloser, *portsrepo.ObjectInfo, error) {
	key, ok := utils.CleanObjectKey(rawKey)
	if !ok {
		return nil, nil, apperrors.NewNotFoundError("File not found")
	}
	rc, info, err := s.store.Open(ctx, key)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.Wrap(apperrors.NewNotFoundError("File not found"), err)
		}
		return nil, nil, err
	}
	return rc, info, nil
}
