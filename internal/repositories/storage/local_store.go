package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"github.com/vinque/vinque_backend/internal/apperrors"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

// LocalStore keeps objects as files below a root directory.
type LocalStore struct {
	fs afero.Fs
}

var _ portsrepo.FileStore = (*LocalStore)(nil)

// NewLocalStore roots the store at dir on the OS filesystem, creating it if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return NewLocalStoreFs(afero.NewBasePathFs(osFs, dir)), nil
}

// NewLocalStoreFs wraps an existing filesystem. Tests pass afero.NewMemMapFs().
func NewLocalStoreFs(fsys afero.Fs) *LocalStore {
	return &LocalStore{fs: fsys}
}

// Put writes to a temporary sibling and renames it into place so readers
// never see a partial file.
func (s *LocalStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}
	tmp := key + ".part-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	f, err := s.fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("close object: %w", err)
	}
	if err := s.fs.Rename(tmp, key); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("commit object: %w", err)
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, *portsrepo.ObjectInfo, error) {
	f, err := s.fs.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, apperrors.NewNotFoundError("File not found")
		}
		return nil, nil, fmt.Errorf("open object: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat object: %w", err)
	}
	if st.IsDir() {
		f.Close()
		return nil, nil, apperrors.NewNotFoundError("File not found")
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("sniff object: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("rewind object: %w", err)
	}
	return f, &portsrepo.ObjectInfo{Key: key, Size: st.Size(), ContentType: mt.String(), ModTime: st.ModTime()}, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if err := s.fs.Remove(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
