package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinque/vinque_backend/internal/apperrors"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestLocalStore_PutOpenDelete(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewLocalStoreFs(fsys)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "profile_pics/1-a.png", bytes.NewReader(pngHeader), int64(len(pngHeader)), "image/png"))

	entries, err := afero.ReadDir(fsys, "profile_pics")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must be renamed away")

	rc, info, err := store.Open(ctx, "profile_pics/1-a.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, pngHeader, body)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, int64(len(pngHeader)), info.Size)

	require.NoError(t, store.Delete(ctx, "profile_pics/1-a.png"))
	_, _, err = store.Open(ctx, "profile_pics/1-a.png")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestLocalStore_DeleteMissingSucceeds(t *testing.T) {
	store := NewLocalStoreFs(afero.NewMemMapFs())
	assert.NoError(t, store.Delete(context.Background(), "business_permits/none.pdf"))
}

func TestLocalStore_OpenDirectoryIsNotFound(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("product_images", 0o755))
	_, _, err := NewLocalStoreFs(fsys).Open(context.Background(), "product_images")
	assert.True(t, apperrors.IsNotFound(err))
}
