package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	id := uuid.New()
	p, err := s.Upload(ctx, id, "landmark cases.html", strings.NewReader("<p>Marbury</p>"))
	require.NoError(t, err)
	assert.Equal(t, "snapshots/"+id.String()+"/landmark_cases.html", p)

	rc, err := s.Download(ctx, p)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "<p>Marbury</p>", string(body))

	require.NoError(t, s.Delete(ctx, p))
	_, err = s.Download(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Delete(ctx, p))
}

func TestSnapshotPath_StripsDirectories(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "snapshots/"+id.String()+"/x.md", snapshotPath(id, "../../etc/x.md"))
}

func TestNew(t *testing.T) {
	s, err := New(context.Background(), Config{Type: TypeLocal, LocalPath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = New(context.Background(), Config{Type: TypeS3})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Type: "ftp"})
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/html; charset=utf-8", contentType("index.html"))
	assert.Equal(t, "text/markdown; charset=utf-8", contentType("index.md"))
	assert.Equal(t, "application/octet-stream", contentType("blob"))
}
