package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"legalgpt-portal/app"
	"legalgpt-portal/knowledge"
	"legalgpt-portal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, s storage.Storage, p string) string {
	t.Helper()
	rc, err := s.Download(context.Background(), p)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestExport(t *testing.T) {
	a, err := app.New(knowledge.Default())
	require.NoError(t, err)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	m, err := NewExporter(a, store, nil).Export(context.Background())
	require.NoError(t, err)

	assert.Len(t, m.Documents, 2*len(a.Sections()))
	byName := map[string]Document{}
	for _, d := range m.Documents {
		byName[string(d.Section)+"."+d.Format] = d
	}

	casesHTML := read(t, store, byName["cases.html"].Path)
	assert.Contains(t, casesHTML, "<!DOCTYPE html>")
	assert.Contains(t, casesHTML, "Marbury v. Madison")
	assert.Contains(t, casesHTML, `class="content-section active"`)

	casesMD := read(t, store, byName["cases.md"].Path)
	assert.Contains(t, casesMD, "# Landmark Cases")
	assert.Contains(t, casesMD, "Mapp v. Ohio")

	provisionsMD := read(t, store, byName["provisions.md"].Path)
	assert.Contains(t, provisionsMD, "Tort Law")

	var stored Manifest
	require.NoError(t, json.Unmarshal([]byte(read(t, store, m.Path)), &stored))
	assert.Equal(t, m.ID, stored.ID)
	assert.Len(t, stored.Documents, len(m.Documents))
}

func TestExport_DoesNotTouchPage(t *testing.T) {
	a, err := app.New(knowledge.Default())
	require.NoError(t, err)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = NewExporter(a, store, nil).Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []app.SectionID{app.SectionConsultation}, a.ActiveSections())
}

// failingStorage fails the upload of one file name
type failingStorage struct {
	storage.Storage
	failOn  string
	deleted []string
}

func (s *failingStorage) Upload(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (string, error) {
	if filename == s.failOn {
		return "", errors.New("bucket unavailable")
	}
	return s.Storage.Upload(ctx, id, filename, data)
}

func (s *failingStorage) Delete(ctx context.Context, p string) error {
	s.deleted = append(s.deleted, p)
	return s.Storage.Delete(ctx, p)
}

func TestExport_FailureRemovesUploadedDocuments(t *testing.T) {
	a, err := app.New(knowledge.Default())
	require.NoError(t, err)
	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	store := &failingStorage{Storage: local, failOn: "cases.html"}

	m, err := NewExporter(a, store, nil).Export(context.Background())
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "cases.html")

	// consultation and provisions were uploaded as html and md before the failure
	assert.Len(t, store.deleted, 4)
	for _, p := range store.deleted {
		_, err := store.Download(context.Background(), p)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	}

	var files []string
	require.NoError(t, filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, p)
		}
		return err
	}))
	assert.Empty(t, files)
}
