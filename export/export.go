// Package export writes a static snapshot of every portal section to storage as HTML and
// Markdown documents, plus a manifest listing them.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"legalgpt-portal/app"
	"legalgpt-portal/storage"
	"legalgpt-portal/view"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Document is one stored snapshot file
type Document struct {
	Section app.SectionID `json:"section"`
	Format  string        `json:"format"`
	Path    string        `json:"path"`
	Bytes   int           `json:"bytes"`
}

// Manifest describes a completed snapshot
type Manifest struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	Documents []Document `json:"documents"`
	Path      string     `json:"path"`
}

// Exporter renders an App's sections and uploads them
type Exporter struct {
	app     *app.App
	storage storage.Storage
	logger  *zap.Logger
	now     func() time.Time
}

// NewExporter creates a new exporter
func NewExporter(a *app.App, s storage.Storage, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{app: a, storage: s, logger: logger, now: time.Now}
}

// Export renders every registered section to a standalone HTML document and a Markdown
// document, uploads both and finally uploads the manifest. If any step fails, the documents
// already uploaded for the snapshot are deleted again.
func (e *Exporter) Export(ctx context.Context) (_ *Manifest, err error) {
	title := e.app.Knowledge().Project().Name
	m := &Manifest{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: e.now().UTC(),
	}
	defer func() {
		if err != nil {
			e.discard(ctx, m)
		}
	}()

	for _, s := range e.app.Sections() {
		node := e.app.SectionNode(s.ID)
		if node == nil {
			return nil, fmt.Errorf("section %q missing from page", s.ID)
		}
		section := view.Clone(node)
		// every exported page shows its section regardless of navigation state
		view.AddClass(section, "active")

		markup, err := view.Render(view.Document(fmt.Sprintf("%s | %s", s.Label, title), section))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.ID, err)
		}
		doc, err := e.upload(ctx, m.ID, s.ID, "html", []byte(markup))
		if err != nil {
			return nil, err
		}
		m.Documents = append(m.Documents, doc)

		md, err := view.Markdown(section)
		if err != nil {
			return nil, fmt.Errorf("converting %s to markdown: %w", s.ID, err)
		}
		md = "# " + s.Label + "\n\n" + strings.TrimSpace(md) + "\n"
		doc, err = e.upload(ctx, m.ID, s.ID, "md", []byte(md))
		if err != nil {
			return nil, err
		}
		m.Documents = append(m.Documents, doc)
	}

	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	p, err := e.storage.Upload(ctx, m.ID, "manifest.json", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("uploading manifest: %w", err)
	}
	m.Path = p

	e.logger.Info("snapshot exported",
		zap.String("id", m.ID.String()),
		zap.Int("documents", len(m.Documents)),
		zap.String("manifest", p),
	)
	return m, nil
}

func (e *Exporter) upload(ctx context.Context, id uuid.UUID, section app.SectionID, format string, body []byte) (Document, error) {
	name := string(section) + "." + format
	p, err := e.storage.Upload(ctx, id, name, bytes.NewReader(body))
	if err != nil {
		return Document{}, fmt.Errorf("uploading %s: %w", name, err)
	}
	e.logger.Debug("uploaded snapshot document", zap.String("path", p), zap.Int("bytes", len(body)))
	return Document{Section: section, Format: format, Path: p, Bytes: len(body)}, nil
}

// discard deletes the uploaded documents of an incomplete snapshot
func (e *Exporter) discard(ctx context.Context, m *Manifest) {
	ctx = context.WithoutCancel(ctx)
	for _, d := range m.Documents {
		if err := e.storage.Delete(ctx, d.Path); err != nil {
			e.logger.Warn("failed to delete partial snapshot document",
				zap.String("id", m.ID.String()),
				zap.String("path", d.Path),
				zap.Error(err),
			)
		}
	}
	e.logger.Warn("snapshot export aborted",
		zap.String("id", m.ID.String()),
		zap.Int("discarded", len(m.Documents)),
	)
}
