package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"swiftdoc/internal/client"
)

// Saver persists an exported artifact. The default saver writes to a
// directory; tests and other frontends substitute their own sink.
type Saver interface {
	Save(filename string, data []byte) (string, error)
}

// DirSaver writes artifacts into one directory. It writes to a temp file
// first and renames on success, so a failed export never leaves a partial
// file at the destination.
type DirSaver struct {
	Dir string
}

// Save writes data under the saver's directory and returns the final path.
func (s DirSaver) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	dest := filepath.Join(s.Dir, filename)
	tmp, err := os.CreateTemp(s.Dir, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("move artifact into place: %w", err)
	}
	return dest, nil
}

// Exporter fetches a project's composed artifact and hands it to a saver.
// Nothing is cached; every export re-fetches the current backend state.
type Exporter struct {
	api   API
	saver Saver
}

// NewExporter wires an exporter to the api and saver.
func NewExporter(api API, saver Saver) *Exporter {
	return &Exporter{api: api, saver: saver}
}

// Export downloads the project's artifact and saves it. Returns the path the
// saver reports. docType picks the fallback filename when the backend does
// not suggest one.
func (e *Exporter) Export(ctx context.Context, session *client.Session, projectID, docType string) (string, error) {
	data, filename, err := e.api.ExportProject(ctx, session, projectID, docType)
	if err != nil {
		return "", fmt.Errorf("export project %s: %w", projectID, err)
	}

	path, err := e.saver.Save(filename, data)
	if err != nil {
		return "", fmt.Errorf("save artifact: %w", err)
	}
	return path, nil
}
