// Package layoutfile saves and loads layout documents on disk.
package layoutfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/infrastructure/codec"
	"github.com/bnema/splitpane/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Save encodes doc and writes it to path. The format follows the file
// extension unless one is given. The write goes through a temporary file
// renamed into place while an exclusive lock is held on path.lock.
func Save(ctx context.Context, path string, doc *entity.LayoutDocument, format codec.Format) error {
	log := logging.FromContext(ctx)

	if format == "" {
		format = codec.FormatFromPath(path)
	}
	data, err := codec.Marshal(doc, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	unlock, err := lockPath(path, true)
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write layout: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close layout file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set layout file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move layout into place: %w", err)
	}

	log.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("pane_count", doc.PaneCount()).
		Msg("layout file saved")
	return nil
}

// Load reads and validates the layout document at path under a shared lock.
func Load(ctx context.Context, path string, format codec.Format) (*entity.LayoutDocument, error) {
	if format == "" {
		format = codec.FormatFromPath(path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}

	unlock, err := lockPath(path, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	doc, err := codec.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Int("pane_count", doc.PaneCount()).
		Msg("layout file loaded")
	return doc, nil
}
