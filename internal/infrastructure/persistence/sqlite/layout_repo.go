package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/domain/repository"
	"github.com/bnema/splitpane/internal/infrastructure/codec"
	"github.com/bnema/splitpane/internal/logging"
)

// Fixed width so updated_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type layoutRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutRepository creates a new layout repository.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db, now: time.Now}
}

// Save upserts the layout. created_at survives updates.
func (r *layoutRepo) Save(ctx context.Context, name string, doc *entity.LayoutDocument) error {
	log := logging.FromContext(ctx)
	if doc == nil {
		return errors.New("layout document cannot be nil")
	}

	data, err := codec.Marshal(doc, codec.FormatJSON)
	if err != nil {
		return err
	}

	selected, locked, err := encodePaneState(doc.State)
	if err != nil {
		return err
	}

	now := r.now().UTC().Format(timeLayout)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO layouts (name, version, document, pane_count, selected_pane, locked_panes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			version = excluded.version,
			document = excluded.document,
			pane_count = excluded.pane_count,
			selected_pane = excluded.selected_pane,
			locked_panes = excluded.locked_panes,
			updated_at = excluded.updated_at`,
		name, doc.Version, string(data), doc.PaneCount(), selected, locked, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}

	log.Debug().Str("layout", name).Int("pane_count", doc.PaneCount()).Msg("layout row saved")
	return nil
}

func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.LayoutDocument, error) {
	var data, selected, locked string
	err := r.db.QueryRowContext(ctx,
		`SELECT document, selected_pane, locked_panes FROM layouts WHERE name = ?`, name,
	).Scan(&data, &selected, &locked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query layout: %w", err)
	}

	doc, err := codec.Unmarshal([]byte(data), codec.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("stored layout %q: %w", name, err)
	}
	doc.State, err = decodePaneState(selected, locked)
	if err != nil {
		return nil, fmt.Errorf("stored layout %q: %w", name, err)
	}
	return doc, nil
}

// encodePaneState flattens the state into the selected_pane and
// locked_panes columns.
func encodePaneState(state *entity.PaneState) (selected, locked string, err error) {
	if state == nil {
		return "", "[]", nil
	}
	ids := state.Locked
	if ids == nil {
		ids = []entity.NodeID{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", "", fmt.Errorf("encode locked panes: %w", err)
	}
	return string(state.Selected), string(data), nil
}

// decodePaneState returns nil for rows written without state: every stored
// non-empty tree has a selected pane.
func decodePaneState(selected, locked string) (*entity.PaneState, error) {
	if selected == "" {
		return nil, nil
	}
	state := &entity.PaneState{Selected: entity.NodeID(selected)}
	if err := json.Unmarshal([]byte(locked), &state.Locked); err != nil {
		return nil, fmt.Errorf("decode locked panes: %w", err)
	}
	if len(state.Locked) == 0 {
		state.Locked = nil
	}
	return state, nil
}

func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM layouts WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	return nil
}

func (r *layoutRepo) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, version, pane_count, updated_at
		FROM layouts
		ORDER BY updated_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []entity.LayoutInfo
	for rows.Next() {
		var (
			info      entity.LayoutInfo
			updatedAt string
		)
		if err := rows.Scan(&info.Name, &info.Version, &info.PaneCount, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan layout: %w", err)
		}
		info.UpdatedAt, err = time.Parse(timeLayout, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("layout %q has bad updated_at: %w", info.Name, err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate layouts: %w", err)
	}
	return infos, nil
}
