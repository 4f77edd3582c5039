package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/splitpane/internal/application/port"
	"github.com/bnema/splitpane/internal/domain/entity"
	"github.com/bnema/splitpane/internal/domain/repository"
)

// lazyLayoutRepo opens the database on the first repository call.
type lazyLayoutRepo struct {
	provider port.DatabaseProvider
	repo     repository.LayoutRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutRepository creates a layout repository backed by provider.
func NewLazyLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &lazyLayoutRepo{provider: provider}
}

func (r *lazyLayoutRepo) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutRepository(db)
	})
	return r.initErr
}

func (r *lazyLayoutRepo) Save(ctx context.Context, name string, doc *entity.LayoutDocument) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, name, doc)
}

func (r *lazyLayoutRepo) Get(ctx context.Context, name string) (*entity.LayoutDocument, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *lazyLayoutRepo) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}

func (r *lazyLayoutRepo) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}
