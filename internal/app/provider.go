package app

import (
	"context"

	"github.com/mailajoket/stats-api/internal/infrastructure/workbook"
	"github.com/mailajoket/stats-api/internal/platform/cache"
	"github.com/mailajoket/stats-api/internal/platform/logging"
	"github.com/mailajoket/stats-api/internal/tablestore"
)

const workbookCacheKey = "workbook"

// workbookProvider parses the spreadsheet once and serves the parsed
// tables from cache until a reload evicts them.
type workbookProvider struct {
	path   string
	cache  *cache.Store[*tablestore.Store]
	logger *logging.Logger
}

func newWorkbookProvider(path string, logger *logging.Logger) *workbookProvider {
	return &workbookProvider{
		path:   path,
		cache:  cache.NewStore[*tablestore.Store](0),
		logger: logger,
	}
}

func (p *workbookProvider) Store(ctx context.Context) (*tablestore.Store, error) {
	return p.cache.GetOrLoad(ctx, workbookCacheKey, p.load)
}

// Reload evicts the cached tables and parses the file again. The old
// snapshot keeps serving readers that already hold it.
func (p *workbookProvider) Reload(ctx context.Context) error {
	p.cache.Delete(ctx, workbookCacheKey)
	store, err := p.cache.GetOrLoad(ctx, workbookCacheKey, p.load)
	if err != nil {
		p.logger.ErrorContext(ctx, "workbook reload failed", "path", p.path, "error", err)
		return err
	}

	p.logger.InfoContext(ctx, "workbook reloaded",
		"path", p.path,
		"matches", len(store.Matches),
	)

	return nil
}

func (p *workbookProvider) load(ctx context.Context) (*tablestore.Store, error) {
	store, err := workbook.Load(p.path)
	if err != nil {
		return nil, err
	}

	for _, problem := range store.Validate().Problems {
		p.logger.WarnContext(ctx, "workbook schema problem", "problem", problem)
	}

	return store, nil
}
