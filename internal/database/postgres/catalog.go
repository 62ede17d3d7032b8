package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TemplateOverrides_Go/internal/catalog"
	"github.com/osse101/TemplateOverrides_Go/internal/domain"
	"github.com/osse101/TemplateOverrides_Go/internal/logger"
)

// CatalogRepository stores the template catalog in PostgreSQL. Template
// properties and buff lists are kept as JSONB documents.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Load reads every template and buff list and builds a catalog from them.
func (r *CatalogRepository) Load(ctx context.Context) (*catalog.Catalog, error) {
	snapshot := &catalog.Snapshot{
		Items: make(map[domain.ItemID]*domain.Template),
		Buffs: make(map[string][]domain.Buff),
	}

	rows, err := r.pool.Query(ctx, queryLoadTemplates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTemplates, err)
	}
	for rows.Next() {
		var (
			t     domain.Template
			props []byte
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Parent, &t.Type, &props); err != nil {
			rows.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTemplates, err)
		}
		t.Props = &domain.Properties{}
		if err := json.Unmarshal(props, t.Props); err != nil {
			rows.Close()
			return nil, fmt.Errorf(ErrFmtDecodeProps, t.ID, err)
		}
		snapshot.Items[t.ID] = &t
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTemplates, err)
	}

	rows, err = r.pool.Query(ctx, queryLoadBuffs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBuffs, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			name string
			raw  []byte
		)
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBuffs, err)
		}
		var buffs []domain.Buff
		if err := json.Unmarshal(raw, &buffs); err != nil {
			return nil, fmt.Errorf(ErrFmtDecodeBuffs, name, err)
		}
		snapshot.Buffs[name] = buffs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBuffs, err)
	}

	c, err := catalog.FromSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"templates", c.Len(),
		"buff_lists", len(snapshot.Buffs))
	return c, nil
}

// Save upserts every template and buff list of the snapshot in one transaction.
func (r *CatalogRepository) Save(ctx context.Context, snapshot *catalog.Snapshot) (err error) {
	batch := &pgx.Batch{}
	for id, t := range snapshot.Items {
		props := t.Props
		if props == nil {
			props = &domain.Properties{}
		}
		data, err := json.Marshal(props)
		if err != nil {
			return fmt.Errorf(ErrFmtEncodeProps, id, err)
		}
		batch.Queue(queryUpsertTemplate, string(id), t.Name, string(t.Parent), t.Type, data)
	}
	for name, buffs := range snapshot.Buffs {
		if buffs == nil {
			buffs = []domain.Buff{}
		}
		data, err := json.Marshal(buffs)
		if err != nil {
			return fmt.Errorf(ErrFmtEncodeBuffs, name, err)
		}
		batch.Queue(queryUpsertBuffs, name, data)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
				logger.FromContext(ctx).Error(ErrMsgFailedToRollbackTransaction, "error", rbErr)
			}
		}
	}()

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSnapshot, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogSaved,
		"templates", len(snapshot.Items),
		"buff_lists", len(snapshot.Buffs))
	return nil
}
