package activity

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/generic"
	"github.com/tsenart/nap"

	"github.com/bitfolio/bitfolio/core"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func New(db *nap.DB) core.ActivityStore {
	return &store{db: db}
}

type store struct {
	db *nap.DB
}

func (s *store) Record(ctx context.Context, provider core.ProviderID, class core.AssetClass, records []core.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := generic.Must(s.db.Begin())
	defer tx.Rollback()

	for _, r := range records {
		b := psql.Insert("activities").
			Columns("provider", "class", "txid", "tx_type", "amount", "status", "block_time").
			Values(provider, class, r.TxID, r.Type, r.Amount, r.Status, r.BlockTime).
			Suffix("ON CONFLICT (provider, class, txid) DO NOTHING")
		stmt, args := b.MustSql()
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *store) List(ctx context.Context, limit int) ([]*core.Activity, error) {
	b := psql.Select("id", "created_at", "provider", "class", "txid", "tx_type", "amount", "status", "block_time").
		From("activities").
		OrderBy("id DESC").
		Limit(uint64(limit))
	stmt, args := b.MustSql()
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var activities []*core.Activity
	for rows.Next() {
		var a core.Activity
		if err := rows.Scan(
			&a.ID,
			&a.CreatedAt,
			&a.Provider,
			&a.Class,
			&a.TxID,
			&a.Type,
			&a.Amount,
			&a.Status,
			&a.BlockTime,
		); err != nil {
			return nil, err
		}

		activities = append(activities, &a)
	}

	return activities, nil
}
