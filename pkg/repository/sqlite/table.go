package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

const upsertQuery = ` (id, payload) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload`

// table maps one record kind to one SQL table of JSON payloads
type table[T any] struct {
	store *SQLite
	name  string
	id    func(*T) string
}

func newTable[T any](store *SQLite, name string, id func(*T) string) *table[T] {
	return &table[T]{store: store, name: name, id: id}
}

func (t *table[T]) list(ctx context.Context) ([]*T, error) {
	return t.query(ctx, "")
}

// query selects records matching a condition on the JSON payload; an empty
// clause selects everything
func (t *table[T]) query(ctx context.Context, clause string, args ...any) ([]*T, error) {
	db, err := t.store.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, payload FROM `+t.name+` `+clause, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select records", goerr.V("table", t.name))
	}
	defer func() { _ = rows.Close() }()

	out := []*T{}
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, goerr.Wrap(err, "failed to scan record", goerr.V("table", t.name))
		}
		var v T
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record", goerr.V("table", t.name), goerr.V(model.EntityIDKey, id))
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate records", goerr.V("table", t.name))
	}

	return out, nil
}

func (t *table[T]) put(ctx context.Context, v *T) error {
	return t.putMany(ctx, []*T{v})
}

// putMany writes all records in one transaction
func (t *table[T]) putMany(ctx context.Context, items []*T) (retErr error) {
	db, err := t.store.conn()
	if err != nil {
		return err
	}

	for _, v := range items {
		if t.id(v) == "" {
			return goerr.Wrap(model.ErrEmptyID, "cannot put record", goerr.V("table", t.name), goerr.T(model.ErrTagWriteFailed))
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction", goerr.V("table", t.name), goerr.T(model.ErrTagWriteFailed))
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, v := range items {
		if err := t.upsert(ctx, tx, v); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit transaction", goerr.V("table", t.name), goerr.T(model.ErrTagWriteFailed))
	}
	return nil
}

func (t *table[T]) upsert(ctx context.Context, tx *sql.Tx, v *T) error {
	id := t.id(v)
	payload, err := json.Marshal(v)
	if err != nil {
		return goerr.Wrap(err, "failed to encode record",
			goerr.V("table", t.name), goerr.V(model.EntityIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO `+t.name+upsertQuery, id, payload); err != nil {
		return goerr.Wrap(err, "failed to upsert record",
			goerr.V("table", t.name), goerr.V(model.EntityIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return nil
}

func (t *table[T]) delete(ctx context.Context, id string) error {
	db, err := t.store.conn()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM `+t.name+` WHERE id = ?`, id); err != nil {
		return goerr.Wrap(err, "failed to delete record",
			goerr.V("table", t.name), goerr.V(model.EntityIDKey, id), goerr.T(model.ErrTagWriteFailed))
	}
	return nil
}
