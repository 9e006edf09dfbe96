package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"pet-adoption-api/internal/ports/recordstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type txKey struct{}

// Store implementa recordstore.Gateway sobre database/sql. Cada fila se
// devuelve como row_to_json, así los repos tipados decodifican igual que con
// PostgREST.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Atomic() bool { return true }

// WithinTx corre fn en una transacción; las Tables toman la tx del ctx.
// Si ya hay una tx en curso, fn se une a ella.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return storeErr(tx.Commit())
}

func (s *Store) Table(name string) recordstore.Table {
	return &table{store: s, name: name}
}

func (s *Store) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

type table struct {
	store *Store
	name  string
}

func (t *table) Name() string { return t.name }

func (t *table) Select(ctx context.Context, f recordstore.Filter, o *recordstore.Order) ([]json.RawMessage, error) {
	var sb strings.Builder
	sb.WriteString("SELECT row_to_json(t) FROM ")
	sb.WriteString(ident(t.name))
	sb.WriteString(" AS t")

	where, args, err := whereClause(f, 1)
	if err != nil {
		return nil, err
	}
	sb.WriteString(where)

	if o != nil && o.Column != "" {
		sb.WriteString(" ORDER BY t.")
		sb.WriteString(ident(o.Column))
		if o.Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	return t.query(ctx, sb.String(), args...)
}

func (t *table) Insert(ctx context.Context, v recordstore.Values) (json.RawMessage, error) {
	cols := sortedKeys(v)

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(ident(t.name))
	sb.WriteString(" AS t")

	args := make([]any, 0, len(cols))
	if len(cols) == 0 {
		sb.WriteString(" DEFAULT VALUES")
	} else {
		quoted := make([]string, 0, len(cols))
		holders := make([]string, 0, len(cols))
		for i, c := range cols {
			quoted = append(quoted, ident(c))
			holders = append(holders, fmt.Sprintf("$%d", i+1))
			args = append(args, v[c])
		}
		sb.WriteString(" (" + strings.Join(quoted, ", ") + ")")
		sb.WriteString(" VALUES (" + strings.Join(holders, ", ") + ")")
	}
	sb.WriteString(" RETURNING row_to_json(t)")

	rows, err := t.query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Update no toca updated_at: lo mantiene el trigger set_updated_at.
func (t *table) Update(ctx context.Context, f recordstore.Filter, v recordstore.Values) ([]json.RawMessage, error) {
	cols := sortedKeys(v)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: update without values", t.name)
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(ident(t.name))
	sb.WriteString(" AS t SET ")

	args := make([]any, 0, len(cols)+len(f))
	sets := make([]string, 0, len(cols))
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", ident(c), i+1))
		args = append(args, v[c])
	}
	sb.WriteString(strings.Join(sets, ", "))

	where, wargs, err := whereClause(f, len(args)+1)
	if err != nil {
		return nil, err
	}
	sb.WriteString(where)
	args = append(args, wargs...)

	sb.WriteString(" RETURNING row_to_json(t)")

	return t.query(ctx, sb.String(), args...)
}

func (t *table) Delete(ctx context.Context, f recordstore.Filter) error {
	where, args, err := whereClause(f, 1)
	if err != nil {
		return err
	}
	_, err = t.store.q(ctx).ExecContext(ctx, "DELETE FROM "+ident(t.name)+" AS t"+where, args...)
	return storeErr(err)
}

func (t *table) query(ctx context.Context, q string, args ...any) ([]json.RawMessage, error) {
	rows, err := t.store.q(ctx).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := make([]json.RawMessage, 0)
	for rows.Next() {
		var b []byte
		if err := rows.Scan(&b); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, json.RawMessage(b))
	}
	return out, storeErr(rows.Err())
}

func whereClause(f recordstore.Filter, start int) (string, []any, error) {
	if len(f) == 0 {
		return "", nil, nil
	}

	parts := make([]string, 0, len(f))
	args := make([]any, 0, len(f))
	for i, c := range f {
		var op string
		switch c.Op {
		case recordstore.OpEq:
			op = "="
		case recordstore.OpNeq:
			op = "<>"
		default:
			return "", nil, fmt.Errorf("unsupported filter op %q", c.Op)
		}
		parts = append(parts, fmt.Sprintf("t.%s %s $%d", ident(c.Column), op, start+i))
		args = append(args, c.Value)
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func sortedKeys(v recordstore.Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// storeErr traduce *pgconn.PgError al error genérico del store.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &recordstore.Error{
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
			Err:     err,
		}
	}
	return err
}
