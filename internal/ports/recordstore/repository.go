package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Repository es la vista tipada de una Table.
type Repository[T any] struct {
	table Table
}

func NewRepository[T any](t Table) *Repository[T] {
	return &Repository[T]{table: t}
}

func (r *Repository[T]) TableName() string {
	return r.table.Name()
}

// FindByID devuelve nil, nil cuando no hay fila.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	rows, err := r.table.Select(ctx, Where(Eq("id", id)), nil)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	v, err := decode[T](rows[0])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindMany nunca devuelve nil: sin filas => slice vacío.
func (r *Repository[T]) FindMany(ctx context.Context, f Filter, o Order) ([]T, error) {
	rows, err := r.table.Select(ctx, f, &o)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](rows)
}

func (r *Repository[T]) Insert(ctx context.Context, v Values) (T, error) {
	var zero T
	row, err := r.table.Insert(ctx, v)
	if err != nil {
		return zero, err
	}
	if len(row) == 0 {
		return zero, fmt.Errorf("%s: insert returned no data", r.table.Name())
	}
	return decode[T](row)
}

// UpdateByID devuelve nil, nil cuando ninguna fila matcheó.
func (r *Repository[T]) UpdateByID(ctx context.Context, id string, v Values) (*T, error) {
	return r.UpdateOne(ctx, Where(Eq("id", id)), v)
}

// UpdateOne es UpdateByID con condiciones extra (compare-and-set).
func (r *Repository[T]) UpdateOne(ctx context.Context, f Filter, v Values) (*T, error) {
	rows, err := r.table.Update(ctx, f, v)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out, err := decode[T](rows[0])
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repository[T]) UpdateWhere(ctx context.Context, f Filter, v Values) ([]T, error) {
	rows, err := r.table.Update(ctx, f, v)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](rows)
}

// DeleteByID no falla si la fila ya no existe.
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) error {
	return r.table.Delete(ctx, Where(Eq("id", id)))
}

func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode row: %w", err)
	}
	return v, nil
}

func decodeAll[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, raw := range rows {
		v, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
