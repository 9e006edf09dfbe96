package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"pet-adoption-api/internal/ports/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func stepClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}

func newTestStore() *Store {
	n := 0
	return New(
		WithClock(stepClock(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), time.Second)),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func TestInsertAssignsIDAndTimestamps(t *testing.T) {
	s := newTestStore()
	repo := recordstore.NewRepository[item](s.Table("items"))
	ctx := context.Background()

	age := 3
	got, err := repo.Insert(ctx, recordstore.Values{"name": "Milo", "status": "available", "age": &age})
	require.NoError(t, err)

	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "Milo", got.Name)
	require.NotNil(t, got.Age)
	assert.Equal(t, 3, *got.Age)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	fetched, err := repo.FindByID(ctx, got.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, got, *fetched)
}

func TestInsertRejectsDuplicateID(t *testing.T) {
	s := newTestStore()
	tbl := s.Table("items")
	ctx := context.Background()

	_, err := tbl.Insert(ctx, recordstore.Values{"id": "x"})
	require.NoError(t, err)
	_, err = tbl.Insert(ctx, recordstore.Values{"id": "x"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestSelectFiltersAndOrdersNewestFirst(t *testing.T) {
	s := newTestStore()
	repo := recordstore.NewRepository[item](s.Table("items"))
	ctx := context.Background()

	for _, st := range []string{"available", "adopted", "available"} {
		_, err := repo.Insert(ctx, recordstore.Values{"name": st, "status": st})
		require.NoError(t, err)
	}

	all, err := repo.FindMany(ctx, nil, recordstore.NewestFirst)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"id-3", "id-2", "id-1"}, ids(all))

	avail, err := repo.FindMany(ctx, recordstore.Where(recordstore.Eq("status", "available")), recordstore.NewestFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-3", "id-1"}, ids(avail))

	notFirst, err := repo.FindMany(ctx, recordstore.Where(
		recordstore.Eq("status", "available"),
		recordstore.Neq("id", "id-3"),
	), recordstore.NewestFirst)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1"}, ids(notFirst))
}

func TestSelectEmptyIsNotNil(t *testing.T) {
	s := newTestStore()
	rows, err := s.Table("items").Select(context.Background(), recordstore.Where(recordstore.Eq("id", "nope")), nil)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestUpdateIsPartialAndReturnsMatchedRows(t *testing.T) {
	s := newTestStore()
	repo := recordstore.NewRepository[item](s.Table("items"))
	ctx := context.Background()

	created, err := repo.Insert(ctx, recordstore.Values{"name": "Milo", "status": "available"})
	require.NoError(t, err)

	updated, err := repo.UpdateByID(ctx, created.ID, recordstore.Values{"status": "adopted", "created_at": "ignored"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Milo", updated.Name)
	assert.Equal(t, "adopted", updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	missing, err := repo.UpdateByID(ctx, "nope", recordstore.Values{"status": "adopted"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore()
	repo := recordstore.NewRepository[item](s.Table("items"))
	ctx := context.Background()

	created, err := repo.Insert(ctx, recordstore.Values{"name": "Milo"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	require.NoError(t, repo.DeleteByID(ctx, created.ID))

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCanceledContext(t *testing.T) {
	s := newTestStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Table("items").Select(ctx, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRowsAreCopiesNotAliases(t *testing.T) {
	s := newTestStore()
	tbl := s.Table("items")
	ctx := context.Background()

	raw, err := tbl.Insert(ctx, recordstore.Values{"name": "Milo"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	m["name"] = "changed"

	rows, err := tbl.Select(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, string(rows[0]), `"name":"Milo"`)
}

func TestNotAtomic(t *testing.T) {
	assert.False(t, New().Atomic())
}

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
