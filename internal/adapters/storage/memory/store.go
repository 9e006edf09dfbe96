package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-adoption-api/internal/ports/recordstore"

	"github.com/google/uuid"
)

var (
	ErrDuplicateID = errors.New("duplicate key value violates unique constraint")
)

// Store es un record store en memoria para dev y tests. Imita al store
// hospedado: sin transacciones, id y timestamps asignados por el "servidor".
type Store struct {
	recordstore.NoTx

	mu     sync.RWMutex
	tables map[string]*table
	seq    int64

	now   func() time.Time
	newID func() string
}

type Option func(*Store)

// WithClock fija el reloj (tests con timestamps deterministas).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(opts ...Option) *Store {
	s := &Store{
		tables: make(map[string]*table),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

type row struct {
	seq  int64
	data map[string]any
}

type table struct {
	store *Store
	name  string
	byID  map[string]*row
}

func (s *Store) Table(name string) recordstore.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[name]
	if !ok {
		t = &table{store: s, name: name, byID: make(map[string]*row)}
		s.tables[name] = t
	}
	return t
}

func (t *table) Name() string { return t.name }

func (t *table) Select(ctx context.Context, f recordstore.Filter, o *recordstore.Order) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	matched := t.match(f)
	if o != nil {
		sortRows(matched, *o)
	}
	return encodeRows(matched)
}

func (t *table) Insert(ctx context.Context, v recordstore.Values) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := normalize(v)
	if err != nil {
		return nil, err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	id, _ := data["id"].(string)
	if strings.TrimSpace(id) == "" {
		id = t.store.newID()
	}
	if _, exists := t.byID[id]; exists {
		return nil, fmt.Errorf("%s: %w", t.name, ErrDuplicateID)
	}

	now := t.store.now().UTC()
	data["id"] = id
	data["created_at"] = now
	data["updated_at"] = now

	t.store.seq++
	r := &row{seq: t.store.seq, data: data}
	t.byID[id] = r

	return json.Marshal(r.data)
}

func (t *table) Update(ctx context.Context, f recordstore.Filter, v recordstore.Values) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patch, err := normalize(v)
	if err != nil {
		return nil, err
	}
	delete(patch, "id")
	delete(patch, "created_at")

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	matched := t.match(f)
	now := t.store.now().UTC()
	for _, r := range matched {
		for k, val := range patch {
			r.data[k] = val
		}
		r.data["updated_at"] = now
	}
	sortRows(matched, recordstore.Order{Column: "created_at"})
	return encodeRows(matched)
}

func (t *table) Delete(ctx context.Context, f recordstore.Filter) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for _, r := range t.match(f) {
		delete(t.byID, r.data["id"].(string))
	}
	return nil
}

// match asume el lock tomado.
func (t *table) match(f recordstore.Filter) []*row {
	out := make([]*row, 0)
	for _, r := range t.byID {
		data := r.data
		if f.Matches(func(col string) (string, bool) { return columnString(data, col) }) {
			out = append(out, r)
		}
	}
	return out
}

func columnString(data map[string]any, col string) (string, bool) {
	v, ok := data[col]
	if !ok || v == nil {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case time.Time:
		return x.Format(time.RFC3339Nano), true
	default:
		return fmt.Sprint(x), true
	}
}

// sortRows ordena por la columna pedida; empates por orden de inserción.
func sortRows(rows []*row, o recordstore.Order) {
	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(rows[i].data[o.Column], rows[j].data[o.Column])
		if c == 0 {
			c = cmpInt(rows[i].seq, rows[j].seq)
		}
		if o.Desc {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if fa, ok := a.(float64); ok {
		if fb, ok := b.(float64); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// normalize pasa los valores por JSON para que punteros, enums con tipo y
// structs queden igual que si hubieran viajado al store remoto.
func normalize(v recordstore.Values) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode values: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("encode values: %w", err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func encodeRows(rows []*row) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		b, err := json.Marshal(r.data)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
