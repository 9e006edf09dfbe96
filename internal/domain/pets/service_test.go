package pets

import (
	"context"
	"errors"
	"testing"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/platform/apperr"
	"pet-adoption-api/internal/ports/recordstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewRepository(memory.New()))
}

func mustCreate(t *testing.T, svc *Service, name string, typ Type, st Status) Pet {
	t.Helper()
	p, err := svc.Create(context.Background(), CreateInput{Name: name, Type: typ, Status: st})
	require.NoError(t, err)
	return p
}

func ptr[T any](v T) *T { return &v }

// failingRepo falla en todas las operaciones que usa el servicio.
type failingRepo struct {
	err error
}

func (f failingRepo) FindByID(context.Context, string) (*Pet, error) { return nil, f.err }
func (f failingRepo) FindMany(context.Context, recordstore.Filter, recordstore.Order) ([]Pet, error) {
	return nil, f.err
}
func (f failingRepo) Insert(context.Context, recordstore.Values) (Pet, error) { return Pet{}, f.err }
func (f failingRepo) UpdateOne(context.Context, recordstore.Filter, recordstore.Values) (*Pet, error) {
	return nil, f.err
}
func (f failingRepo) DeleteByID(context.Context, string) error { return f.err }

func TestCreateThenGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:  "  Milo ",
		Type:  TypeDog,
		Breed: ptr("mixed"),
		Age:   ptr(3),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Milo", created.Name)
	assert.Equal(t, StatusAvailable, created.Status)
	require.NotNil(t, created.Age)
	assert.Equal(t, 3, *created.Age)
	assert.Nil(t, created.Color)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{Type: "lizard", Age: ptr(-1)})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "Validation error: ")
	assert.Contains(t, err.Error(), "name: is required")
	assert.Contains(t, err.Error(), "type: must be one of: dog, cat, bird, rabbit, hamster, other")
	assert.Contains(t, err.Error(), "age: must be greater than or equal to 0")
}

func TestGetByIDAbsent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, id := range []string{uuid.NewString(), "not-a-uuid", ""} {
		p, err := svc.GetByID(ctx, id)
		require.NoError(t, err, id)
		assert.Nil(t, p, id)
	}
}

func TestListFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	dog1 := mustCreate(t, svc, "Rex", TypeDog, StatusAvailable)
	cat := mustCreate(t, svc, "Tom", TypeCat, StatusAvailable)
	dog2 := mustCreate(t, svc, "Fido", TypeDog, StatusAdopted)

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{dog2.ID, cat.ID, dog1.ID}, petIDs(all))

	avail, err := svc.List(ctx, ListFilter{Status: StatusAvailable})
	require.NoError(t, err)
	assert.Equal(t, []string{cat.ID, dog1.ID}, petIDs(avail))

	dogs, err := svc.List(ctx, ListFilter{Type: "dog"})
	require.NoError(t, err)
	assert.Equal(t, []string{dog2.ID, dog1.ID}, petIDs(dogs))

	availDogs, err := svc.List(ctx, ListFilter{Status: StatusAvailable, Type: "dog"})
	require.NoError(t, err)
	assert.Equal(t, []string{dog1.ID}, petIDs(availDogs))

	none, err := svc.List(ctx, ListFilter{Type: "dragon"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListInvalidStatus(t *testing.T) {
	_, err := newTestService().List(context.Background(), ListFilter{Status: "sold"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Invalid status. Must be one of: available, pending, adopted, not_available", err.Error())
}

func TestEmptyStoreListsAreEmptySlices(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	byStatus, err := svc.ListByStatus(ctx, StatusPending)
	require.NoError(t, err)
	assert.NotNil(t, byStatus)
}

func TestUpdateIsPartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: "Milo", Type: TypeCat, Color: ptr("black")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, UpdateInput{Name: ptr("Milo II"), Status: ptr(StatusPending)})
	require.NoError(t, err)
	assert.Equal(t, "Milo II", updated.Name)
	assert.Equal(t, StatusPending, updated.Status)
	assert.Equal(t, TypeCat, updated.Type)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "black", *updated.Color)

	same, err := svc.Update(ctx, p.ID, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, "Milo II", same.Name)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, id := range []string{uuid.NewString(), "nope"} {
		_, err := svc.Update(ctx, id, UpdateInput{Name: ptr("x")})
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
		assert.Equal(t, "Pet not found", err.Error())
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService()
	p := mustCreate(t, svc, "Milo", TypeDog, "")

	_, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: ptr(""), Status: ptr(Status("sold"))})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := mustCreate(t, svc, "Milo", TypeDog, "")

	require.NoError(t, svc.Delete(ctx, p.ID))
	require.NoError(t, svc.Delete(ctx, p.ID))
	require.NoError(t, svc.Delete(ctx, "not-a-uuid"))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMarkAdopted(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p := mustCreate(t, svc, "Milo", TypeDog, StatusAvailable)

	adopted, err := svc.MarkAdopted(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusAdopted, adopted.Status)

	_, err = svc.MarkAdopted(ctx, p.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, "Pet is already adopted", err.Error())

	_, err = svc.MarkAdopted(ctx, uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestStoreErrorsSurface(t *testing.T) {
	svc := NewService(failingRepo{err: errors.New("connection refused")})
	ctx := context.Background()

	_, err := svc.ListAll(ctx)
	require.Error(t, err)
	assert.True(t, apperr.IsStore(err))
	assert.Equal(t, "Failed to fetch pets: connection refused", err.Error())

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.True(t, apperr.IsStore(err))

	_, err = svc.Create(ctx, CreateInput{Name: "Milo", Type: TypeDog})
	require.Error(t, err)
	assert.Equal(t, "Failed to create pet: connection refused", err.Error())

	err = svc.Delete(ctx, uuid.NewString())
	assert.True(t, apperr.IsStore(err))
}

func petIDs(items []Pet) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
