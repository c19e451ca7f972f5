package catalog

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	return NewJSONStore(path), path
}

func TestJSONStore_CRUD(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := &Product{
		ID:       uuid.New(),
		Name:     "Tata Salt",
		Category: "grocery",
		Price:    json.Number("28"),
		Currency: "INR",
		IsActive: true,
	}
	require.NoError(t, store.Create(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	got, err := store.GetByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Price, got.Price)

	got.Name = "Tata Salt Lite"
	require.NoError(t, store.Update(ctx, got))

	got, err = store.GetByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Tata Salt Lite", got.Name)

	require.NoError(t, store.Delete(ctx, p.ID.String()))
	_, err = store.GetByID(ctx, p.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONStore_MissingFileReadsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	products, err := store.List(context.Background(), "", true)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestJSONStore_PersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	p := &Product{ID: uuid.New(), Name: "Ghee", Price: "540", IsActive: true}
	require.NoError(t, store.Create(ctx, p))

	reopened := NewJSONStore(path)
	got, err := reopened.GetByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Ghee", got.Name)
	assert.Equal(t, json.Number("540"), got.Price)
}

func TestJSONStore_ListFilters(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Product{ID: uuid.New(), Name: "Salt", Category: "grocery", Price: "28", IsActive: true}))
	require.NoError(t, store.Create(ctx, &Product{ID: uuid.New(), Name: "Soap", Category: "care", Price: "45", IsActive: true}))
	require.NoError(t, store.Create(ctx, &Product{ID: uuid.New(), Name: "Retired", Category: "grocery", Price: "10", IsActive: false}))

	grocery, err := store.List(ctx, "grocery", true)
	require.NoError(t, err)
	require.Len(t, grocery, 1)
	assert.Equal(t, "Salt", grocery[0].Name)

	all, err := store.List(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestJSONStore_UpdateMissing(t *testing.T) {
	store, _ := newTestStore(t)
	err := store.Update(context.Background(), &Product{ID: uuid.New(), Name: "x", Price: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONStore_ListCopiesRecords(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := &Product{ID: uuid.New(), Name: "Salt", Price: "28", IsActive: true}
	require.NoError(t, store.Create(ctx, p))

	listed, err := store.List(ctx, "", true)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	listed[0].Name = "scribbled"

	again, err := store.GetByID(ctx, p.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Salt", again.Name)
}
