package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/repositories/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPNG = []byte{0x89, 'P', 'N', 'G'}

func newCatalog(t *testing.T, store kvstore.Store, recorder CreatedRecorder) *CatalogService {
	t.Helper()
	s := NewCatalogService(store, newTestWorker(t), recorder, quietLogger())
	s.Load(context.Background())
	return s
}

func TestCatalog_SaveFansOutToHistory(t *testing.T) {
	store := kvstore.NewMemoryStore()
	history, _ := newHistory(t, store)
	catalog := newCatalog(t, store, history)

	item, err := catalog.Save("N", "X", testPNG, models.CatalogKindText)
	require.NoError(t, err)
	assert.Equal(t, "N", item.Name)
	assert.NotEmpty(t, item.ID)

	items := catalog.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "X", items[0].Content)

	entries := history.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionCreated, entries[0].Action)
	assert.Equal(t, "N", entries[0].Title)
	assert.Equal(t, "X", entries[0].Content)
}

func TestCatalog_SaveRejectsMissingImage(t *testing.T) {
	catalog := newCatalog(t, kvstore.NewMemoryStore(), nil)

	_, err := catalog.Save("N", "X", nil, models.CatalogKindText)
	require.ErrorIs(t, err, common.ErrorMissingImage)
	assert.Empty(t, catalog.Items())
}

func TestCatalog_NewestFirstOrder(t *testing.T) {
	catalog := newCatalog(t, kvstore.NewMemoryStore(), nil)

	_, err := catalog.Save("first", "a", testPNG, models.CatalogKindText)
	require.NoError(t, err)
	_, err = catalog.Save("second", "b", testPNG, models.CatalogKindText)
	require.NoError(t, err)

	items := catalog.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)
	assert.Equal(t, "first", items[1].Name)
}

func TestCatalog_FilterAndSearchCombine(t *testing.T) {
	catalog := newCatalog(t, kvstore.NewMemoryStore(), nil)

	seed := []struct {
		name    string
		content string
		kind    models.CatalogKind
	}{
		{"Shop Link", "https://shop.example.com", models.CatalogKindURL},
		{"Blog", "https://blog.example.com", models.CatalogKindURL},
		{"Shop note", "remember the shop", models.CatalogKindText},
		{"Home Wi-Fi", "WIFI:T:WPA;S:home;P:p;;", models.CatalogKindWifi},
	}
	for _, it := range seed {
		_, err := catalog.Save(it.name, it.content, testPNG, it.kind)
		require.NoError(t, err)
	}

	got := catalog.Find(FilterKind(models.CatalogKindURL), "shop")
	require.Len(t, got, 1)
	assert.Equal(t, "Shop Link", got[0].Name)

	all := catalog.Find(FilterAllKinds(), "shop")
	assert.Len(t, all, 2)

	urls := catalog.Find(FilterKind(models.CatalogKindURL), "")
	assert.Len(t, urls, 2)

	none := catalog.Find(FilterKind(models.CatalogKindPhone), "shop")
	assert.Empty(t, none)
}

func TestCatalog_DeleteAndClear(t *testing.T) {
	catalog := newCatalog(t, kvstore.NewMemoryStore(), nil)

	item, err := catalog.Save("a", "1", testPNG, models.CatalogKindText)
	require.NoError(t, err)
	_, err = catalog.Save("b", "2", testPNG, models.CatalogKindText)
	require.NoError(t, err)

	catalog.Delete(item.ID)
	items := catalog.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Name)

	_, err = catalog.GetByID(item.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	catalog.ClearAll()
	assert.Empty(t, catalog.Items())
}

func TestCatalog_PersistenceRoundTrip(t *testing.T) {
	store := kvstore.NewMemoryStore()
	w := newTestWorker(t)
	catalog := NewCatalogService(store, w, nil, quietLogger())
	catalog.Load(context.Background())

	// fixed UTC instants so the JSON round trip compares exactly
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	tick := 0
	catalog.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	_, err := catalog.Save("a", "1", testPNG, models.CatalogKindURL)
	require.NoError(t, err)
	_, err = catalog.Save("b", "2", testPNG, models.CatalogKindWifi)
	require.NoError(t, err)
	w.Flush()

	reloaded := newCatalog(t, store, nil)
	require.Equal(t, catalog.Items(), reloaded.Items())
}

func TestCatalog_LoadCorruptBlob_StartsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "saved_qr_codes", []byte("[broken")))

	catalog := newCatalog(t, store, nil)
	assert.Empty(t, catalog.Items())
}
