package services

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/persist"
	"github.com/dmitrijs2005/qrkeeper/internal/repositories/kvstore"
	"github.com/google/uuid"
)

// catalogStoreKey is the fixed key the saved-codes blob lives under.
const catalogStoreKey = "saved_qr_codes"

// CreatedRecorder receives the ledger fan-out when a catalog item is saved.
// HistoryService satisfies it; tests supply fakes.
type CreatedRecorder interface {
	RecordCreated(name, content string, kind models.CatalogKind) models.HistoryEntry
}

// KindFilter selects catalog items by kind; the zero value matches all.
type KindFilter struct {
	Kind models.CatalogKind
	All  bool
}

// FilterAllKinds matches every catalog item.
func FilterAllKinds() KindFilter { return KindFilter{All: true} }

// FilterKind matches items of exactly one kind.
func FilterKind(k models.CatalogKind) KindFilter { return KindFilter{Kind: k} }

// CatalogService is the durable store of user-generated QR codes. Unlike the
// ledger it is unbounded; items stay until deleted.
type CatalogService struct {
	mu       sync.Mutex
	items    []models.CatalogItem
	store    kvstore.Store
	worker   *persist.Worker
	recorder CreatedRecorder
	log      logging.Logger
	now      func() time.Time
}

// NewCatalogService returns a catalog backed by store. Every successful Save
// is mirrored into recorder as a created event. Call Load before use.
func NewCatalogService(store kvstore.Store, worker *persist.Worker, recorder CreatedRecorder, log logging.Logger) *CatalogService {
	return &CatalogService{
		store:    store,
		worker:   worker,
		recorder: recorder,
		log:      log.With("component", "catalog"),
		now:      time.Now,
	}
}

// Load reads the persisted catalog. A missing or corrupt blob degrades to an
// empty catalog and is never an error.
func (s *CatalogService) Load(ctx context.Context) {
	data, err := s.store.Get(ctx, catalogStoreKey)
	if err != nil || data == nil {
		if err != nil {
			s.log.Warn(ctx, "failed to read catalog, starting empty", "error", err)
		}
		return
	}

	var items []models.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn(ctx, "corrupt catalog blob, starting empty", "error", err)
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Save stores a finalized QR code. The caller must supply the rendered image;
// the catalog never synthesizes one. The saved item is also recorded in the
// activity ledger as a created event.
func (s *CatalogService) Save(name, content string, imagePNG []byte, kind models.CatalogKind) (models.CatalogItem, error) {
	if len(imagePNG) == 0 {
		return models.CatalogItem{}, common.ErrorMissingImage
	}

	item := models.CatalogItem{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		ImagePNG:  imagePNG,
		CreatedAt: s.now(),
		Kind:      kind,
	}

	s.mu.Lock()
	s.items = append([]models.CatalogItem{item}, s.items...)
	s.mu.Unlock()

	s.persistAsync()

	if s.recorder != nil {
		s.recorder.RecordCreated(name, content, kind)
	}
	return item, nil
}

// Delete removes the item with the given id, if present.
func (s *CatalogService) Delete(id string) {
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(i models.CatalogItem) bool {
		return i.ID == id
	})
	s.mu.Unlock()

	s.persistAsync()
}

// ClearAll empties the catalog.
func (s *CatalogService) ClearAll() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persistAsync()
}

// Items returns a copy of the catalog, newest first.
func (s *CatalogService) Items() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Find returns items matching both the kind filter and the free-text query
// (case-insensitive substring over name and content), newest first.
func (s *CatalogService) Find(filter KindFilter, query string) []models.CatalogItem {
	items := s.Items()
	return slices.DeleteFunc(items, func(i models.CatalogItem) bool {
		if !filter.All && i.Kind != filter.Kind {
			return true
		}
		return !i.Matches(query)
	})
}

// GetByID returns the item with the given id.
func (s *CatalogService) GetByID(id string) (models.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, i := range s.items {
		if i.ID == id {
			return i, nil
		}
	}
	return models.CatalogItem{}, common.ErrorNotFound
}

func (s *CatalogService) persistAsync() {
	s.mu.Lock()
	snapshot := slices.Clone(s.items)
	s.mu.Unlock()

	s.worker.Submit(func(ctx context.Context) error {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		return s.store.Set(ctx, catalogStoreKey, data)
	})
}
