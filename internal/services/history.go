// Package services implements the local content lifecycle of qrkeeper: the
// bounded activity ledger, the saved-codes catalog and the free-scan quota
// gate. Each service owns its in-memory state, loads it from the key-value
// store once at startup, and persists snapshots through a background worker.
package services

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/persist"
	"github.com/dmitrijs2005/qrkeeper/internal/repositories/kvstore"
	"github.com/google/uuid"
)

const (
	// historyStoreKey is the fixed key the ledger blob lives under.
	historyStoreKey = "qr_history_v2"

	// maxHistoryItems bounds the ledger; the oldest entries are evicted.
	maxHistoryItems = 100
)

// ActionFilter selects a subset of the ledger by action kind.
type ActionFilter string

const (
	FilterAll     ActionFilter = "all"
	FilterScanned ActionFilter = "scanned"
	FilterCreated ActionFilter = "created"
)

// SortOrder orders query results by entry timestamp.
type SortOrder string

const (
	NewestFirst SortOrder = "newest_first"
	OldestFirst SortOrder = "oldest_first"
)

// DaySection is one calendar-day bucket of history entries. Today and
// yesterday get relative labels; older days are labeled with the date.
type DaySection struct {
	Label   string
	Entries []models.HistoryEntry
}

// HistoryService maintains the activity ledger: at most maxHistoryItems
// entries, newest first, at most one entry per (content, action) pair.
type HistoryService struct {
	mu     sync.Mutex
	items  []models.HistoryEntry
	store  kvstore.Store
	worker *persist.Worker
	log    logging.Logger
	now    func() time.Time
}

// NewHistoryService returns a ledger backed by store. Call Load before use.
func NewHistoryService(store kvstore.Store, worker *persist.Worker, log logging.Logger) *HistoryService {
	return &HistoryService{
		store:  store,
		worker: worker,
		log:    log.With("component", "history"),
		now:    time.Now,
	}
}

// Load reads the persisted ledger. A missing or corrupt blob degrades to an
// empty ledger and is never an error.
func (s *HistoryService) Load(ctx context.Context) {
	data, err := s.store.Get(ctx, historyStoreKey)
	if err != nil || data == nil {
		if err != nil {
			s.log.Warn(ctx, "failed to read history, starting empty", "error", err)
		}
		return
	}

	var items []models.HistoryEntry
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn(ctx, "corrupt history blob, starting empty", "error", err)
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// RecordScanned adds a scanned event to the ledger. The title is derived
// from the payload.
func (s *HistoryService) RecordScanned(content string, kind models.ContentKind) models.HistoryEntry {
	entry := models.HistoryEntry{
		ID:      uuid.NewString(),
		Title:   models.DeriveTitle(content, kind),
		Content: content,
		Kind:    kind,
		Action:  models.ActionScanned,
		Date:    s.now(),
	}
	s.insert(entry)
	return entry
}

// RecordCreated adds a created event to the ledger, using the item's name as
// the title. The six-way catalog kind collapses to the four-way history kind.
func (s *HistoryService) RecordCreated(name, content string, kind models.CatalogKind) models.HistoryEntry {
	entry := models.HistoryEntry{
		ID:      uuid.NewString(),
		Title:   name,
		Content: content,
		Kind:    kind.ContentKind(),
		Action:  models.ActionCreated,
		Date:    s.now(),
	}
	s.insert(entry)
	return entry
}

// insert removes any prior entry with the same (content, action) pair,
// prepends the new entry and truncates to the cap.
func (s *HistoryService) insert(entry models.HistoryEntry) {
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(e models.HistoryEntry) bool {
		return e.Content == entry.Content && e.Action == entry.Action
	})
	s.items = append([]models.HistoryEntry{entry}, s.items...)
	if len(s.items) > maxHistoryItems {
		s.items = s.items[:maxHistoryItems]
	}
	s.mu.Unlock()

	s.persistAsync()
}

// DeleteByID removes the entry with the given id, if present.
func (s *HistoryService) DeleteByID(id string) {
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(e models.HistoryEntry) bool {
		return e.ID == id
	})
	s.mu.Unlock()

	s.persistAsync()
}

// DeleteAt removes the entries at the given positions (newest-first order).
// Out-of-range offsets are ignored.
func (s *HistoryService) DeleteAt(offsets []int) {
	drop := make(map[int]struct{}, len(offsets))
	for _, o := range offsets {
		drop[o] = struct{}{}
	}

	s.mu.Lock()
	kept := s.items[:0]
	for i, e := range s.items {
		if _, ok := drop[i]; !ok {
			kept = append(kept, e)
		}
	}
	s.items = kept
	s.mu.Unlock()

	s.persistAsync()
}

// ClearAll empties the ledger.
func (s *HistoryService) ClearAll() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persistAsync()
}

// Entries returns a copy of the ledger, newest first.
func (s *HistoryService) Entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Filtered returns entries matching the action filter, ordered by timestamp.
func (s *HistoryService) Filtered(filter ActionFilter, order SortOrder) []models.HistoryEntry {
	items := s.Entries()

	if filter != FilterAll && filter != "" {
		items = slices.DeleteFunc(items, func(e models.HistoryEntry) bool {
			return string(e.Action) != string(filter)
		})
	}

	slices.SortStableFunc(items, func(a, b models.HistoryEntry) int {
		if order == OldestFirst {
			return a.Date.Compare(b.Date)
		}
		return b.Date.Compare(a.Date)
	})
	return items
}

// GroupedByDay partitions the filtered, sorted ledger into calendar-day
// sections. Labels are relative to the wall clock at call time.
func (s *HistoryService) GroupedByDay(filter ActionFilter, order SortOrder) []DaySection {
	items := s.Filtered(filter, order)
	now := s.now()

	var sections []DaySection
	for _, e := range items {
		label := dayLabel(e.Date, now)
		if n := len(sections); n > 0 && sections[n-1].Label == label {
			sections[n-1].Entries = append(sections[n-1].Entries, e)
			continue
		}
		sections = append(sections, DaySection{Label: label, Entries: []models.HistoryEntry{e}})
	}
	return sections
}

func dayLabel(t, now time.Time) string {
	switch {
	case sameDay(t, now):
		return "Today"
	case sameDay(t, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return t.Format("January 2, 2006")
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// persistAsync snapshots current state and schedules a best-effort write.
func (s *HistoryService) persistAsync() {
	s.mu.Lock()
	snapshot := slices.Clone(s.items)
	s.mu.Unlock()

	s.worker.Submit(func(ctx context.Context) error {
		data, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		return s.store.Set(ctx, historyStoreKey, data)
	})
}
