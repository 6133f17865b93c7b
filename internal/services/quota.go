package services

import (
	"context"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/persist"
	"github.com/dmitrijs2005/qrkeeper/internal/repositories/kvstore"
)

const (
	// quotaStoreKey is the fixed key the used-scan counter lives under.
	quotaStoreKey = "free_scan_count"

	// MaxFreeScans is the ceiling on gated free scans. The gate never
	// auto-resets on time; only Reset clears it.
	MaxFreeScans = 5
)

// QuotaService counts consumed free scans against MaxFreeScans. Entitled
// callers bypass the gate entirely.
type QuotaService struct {
	mu     sync.Mutex
	used   int
	store  kvstore.Store
	worker *persist.Worker
	log    logging.Logger
}

// NewQuotaService returns a quota gate backed by store. Call Load before use.
func NewQuotaService(store kvstore.Store, worker *persist.Worker, log logging.Logger) *QuotaService {
	return &QuotaService{
		store:  store,
		worker: worker,
		log:    log.With("component", "quota"),
	}
}

// Load reads the persisted counter. A missing or corrupt value degrades to
// zero and is never an error.
func (s *QuotaService) Load(ctx context.Context) {
	data, err := s.store.Get(ctx, quotaStoreKey)
	if err != nil || data == nil {
		if err != nil {
			s.log.Warn(ctx, "failed to read scan count, starting at zero", "error", err)
		}
		return
	}

	used, err := strconv.Atoi(string(data))
	if err != nil || used < 0 {
		s.log.Warn(ctx, "corrupt scan count, starting at zero", "value", string(data))
		return
	}

	s.mu.Lock()
	s.used = used
	s.mu.Unlock()
}

// CanPerform reports whether a scan may proceed. Entitled users always may;
// others only while the ceiling is not reached. Pure, no side effects.
func (s *QuotaService) CanPerform(isEntitled bool) bool {
	if isEntitled {
		return true
	}
	return !s.LimitReached()
}

// RecordUsage consumes one free scan and reports whether this call is the one
// that reached the ceiling, so the caller can trigger its upgrade prompt.
func (s *QuotaService) RecordUsage() (justReachedLimit bool) {
	s.mu.Lock()
	s.used++
	justReachedLimit = s.used == MaxFreeScans
	s.mu.Unlock()

	s.persistAsync()
	return justReachedLimit
}

// Reset clears the counter. Must be called when entitlement transitions from
// false to true.
func (s *QuotaService) Reset() {
	s.mu.Lock()
	s.used = 0
	s.mu.Unlock()

	s.persistAsync()
}

// Used returns the number of consumed free scans.
func (s *QuotaService) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

// Remaining returns how many free scans are left, never negative.
func (s *QuotaService) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return max(0, MaxFreeScans-s.used)
}

// LimitReached reports whether the ceiling has been reached.
func (s *QuotaService) LimitReached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used >= MaxFreeScans
}

func (s *QuotaService) persistAsync() {
	s.mu.Lock()
	snapshot := s.used
	s.mu.Unlock()

	s.worker.Submit(func(ctx context.Context) error {
		return s.store.Set(ctx, quotaStoreKey, []byte(strconv.Itoa(snapshot)))
	})
}
