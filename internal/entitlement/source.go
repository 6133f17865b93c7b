package entitlement

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/repositories/kvstore"
)

// tokenStoreKey is the fixed key the activated token lives under.
const tokenStoreKey = "entitlement_token"

// Source reports whether the user has unlocked unrestricted use.
type Source interface {
	IsEntitled(ctx context.Context) bool
}

// TokenSource is a Source backed by a stored entitlement token. The token is
// re-verified on load so expiry is honored across restarts.
type TokenSource struct {
	mu       sync.Mutex
	entitled bool
	store    kvstore.Store
	secret   []byte
	log      logging.Logger
}

func NewTokenSource(store kvstore.Store, secret []byte, log logging.Logger) *TokenSource {
	return &TokenSource{
		store:  store,
		secret: secret,
		log:    log.With("component", "entitlement"),
	}
}

// Load reads and verifies the stored token. An absent, invalid or expired
// token means not entitled; it is never an error.
func (s *TokenSource) Load(ctx context.Context) {
	data, err := s.store.Get(ctx, tokenStoreKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read entitlement token", "error", err)
		return
	}
	if data == nil {
		return
	}

	if err := VerifyToken(string(data), s.secret); err != nil {
		s.log.Warn(ctx, "stored entitlement token rejected", "error", err)
		return
	}

	s.mu.Lock()
	s.entitled = true
	s.mu.Unlock()
}

// Activate verifies and persists a new token. Unlike ledger writes this is a
// synchronous write: the user is waiting on the outcome of the activation.
func (s *TokenSource) Activate(ctx context.Context, token string) error {
	if err := VerifyToken(token, s.secret); err != nil {
		return err
	}

	if err := s.store.Set(ctx, tokenStoreKey, []byte(token)); err != nil {
		// activation still succeeds for this session
		s.log.Error(ctx, "failed to persist entitlement token", "error", err)
	}

	s.mu.Lock()
	s.entitled = true
	s.mu.Unlock()
	return nil
}

// Deactivate forgets the stored token.
func (s *TokenSource) Deactivate(ctx context.Context) {
	if err := s.store.Delete(ctx, tokenStoreKey); err != nil {
		s.log.Error(ctx, "failed to delete entitlement token", "error", err)
	}

	s.mu.Lock()
	s.entitled = false
	s.mu.Unlock()
}

func (s *TokenSource) IsEntitled(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entitled
}

// Static is a fixed-value Source for tests and for wiring defaults.
type Static bool

func (s Static) IsEntitled(_ context.Context) bool { return bool(s) }
