package cache

import (
	"context"
	"sync"
	"time"

	"github.com/airvoucher/av_backend/internal/core/domain"
)

// SalesCache holds sale lists per scope for a short TTL.
type SalesCache interface {
	Get(ctx context.Context, key string) ([]domain.SaleRecord, bool, error)
	Set(ctx context.Context, key string, value []domain.SaleRecord, ttl time.Duration) error
}

// TokenDenylist remembers revoked tokens by hash until they expire.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

type NoopSalesCache struct{}

func (NoopSalesCache) Get(_ context.Context, _ string) ([]domain.SaleRecord, bool, error) {
	return nil, false, nil
}

func (NoopSalesCache) Set(_ context.Context, _ string, _ []domain.SaleRecord, _ time.Duration) error {
	return nil
}

// MemoryTokenDenylist is the single-instance denylist used when Redis is not configured.
type MemoryTokenDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenDenylist() *MemoryTokenDenylist {
	return &MemoryTokenDenylist{entries: map[string]time.Time{}, now: time.Now}
}

func (d *MemoryTokenDenylist) Revoke(_ context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	for k, exp := range d.entries {
		if !now.Before(exp) {
			delete(d.entries, k)
		}
	}
	d.entries[tokenHash] = now.Add(ttl)
	return nil
}

func (d *MemoryTokenDenylist) IsRevoked(_ context.Context, tokenHash string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.entries[tokenHash]
	if !ok {
		return false, nil
	}
	if !d.now().Before(exp) {
		delete(d.entries, tokenHash)
		return false, nil
	}
	return true, nil
}
