package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dilvanejennifer/ecommerce-dash/internal/db"
)

// MintDownloadGrants creates one download grant per product ID, all expiring
// at the same instant (now + ttl). The inserts are independent rows, so they
// run concurrently and are joined before returning — no transaction needed,
// but the batch is all-or-nothing from the caller's perspective: if any
// insert fails, the whole call fails and no email should be sent. Grants
// already committed by sibling goroutines are left behind; they are harmless
// (never referenced by an email) and expire with everything else.
//
// The returned slice is index-aligned with productIDs.
func (s *Store) MintDownloadGrants(ctx context.Context, productIDs []uuid.UUID, ttl time.Duration) ([]db.DownloadGrant, error) {
	grants := make([]db.DownloadGrant, len(productIDs))
	expiresAt := time.Now().Add(ttl)

	g, ctx := errgroup.WithContext(ctx)
	for i, productID := range productIDs {
		g.Go(func() error {
			grant, err := s.q.CreateDownloadGrant(ctx, db.CreateDownloadGrantParams{
				ProductID: productID,
				ExpiresAt: expiresAt,
			})
			if err != nil {
				return fmt.Errorf("MintDownloadGrants: product %s: %w", productID, err)
			}
			grants[i] = grant
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return grants, nil
}
