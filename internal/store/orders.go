package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Dilvanejennifer/ecommerce-dash/internal/db"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// PlaceOrderParams groups everything written when a payment intent is
// requested: the customer identity and the order row.
type PlaceOrderParams struct {
	Email     string
	ProductID uuid.UUID
	// DiscountCodeID is set only when a usable code was resolved by the
	// handler. The store records it verbatim; eligibility was already checked.
	DiscountCodeID uuid.NullUUID
	// PricePaidCents is the payable amount — base price, or the discounted
	// amount, never above the product's base price.
	PricePaidCents int64
}

// PlacedOrder is the result of a successful PlaceOrder call.
type PlacedOrder struct {
	User  db.User
	Order db.Order
	// NewCustomer is true when this call created the user row. Existing rows
	// are never modified — the find-or-create is guarantee-existence only.
	NewCustomer bool
}

// ─── METHODS ─────────────────────────────────────────────────────────────────

// PlaceOrder atomically guarantees a user row for the email and records the
// order against it. The find-or-create is explicit: an existing user is
// returned untouched, an absent one is created with only the email populated.
//
// Both writes share one serializable transaction, so a concurrent first
// purchase for the same new email cannot create two user rows — the second
// transaction either sees the committed row or fails serialization (and the
// unique index on users.email backs the guarantee either way).
//
// The order row is deliberately written before the caller contacts the
// payment processor. An order with no confirmed payment is expected when the
// processor call fails afterwards; reconciliation happens out of band.
func (s *Store) PlaceOrder(ctx context.Context, p PlaceOrderParams) (PlacedOrder, error) {
	var placed PlacedOrder

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		user, err := q.GetUserByEmail(ctx, p.Email)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			user, err = q.CreateUser(ctx, p.Email)
			if err != nil {
				return fmt.Errorf("PlaceOrder: create user: %w", err)
			}
			placed.NewCustomer = true
		case err != nil:
			return fmt.Errorf("PlaceOrder: get user: %w", err)
		}

		order, err := q.CreateOrder(ctx, db.CreateOrderParams{
			UserID:         user.ID,
			ProductID:      p.ProductID,
			DiscountCodeID: p.DiscountCodeID,
			PricePaidCents: p.PricePaidCents,
		})
		if err != nil {
			return fmt.Errorf("PlaceOrder: create order: %w", err)
		}

		placed.User = user
		placed.Order = order
		return nil
	})
	if err != nil {
		return PlacedOrder{}, err
	}

	return placed, nil
}
