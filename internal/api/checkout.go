package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Dilvanejennifer/ecommerce-dash/internal/db"
	"github.com/Dilvanejennifer/ecommerce-dash/internal/pricing"
	"github.com/Dilvanejennifer/ecommerce-dash/internal/store"
	stripeinternal "github.com/Dilvanejennifer/ecommerce-dash/internal/stripe"
)

// ─── POST /api/checkout/payment-intent ────────────────────────────────────────

type createPaymentIntentRequest struct {
	Email     string `json:"email"`
	ProductID string `json:"product_id"`
	// DiscountCodeID is optional. Present but unusable (expired, out of
	// scope, exhausted) is an error; absent is simply full price.
	DiscountCodeID string `json:"discount_code_id"`
}

type createPaymentIntentResponse struct {
	// ClientSecret is the Stripe PaymentIntent client_secret. The browser
	// passes this to Stripe.js to render the payment UI and confirm the charge.
	ClientSecret string `json:"client_secret"`
}

// handleCreatePaymentIntent validates the product and optional discount code,
// guarantees a user row for the email, records the order at the payable
// price, and creates a Stripe PaymentIntent for it.
//
// The order row is committed before Stripe is called. If the Stripe call then
// fails, the order stays — intent-to-pay is recorded optimistically and
// abandoned intents are reconciled by the payment-confirmation flow, not here.
func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createPaymentIntentRequest
	if !decode(w, r, &req) {
		return
	}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		respondErr(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid product_id")
		return
	}

	// ── 1. Product must exist ─────────────────────────────────────────────────
	product, err := s.q.GetProductByID(r.Context(), productID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get product: %w", err))
		return
	}

	// ── 2. Optional discount code, filtered by the usability predicate ────────
	var (
		code   db.DiscountCode
		codeID uuid.NullUUID
	)
	if req.DiscountCodeID != "" {
		id, parseErr := uuid.Parse(req.DiscountCodeID)
		if parseErr != nil {
			// An unparseable id can never match a usable code; same outcome.
			respondErr(w, http.StatusBadRequest, "Coupon has expired")
			return
		}
		code, err = s.q.GetUsableDiscountCode(r.Context(), db.GetUsableDiscountCodeParams{
			ID:        id,
			ProductID: product.ID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			respondErr(w, http.StatusBadRequest, "Coupon has expired")
			return
		}
		if err != nil {
			s.respondInternalErr(w, r, fmt.Errorf("get discount code: %w", err))
			return
		}
		codeID = uuid.NullUUID{UUID: code.ID, Valid: true}
	}

	// ── 3. Payable amount ─────────────────────────────────────────────────────
	amount := product.PriceCents
	if codeID.Valid {
		amount = pricing.DiscountedAmountCents(code, product.PriceCents)
	}

	// ── 4. User + order, one transaction ──────────────────────────────────────
	placed, err := s.store.PlaceOrder(r.Context(), store.PlaceOrderParams{
		Email:          req.Email,
		ProductID:      product.ID,
		DiscountCodeID: codeID,
		PricePaidCents: amount,
	})
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("place order: %w", err))
		return
	}

	// ── 5. Stripe PaymentIntent ───────────────────────────────────────────────
	meta := map[string]string{
		"product_id": product.ID.String(),
	}
	if codeID.Valid {
		meta["discount_code_id"] = code.ID.String()
	}

	pi, err := s.stripe.CreatePaymentIntent(r.Context(), stripeinternal.CreatePaymentIntentParams{
		AmountCents: amount,
		Currency:    s.cfg.Currency,
		Email:       req.Email,
		Metadata:    meta,
	})
	if err != nil {
		// The order row from step 4 survives deliberately.
		s.logger.Error("checkout: create payment intent",
			"order_id", placed.Order.ID,
			"error", err,
			logField(r),
		)
		respondErr(w, http.StatusBadGateway, "Failed to create payment intent")
		return
	}
	if pi.ClientSecret == "" {
		s.logger.Error("checkout: payment intent has no client secret",
			"order_id", placed.Order.ID,
			"payment_intent", pi.ID,
			logField(r),
		)
		respondErr(w, http.StatusBadGateway, "Failed to create payment intent")
		return
	}

	respond(w, http.StatusOK, createPaymentIntentResponse{
		ClientSecret: pi.ClientSecret,
	})
}
