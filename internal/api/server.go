// Package api implements the HTTP layer for the storefront fulfillment
// service. Handlers are methods on *Server. Each handler file is responsible
// for one flow and only imports the dependencies it actually uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Dilvanejennifer/ecommerce-dash/internal/db"
	"github.com/Dilvanejennifer/ecommerce-dash/internal/email"
	"github.com/Dilvanejennifer/ecommerce-dash/internal/store"
	stripeinternal "github.com/Dilvanejennifer/ecommerce-dash/internal/stripe"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string

	// Currency is the fixed ISO code every payment intent is created in.
	Currency string

	// DownloadGrantTTL is how long minted download grants stay valid.
	DownloadGrantTTL time.Duration
}

// Store is the subset of *store.Store the handlers use. Tests inject a stub.
type Store interface {
	// PlaceOrder guarantees a user row for the email and records the order,
	// atomically.
	PlaceOrder(ctx context.Context, p store.PlaceOrderParams) (store.PlacedOrder, error)

	// MintDownloadGrants creates one grant per product ID, concurrently,
	// joined before returning. Index-aligned with its input.
	MintDownloadGrants(ctx context.Context, productIDs []uuid.UUID, ttl time.Duration) ([]db.DownloadGrant, error)
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// store handles multi-step atomic writes and the grant batch.
	store Store

	// stripe creates PaymentIntents.
	stripe stripeinternal.Client

	// mailer sends the order-history email.
	mailer email.Sender

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	st Store,
	stripeClient stripeinternal.Client,
	mailer email.Sender,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:      q,
		store:  st,
		stripe: stripeClient,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	// Both flows are anonymous by design — the customer's email is the only
	// identity this service knows.
	r.Route("/api", func(r chi.Router) {
		r.Post("/orders/history-email", s.handleEmailOrderHistory)
		r.Post("/checkout/payment-intent", s.handleCreatePaymentIntent)
	})

	return r
}
