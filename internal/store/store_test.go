package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/Dilvanejennifer/ecommerce-dash/internal/db"
	"github.com/Dilvanejennifer/ecommerce-dash/internal/store"
)

// openTestDB connects to the database named by DATABASE_URL, or skips the test
// when none is configured. These are integration tests; they need a Postgres
// with the schema from sql/schema.sql applied.
func openTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping store integration tests")
	}

	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		t.Fatalf("ping database: %v", err)
	}

	queries, err := db.Prepare(ctx, pool)
	if err != nil {
		t.Fatalf("prepare statements: %v", err)
	}
	t.Cleanup(func() { queries.Close() })

	return pool, queries
}

// insertTestProduct writes a product row directly; the service has no
// CreateProduct query because products are managed by the admin dashboard.
func insertTestProduct(t *testing.T, pool *sql.DB, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(
		`INSERT INTO products (id, name, price_cents, image_path, description)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, "test product "+id.String()[:8], priceCents, "/products/test.png", "integration test product",
	)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(`DELETE FROM download_grants WHERE product_id = $1`, id)
		pool.Exec(`DELETE FROM orders WHERE product_id = $1`, id)
		pool.Exec(`DELETE FROM products WHERE id = $1`, id)
	})
	return id
}

func cleanupUser(t *testing.T, pool *sql.DB, email string) {
	t.Helper()
	t.Cleanup(func() {
		pool.Exec(`DELETE FROM users WHERE email = $1`, email)
	})
}

func TestPlaceOrder_CreatesUserThenReusesIt(t *testing.T) {
	pool, queries := openTestDB(t)
	st := store.New(pool, queries)
	ctx := context.Background()

	productID := insertTestProduct(t, pool, 5000)
	email := fmt.Sprintf("store-test-%s@example.com", uuid.New().String()[:8])
	cleanupUser(t, pool, email)

	first, err := st.PlaceOrder(ctx, store.PlaceOrderParams{
		Email:          email,
		ProductID:      productID,
		PricePaidCents: 5000,
	})
	if err != nil {
		t.Fatalf("first PlaceOrder: %v", err)
	}
	if !first.NewCustomer {
		t.Error("first order for a fresh email should report a new customer")
	}
	if first.User.Email != email {
		t.Errorf("user email: got %q, want %q", first.User.Email, email)
	}
	if first.Order.UserID != first.User.ID {
		t.Error("order is not attached to the created user")
	}
	if first.Order.PricePaidCents != 5000 {
		t.Errorf("price paid: got %d, want 5000", first.Order.PricePaidCents)
	}

	second, err := st.PlaceOrder(ctx, store.PlaceOrderParams{
		Email:          email,
		ProductID:      productID,
		PricePaidCents: 5000,
	})
	if err != nil {
		t.Fatalf("second PlaceOrder: %v", err)
	}
	if second.NewCustomer {
		t.Error("second order for the same email should reuse the user")
	}
	if second.User.ID != first.User.ID {
		t.Errorf("user id changed between orders: %s vs %s", first.User.ID, second.User.ID)
	}
	if second.Order.ID == first.Order.ID {
		t.Error("both calls returned the same order row")
	}
}

func TestPlaceOrder_RecordsDiscountCode(t *testing.T) {
	pool, queries := openTestDB(t)
	st := store.New(pool, queries)
	ctx := context.Background()

	productID := insertTestProduct(t, pool, 5000)
	email := fmt.Sprintf("store-test-%s@example.com", uuid.New().String()[:8])
	cleanupUser(t, pool, email)

	codeID := uuid.New()
	_, err := pool.Exec(
		`INSERT INTO discount_codes (id, code, discount_amount, discount_type, all_products)
		 VALUES ($1, $2, 20, 'PERCENTAGE', true)`,
		codeID, "TEST-"+codeID.String()[:8],
	)
	if err != nil {
		t.Fatalf("insert discount code: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(`DELETE FROM orders WHERE discount_code_id = $1`, codeID)
		pool.Exec(`DELETE FROM discount_codes WHERE id = $1`, codeID)
	})

	placed, err := st.PlaceOrder(ctx, store.PlaceOrderParams{
		Email:          email,
		ProductID:      productID,
		DiscountCodeID: uuid.NullUUID{UUID: codeID, Valid: true},
		PricePaidCents: 4000,
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if !placed.Order.DiscountCodeID.Valid || placed.Order.DiscountCodeID.UUID != codeID {
		t.Errorf("order discount_code_id: got %+v, want %s", placed.Order.DiscountCodeID, codeID)
	}
}

func TestMintDownloadGrants_OnePerProduct(t *testing.T) {
	pool, queries := openTestDB(t)
	st := store.New(pool, queries)
	ctx := context.Background()

	productIDs := []uuid.UUID{
		insertTestProduct(t, pool, 1000),
		insertTestProduct(t, pool, 2000),
		insertTestProduct(t, pool, 3000),
	}

	before := time.Now()
	grants, err := st.MintDownloadGrants(ctx, productIDs, 24*time.Hour)
	if err != nil {
		t.Fatalf("MintDownloadGrants: %v", err)
	}

	if len(grants) != len(productIDs) {
		t.Fatalf("grant count: got %d, want %d", len(grants), len(productIDs))
	}
	for i, grant := range grants {
		if grant.ProductID != productIDs[i] {
			t.Errorf("grant %d: product id %s, want %s (results must be index-aligned)",
				i, grant.ProductID, productIDs[i])
		}
		wantExpiry := before.Add(24 * time.Hour)
		if grant.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) || grant.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
			t.Errorf("grant %d: expires at %v, want roughly %v", i, grant.ExpiresAt, wantExpiry)
		}
	}
}

func TestMintDownloadGrants_RepeatCallsMintFreshRows(t *testing.T) {
	pool, queries := openTestDB(t)
	st := store.New(pool, queries)
	ctx := context.Background()

	productIDs := []uuid.UUID{insertTestProduct(t, pool, 1000)}

	first, err := st.MintDownloadGrants(ctx, productIDs, time.Hour)
	if err != nil {
		t.Fatalf("first mint: %v", err)
	}
	second, err := st.MintDownloadGrants(ctx, productIDs, time.Hour)
	if err != nil {
		t.Fatalf("second mint: %v", err)
	}

	if first[0].ID == second[0].ID {
		t.Error("repeat mint reused a grant row; each call must mint fresh grants")
	}
}

func TestMintDownloadGrants_EmptyInput(t *testing.T) {
	pool, queries := openTestDB(t)
	st := store.New(pool, queries)

	grants, err := st.MintDownloadGrants(context.Background(), nil, time.Hour)
	if err != nil {
		t.Fatalf("MintDownloadGrants(nil): %v", err)
	}
	if len(grants) != 0 {
		t.Errorf("expected no grants for empty input, got %d", len(grants))
	}
}
