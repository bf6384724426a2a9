// Package email defines the interface for transactional email delivery and
// provides a Resend-backed implementation.
package email

import (
	"context"
	"time"
)

// OrderEntry is one past purchase rendered into the order-history email.
type OrderEntry struct {
	OrderID            string
	ProductName        string
	ProductDescription string
	ProductImagePath   string
	PricePaidCents     int64
	PurchasedAt        time.Time
	// DownloadGrantID is the freshly minted grant for this order's product.
	// It is inserted into the download URL and expires after the grant TTL.
	DownloadGrantID string
}

// OrderHistoryParams holds the data needed to send the order-history email.
type OrderHistoryParams struct {
	To     string // recipient email address
	Orders []OrderEntry
}

// Sender is the interface the api package uses to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// SendOrderHistory sends the full order history with one download link
	// per order. Called by the history handler after all grants are minted.
	SendOrderHistory(ctx context.Context, p OrderHistoryParams) error
}
