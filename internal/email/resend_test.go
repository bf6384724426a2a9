package email

import (
	"strings"
	"testing"
	"time"
)

func TestOrderHistoryHTML_RendersEveryOrderWithDownloadLink(t *testing.T) {
	orders := []OrderEntry{
		{
			OrderID:            "order-1",
			ProductName:        "Synth Presets Vol. 1",
			ProductDescription: "120 patches",
			PricePaidCents:     4999,
			PurchasedAt:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			DownloadGrantID:    "grant-aaa",
		},
		{
			OrderID:         "order-2",
			ProductName:     "Drum Samples",
			PricePaidCents:  1299,
			PurchasedAt:     time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
			DownloadGrantID: "grant-bbb",
		},
	}

	html := orderHistoryHTML("https://shop.example.com", orders)

	for _, want := range []string{
		"https://shop.example.com/products/download/grant-aaa",
		"https://shop.example.com/products/download/grant-bbb",
		"Synth Presets Vol. 1",
		"Drum Samples",
		"$49.99",
		"$12.99",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestOrderHistoryHTML_EscapesProductText(t *testing.T) {
	orders := []OrderEntry{{
		ProductName:     `<script>alert("x")</script>`,
		DownloadGrantID: "grant-ccc",
		PurchasedAt:     time.Now(),
	}}

	html := orderHistoryHTML("https://shop.example.com", orders)

	if strings.Contains(html, "<script>") {
		t.Error("product name was not HTML-escaped")
	}
}
