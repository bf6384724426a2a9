package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

// resendClient is the concrete Sender backed by the Resend API.
type resendClient struct {
	apiKey     string
	fromAddr   string // e.g. "support@shop.example.com"
	fromName   string // e.g. "Support"
	baseURL    string // download URL base, e.g. "https://shop.example.com"
	httpClient *http.Client
}

// NewResendClient returns a Sender that delivers email via Resend.
func NewResendClient(apiKey, fromAddr, fromName, baseURL string) Sender {
	return &resendClient{
		apiKey:   apiKey,
		fromAddr: fromAddr,
		fromName: fromName,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ─── RESEND API SHAPES ────────────────────────────────────────────────────────

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Name       string `json:"name"`
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}

// ─── SENDER IMPLEMENTATION ────────────────────────────────────────────────────

// SendOrderHistory sends the order-history email with a download link per order.
func (c *resendClient) SendOrderHistory(ctx context.Context, p OrderHistoryParams) error {
	return c.send(ctx, p.To, "Order History", orderHistoryHTML(c.baseURL, p.Orders))
}

// ─── HTTP SEND ────────────────────────────────────────────────────────────────

func (c *resendClient) send(ctx context.Context, to, subject, htmlBody string) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromAddr)

	reqBody := resendRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.resend.com/emails",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("email: read response: %w", err)
	}

	var parsed resendResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return fmt.Errorf("email: unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if parsed.Error != nil {
		return fmt.Errorf("email: Resend error %s: %s", parsed.Error.Name, parsed.Error.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	return nil
}

// ─── HTML TEMPLATE ────────────────────────────────────────────────────────────

func orderHistoryHTML(baseURL string, orders []OrderEntry) string {
	var rows strings.Builder
	for _, o := range orders {
		downloadURL := fmt.Sprintf("%s/products/download/%s", baseURL, o.DownloadGrantID)
		fmt.Fprintf(&rows, `
  <div style="border: 1px solid #e5e7eb; border-radius: 8px; padding: 16px; margin-bottom: 16px;">
    <h3 style="margin: 0 0 4px;">%s</h3>
    <p style="margin: 0 0 8px; color: #6b7280; font-size: 14px;">%s</p>
    <p style="margin: 0 0 12px; font-size: 14px;">
      Purchased %s · Paid <strong>$%.2f</strong> · Order %s
    </p>
    <a href="%s"
       style="background: #0f172a; color: #ffffff; padding: 10px 20px;
              border-radius: 6px; text-decoration: none; font-weight: 600;">
      Download
    </a>
  </div>`,
			html.EscapeString(o.ProductName),
			html.EscapeString(o.ProductDescription),
			o.PurchasedAt.Format("Jan 2, 2006"),
			float64(o.PricePaidCents)/100,
			html.EscapeString(o.OrderID),
			downloadURL,
		)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: sans-serif; color: #1a1a1a; max-width: 560px; margin: 0 auto; padding: 24px;">
  <h2 style="margin-bottom: 8px;">Order History</h2>
  <p>Your past orders are listed below. Each download link is valid for 24 hours.</p>
%s
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 32px 0;">
  <p style="color: #9ca3af; font-size: 12px;">
    If a link has expired, request your order history again for a fresh one.
  </p>
</body>
</html>`, rows.String())
}
