package customer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/crm-portal/crm_portal/internal/config"
)

// maxErrorBody bounds how much of an upstream error payload is retained for
// diagnostics.
const maxErrorBody = 4 << 10

// Gateway fetches a single customer record from the CRM backend. Callers are
// responsible for validating the identifier and token before calling Fetch.
type Gateway interface {
	Fetch(ctx context.Context, customerID, token string) (Info, error)
}

// CRMGateway talks to the CRM backend over HTTP. Exactly one attempt is made
// per call; the backend documents no idempotency guarantee, and the user
// waiting on the other side needs a fast answer rather than retried attempts.
type CRMGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCRMGateway builds a gateway against the configured CRM base URL. The
// client timeout bounds the whole round trip so a hung backend cannot hang
// the inbound request.
func NewCRMGateway(cfg config.Config, logger *slog.Logger) *CRMGateway {
	return &CRMGateway{
		baseURL: cfg.CRMBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.CRMTimeout,
		},
		logger: logger,
	}
}

// Fetch retrieves the customer record for customerID using the caller's
// bearer token. Failures come back as ErrNotFound or *UpstreamError; no
// failure mode escapes as a panic or an untyped transport error.
func (g *CRMGateway) Fetch(ctx context.Context, customerID, token string) (Info, error) {
	endpoint := fmt.Sprintf("%s/api/Customer/info/%s", g.baseURL, url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Info{}, &UpstreamError{Detail: fmt.Sprintf("build CRM request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	g.logger.Info("fetching customer from CRM backend",
		slog.String("customer_id", customerID),
		slog.String("url", endpoint),
	)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("CRM backend unreachable",
			slog.String("customer_id", customerID),
			slog.Any("error", err),
		)
		return Info{}, &UpstreamError{Detail: fmt.Sprintf("cannot reach CRM backend: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Info{}, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		g.logger.Warn("CRM backend returned error status",
			slog.String("customer_id", customerID),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return Info{}, &UpstreamError{Status: resp.StatusCode, Detail: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Info{}, &UpstreamError{Detail: fmt.Sprintf("read CRM response: %v", err)}
	}

	info, err := decodeInfo(body)
	if err != nil {
		g.logger.Error("CRM backend returned unparseable payload",
			slog.String("customer_id", customerID),
			slog.Any("error", err),
		)
		return Info{}, &UpstreamError{Detail: err.Error()}
	}

	g.logger.Info("customer retrieved", slog.String("customer_id", customerID))
	return info, nil
}
