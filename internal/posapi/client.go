// =============================================================================
// POS to XLSX Export - Product Catalog API Client
// =============================================================================
//
// HTTP client for the POS product catalog. One request per run: the whole
// catalog comes back in a single envelope. The client is paced by a rate
// limiter so that repeated manual runs cannot hammer the upstream, and it
// never retries: a failed fetch aborts the run (the importer has already
// written the header row, so the sheet is left header-only).
//
// =============================================================================

package posapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client fetches the product catalog.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

// NewClient creates a catalog client.
//
// PARAMETERS:
//   - baseURL: API base URL without a trailing slash.
//   - apiKey: bearer token sent on every request. May be empty for
//     unauthenticated test servers.
//   - timeout: per-request timeout.
//   - rps: maximum requests per second (burst 1).
func NewClient(baseURL, apiKey string, timeout time.Duration, rps float64, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		log:     log.WithField("client", "posapi"),
	}
}

// FetchProducts retrieves the full product catalog.
//
// RETURNS:
//   - The decoded products, in upstream order.
//   - An error on any transport, status, or decode failure.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.baseURL + "/products"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithField("url", url).Debug("fetching product catalog")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("products endpoint returned %s", resp.Status)
	}

	var envelope ProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding products response: %w", err)
	}

	products := envelope.Response.Products
	c.log.WithField("count", len(products)).Info("fetched product catalog")
	if len(products) > 0 && c.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		c.log.Debugf("first product payload:\n%s", spew.Sdump(products[0]))
	}

	return products, nil
}
