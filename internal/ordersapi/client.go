// =============================================================================
// POS to XLSX Export - Order Management API Client
// =============================================================================
//
// HTTP client for the order-management API. Orders are fetched for a single
// business date per run; the endpoint returns a bare JSON array of orders.
// Same transport rules as the catalog client: rate-limited, no retries, any
// failure aborts the run.
//
// =============================================================================

package ordersapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Client fetches orders for a business date.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     *logrus.Entry
}

// NewClient creates an orders client. Parameters match posapi.NewClient.
func NewClient(baseURL, apiKey string, timeout time.Duration, rps float64, log *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		log:     log.WithField("client", "ordersapi"),
	}
}

// FetchOrders retrieves all orders filed under the given business date.
//
// PARAMETERS:
//   - businessDate: the date filter in yyyyMMdd form, as required by the
//     upstream API. The value is passed through verbatim.
//
// RETURNS:
//   - The decoded orders, in upstream order.
//   - An error on any transport, status, or decode failure.
func (c *Client) FetchOrders(ctx context.Context, businessDate string) ([]Order, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/orders?businessDate=%s", c.baseURL, url.QueryEscape(businessDate))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithFields(logrus.Fields{
		"url":          endpoint,
		"businessDate": businessDate,
	}).Debug("fetching orders")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("orders endpoint returned %s", resp.Status)
	}

	var orders []Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decoding orders response: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"count":        len(orders),
		"businessDate": businessDate,
	}).Info("fetched orders")
	if len(orders) > 0 && c.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		c.log.Debugf("first order payload:\n%s", spew.Sdump(orders[0]))
	}

	return orders, nil
}
