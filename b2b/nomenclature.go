package b2b

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetStorePrices fetches current prices for every good in a store.
func (c *Client) GetStorePrices(ctx context.Context, storeID string) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/nomenclature/stores/%s/prices", storeID), nil, nil, nil)
}

// GetStoreStocks fetches current stock levels for every good in a store.
func (c *Client) GetStoreStocks(ctx context.Context, storeID string) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/nomenclature/stores/%s/stocks", storeID), nil, nil, nil)
}

// GetStoreStocksDelta fetches stock changes since the given unix timestamp.
func (c *Client) GetStoreStocksDelta(ctx context.Context, storeID string, timestampFrom int64) (map[string]any, error) {
	query := url.Values{}
	query.Set("timestamp_from", strconv.FormatInt(timestampFrom, 10))
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/nomenclature/stores/%s/stocks_delta", storeID), query, nil, nil)
}
