package b2b

import (
	"context"
	"net/http"
)

// The Magnit Market seller API authenticates with the same token presented
// as an x-api-key header instead of a bearer grant.

// GetCategories lists the marketplace category tree.
func (c *Client) GetCategories(ctx context.Context) (map[string]any, error) {
	return c.callJSON(ctx, apiKeyAuth, http.MethodGet, "/seller/v1/categories", nil, nil, nil)
}

type categoryCharacteristicsRequest struct {
	CategoryIDs []int64 `json:"category_ids"`
}

// GetCategoryCharacteristics fetches the characteristics sellers must fill
// in for the given categories.
func (c *Client) GetCategoryCharacteristics(ctx context.Context, categoryIDs []int64) (map[string]any, error) {
	body := categoryCharacteristicsRequest{CategoryIDs: categoryIDs}
	return c.callJSON(ctx, apiKeyAuth, http.MethodPost, "/seller/v1/products/defined-characteristics", nil, nil, body)
}

type createSkuRequest struct {
	SkuList []map[string]any `json:"sku_list"`
}

// CreateSku registers new catalog entries.
func (c *Client) CreateSku(ctx context.Context, skuList []map[string]any) (map[string]any, error) {
	body := createSkuRequest{SkuList: skuList}
	return c.callJSON(ctx, apiKeyAuth, http.MethodPost, "/seller/v1/products/sku", nil, nil, body)
}

type updatePricesRequest struct {
	Prices []map[string]any `json:"prices"`
}

// UpdatePrices pushes new prices for existing SKUs.
func (c *Client) UpdatePrices(ctx context.Context, prices []map[string]any) (map[string]any, error) {
	body := updatePricesRequest{Prices: prices}
	return c.callJSON(ctx, apiKeyAuth, http.MethodPost, "/seller/v1/products/sku/price", nil, nil, body)
}

type updateStocksRequest struct {
	Stocks []map[string]any `json:"stocks"`
}

// UpdateStocks pushes new stock levels for existing SKUs. Reports true iff
// the gateway answered 200.
func (c *Client) UpdateStocks(ctx context.Context, stocks []map[string]any) (bool, error) {
	body := updateStocksRequest{Stocks: stocks}
	return c.callStatus(ctx, apiKeyAuth, http.MethodPost, "/seller/v1/products/sku/stocks", body, http.StatusOK)
}

// GetShops lists the seller's shops.
func (c *Client) GetShops(ctx context.Context) (map[string]any, error) {
	return c.callJSON(ctx, apiKeyAuth, http.MethodGet, "/seller/v1/shops", nil, nil, nil)
}
