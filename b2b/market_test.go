package b2b

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCategoryCharacteristics_WrapsIDs(t *testing.T) {
	t.Parallel()

	g := newFakeGateway(t)
	rec := g.handle(http.MethodPost, "/api/seller/v1/products/defined-characteristics", http.StatusOK, `{"characteristics":[]}`)
	c := g.client(t)

	_, err := c.GetCategoryCharacteristics(context.Background(), []int64{10, 20})
	require.NoError(t, err)

	require.Equal(t, testToken, rec.Header.Get("x-api-key"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	require.Equal(t, []any{float64(10), float64(20)}, sent["category_ids"])
}

func TestCreateSku_WrapsList(t *testing.T) {
	t.Parallel()

	g := newFakeGateway(t)
	rec := g.handle(http.MethodPost, "/api/seller/v1/products/sku", http.StatusOK, `{"created":1}`)
	c := g.client(t)

	_, err := c.CreateSku(context.Background(), []map[string]any{
		{"offer_id": "sku-1", "name": "Kettle"},
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	list := sent["sku_list"].([]any)
	require.Len(t, list, 1)
	require.Equal(t, "sku-1", list[0].(map[string]any)["offer_id"])
}

func TestUpdatePrices_WrapsList(t *testing.T) {
	t.Parallel()

	g := newFakeGateway(t)
	rec := g.handle(http.MethodPost, "/api/seller/v1/products/sku/price", http.StatusOK, `{"updated":1}`)
	c := g.client(t)

	_, err := c.UpdatePrices(context.Background(), []map[string]any{
		{"offer_id": "sku-1", "price": 199900},
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.Body, &sent))
	require.Len(t, sent["prices"], 1)
}

func TestUpdateStocks_TrueOnlyFor200(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "ok", status: http.StatusOK, want: true},
		{name: "accepted is not success", status: http.StatusAccepted, want: false},
		{name: "bad request", status: http.StatusBadRequest, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := newFakeGateway(t)
			rec := g.handle(http.MethodPost, "/api/seller/v1/products/sku/stocks", tt.status, "")
			c := g.client(t)

			ok, err := c.UpdateStocks(context.Background(), []map[string]any{
				{"offer_id": "sku-1", "stock": 5},
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
			require.Equal(t, testToken, rec.Header.Get("x-api-key"))

			var sent map[string]any
			require.NoError(t, json.Unmarshal(rec.Body, &sent))
			require.Len(t, sent["stocks"], 1)
		})
	}
}

func TestGetCategories_Path(t *testing.T) {
	t.Parallel()

	g := newFakeGateway(t)
	rec := g.handle(http.MethodGet, "/api/seller/v1/categories", http.StatusOK, `{"categories":[]}`)
	c := g.client(t)

	_, err := c.GetCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/api/seller/v1/categories", rec.Path)
	require.Equal(t, http.MethodGet, rec.Method)
}
