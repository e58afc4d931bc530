package b2b

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// PickupPointsQuery filters the pickup point listing. Zero Page and Size
// fall back to the gateway defaults (page 1, 100 per page); Key, Region and
// City are sent only when non-empty.
type PickupPointsQuery struct {
	Page   int
	Size   int
	Key    string
	Region string
	City   string
}

// GetPickupPoints lists Magnit Post pickup points.
func (c *Client) GetPickupPoints(ctx context.Context, q PickupPointsQuery) (map[string]any, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = 100
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("size", strconv.Itoa(q.Size))
	if q.Key != "" {
		query.Set("key", q.Key)
	}
	if q.Region != "" {
		query.Set("region", q.Region)
	}
	if q.City != "" {
		query.Set("city", q.City)
	}

	return c.callJSON(ctx, bearerAuth, http.MethodGet, "/v1/magnit-post/pickup-points", query, nil, nil)
}

// CreateDeliveryOrder submits a Magnit Post parcel order.
func (c *Client) CreateDeliveryOrder(ctx context.Context, order any) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v1/magnit-post/orders", nil, nil, order)
}

// GetDeliveryOrder fetches a parcel order by tracking number.
func (c *Client) GetDeliveryOrder(ctx context.Context, trackingNumber string) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/magnit-post/orders/%s", trackingNumber), nil, nil, nil)
}

// CancelDeliveryOrder cancels a parcel order. Reports true iff the gateway
// answered 204.
func (c *Client) CancelDeliveryOrder(ctx context.Context, trackingNumber string) (bool, error) {
	return c.callStatus(ctx, bearerAuth, http.MethodDelete, fmt.Sprintf("/v1/magnit-post/orders/%s", trackingNumber), nil, http.StatusNoContent)
}

// GetDeliveryOrderStatusHistory fetches every status transition of a parcel.
func (c *Client) GetDeliveryOrderStatusHistory(ctx context.Context, trackingNumber string) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/magnit-post/orders/%s/status-history", trackingNumber), nil, nil, nil)
}

type deliveryOrdersStatusesRequest struct {
	TrackingNumbers []string `json:"trackingNumbers"`
}

// GetDeliveryOrdersStatuses fetches current statuses for several parcels.
func (c *Client) GetDeliveryOrdersStatuses(ctx context.Context, trackingNumbers []string) (map[string]any, error) {
	body := deliveryOrdersStatusesRequest{TrackingNumbers: trackingNumbers}
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v1/magnit-post/order-statuses", nil, nil, body)
}

// EstimateDeliveryOrder quotes price and timing for a prospective parcel.
func (c *Client) EstimateDeliveryOrder(ctx context.Context, estimate any) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v2/magnit-post/orders/estimate", nil, nil, estimate)
}
