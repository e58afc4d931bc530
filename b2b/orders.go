package b2b

import (
	"context"
	"fmt"
	"net/http"
)

// CreateOrder submits a new order. Pass an OrderBuilder result or any
// JSON-serializable payload matching the gateway contract.
func (c *Client) CreateOrder(ctx context.Context, order any) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v1/orders", nil, nil, order)
}

// GetOrder fetches an order by its gateway identifier.
func (c *Client) GetOrder(ctx context.Context, orderID string) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/orders/%s", orderID), nil, nil, nil)
}

type cancelOrderRequest struct {
	Reason      string `json:"reason"`
	CancelledAt string `json:"cancelled_at,omitempty"`
}

// CancelOrder cancels an order. cancelledAt is optional; pass "" to omit it.
// Reports true iff the gateway answered 200.
func (c *Client) CancelOrder(ctx context.Context, orderID, reason, cancelledAt string) (bool, error) {
	body := cancelOrderRequest{Reason: reason, CancelledAt: cancelledAt}
	return c.callStatus(ctx, bearerAuth, http.MethodPost, fmt.Sprintf("/v1/orders/%s/cancel", orderID), body, http.StatusOK)
}

// GetOrderStatus fetches the current status of an order.
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodGet, fmt.Sprintf("/v1/orders/%s/status", orderID), nil, nil, nil)
}

// UpdateOrderStatus pushes a status change. Reports true iff the gateway
// accepted it with 202.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status any) (bool, error) {
	return c.callStatus(ctx, bearerAuth, http.MethodPut, fmt.Sprintf("/v1/orders/%s/status", orderID), status, http.StatusAccepted)
}

// SendOrderEvent publishes an order event. Reports true iff the gateway
// accepted it with 202.
func (c *Client) SendOrderEvent(ctx context.Context, orderID string, event any) (bool, error) {
	return c.callStatus(ctx, bearerAuth, http.MethodPost, fmt.Sprintf("/v1/orders/%s/event", orderID), event, http.StatusAccepted)
}
