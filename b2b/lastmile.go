package b2b

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// partnerHeader builds the extra header the last-mile API family requires.
func partnerHeader(partnerID string) http.Header {
	h := http.Header{}
	h.Set("X-Partner-ID", partnerID)
	return h
}

// CreateDeliveryClaim hands a delivery task to the courier partner.
// requestID is the idempotency key for the claim; pass "" to have one
// generated.
func (c *Client) CreateDeliveryClaim(ctx context.Context, requestID, partnerID string, claim any) (map[string]any, error) {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	query := url.Values{}
	query.Set("request_id", requestID)
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v1/last-mile/claims/create", query, partnerHeader(partnerID), claim)
}

// CancelDeliveryClaim cancels a previously created claim.
func (c *Client) CancelDeliveryClaim(ctx context.Context, partnerID string, cancel any) (map[string]any, error) {
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v1/last-mile/claims/cancel", nil, partnerHeader(partnerID), cancel)
}

type claimsInfoRequest struct {
	ClaimIDs []string `json:"claim_ids"`
}

// GetDeliveryClaimsInfo fetches current state for the given claims.
func (c *Client) GetDeliveryClaimsInfo(ctx context.Context, partnerID string, claimIDs []string) (map[string]any, error) {
	body := claimsInfoRequest{ClaimIDs: claimIDs}
	return c.callJSON(ctx, bearerAuth, http.MethodPost, "/v1/last-mile/claims/info", nil, partnerHeader(partnerID), body)
}

// ClaimEventsQuery controls the claim event feed cursor. LastKnownID is
// sent only when set. Limit is sent whenever non-zero; setting it to zero
// explicitly omits the parameter.
type ClaimEventsQuery struct {
	LastKnownID string
	Limit       int
}

// DefaultClaimEventsQuery returns the query the gateway documents as the
// default: no cursor, limit 1000.
func DefaultClaimEventsQuery() ClaimEventsQuery {
	return ClaimEventsQuery{Limit: 1000}
}

// GetDeliveryClaimsEvents polls the claim event feed.
func (c *Client) GetDeliveryClaimsEvents(ctx context.Context, partnerID string, q ClaimEventsQuery) (map[string]any, error) {
	query := url.Values{}
	if q.LastKnownID != "" {
		query.Set("last_known_id", q.LastKnownID)
	}
	if q.Limit != 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	return c.callJSON(ctx, bearerAuth, http.MethodGet, "/v1/last-mile/claims/events", query, partnerHeader(partnerID), nil)
}
