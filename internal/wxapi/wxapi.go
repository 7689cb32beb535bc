// Package wxapi is a thin client for the Webex REST API. All calls
// are synchronous; one request per operation, no retries.
package wxapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"
)

// requestTimeout bounds each individual HTTP call. There is no
// deadline on a whole run, only on single requests.
const requestTimeout = 30 * time.Second

// Client talks to one Webex deployment with one admin token. An
// optional organization id is appended to every request for partner
// admins operating on a customer org.
type Client struct {
	BaseURL string
	OrgID   string
	http    *req.Client
}

// New builds a Client around a shared HTTP transport.
func New(baseURL, token, orgID string) *Client {
	client := req.C().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetCommonBearerAuthToken(token).
		SetCommonHeader("Accept", "application/json").
		SetTimeout(requestTimeout).
		EnableKeepAlives()

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		OrgID:   orgID,
		http:    client,
	}
}

// request returns a prepared request carrying the orgId query
// parameter when one is configured.
func (c *Client) request() *req.Request {
	r := c.http.R()
	if c.OrgID != "" {
		r.SetQueryParam("orgId", c.OrgID)
	}
	return r
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request end with %d status, %s", e.StatusCode, e.Body)
}
