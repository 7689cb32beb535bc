//nolint:revive // Struct field names match API responses
package wxapi

import (
	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
	"github.com/dannywalker-afni-com/Wx/internal/log"
)

// Person is a directory entry from GET /v1/people. Only the fields
// the tool reads are mapped.
type Person struct {
	Id          string   `json:"id"`
	Emails      []string `json:"emails"`
	DisplayName string   `json:"displayName"`
}

// ListPeople looks up directory entries by email address. Exact-match
// email lookups return at most one item, but the API shape is a list.
func (c *Client) ListPeople(email string) ([]Person, error) {
	log.Debug("GET %s/v1/people?email=%s", c.BaseURL, email)

	var people struct {
		Items []Person `json:"items"`
	}
	resp, err := c.request().SetQueryParam("email", email).Get("/v1/people")
	if err != nil {
		return nil, werrors.Wrapf(werrors.ErrAPIConnection, "GET /v1/people: %v", err)
	}
	if !resp.IsSuccessState() {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: resp.String()}
	}
	if err := resp.UnmarshalJson(&people); err != nil {
		return nil, werrors.Wrapf(werrors.ErrAPIResponse, "unmarshal people list: %v", err)
	}
	return people.Items, nil
}
