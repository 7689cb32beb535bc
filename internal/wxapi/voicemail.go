//nolint:revive // Struct field names match API responses
package wxapi

import (
	"fmt"
	"net/url"

	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
	"github.com/dannywalker-afni-com/Wx/internal/log"
)

// VoicemailConfig mirrors GET /v1/people/{id}/features/voicemail.
// Every field is optional on the wire; pointers keep "absent"
// distinct from false and "".
type VoicemailConfig struct {
	Enabled            *bool           `json:"enabled,omitempty"`
	MessageStorage     *MessageStorage `json:"messageStorage,omitempty"`
	EmailCopyOfMessage *EmailCopy      `json:"emailCopyOfMessage,omitempty"`
}

// MessageStorage says where voicemail recordings land.
type MessageStorage struct {
	StorageType   *string `json:"storageType,omitempty"`
	MwiEnabled    *bool   `json:"mwiEnabled,omitempty"`
	ExternalEmail *string `json:"externalEmail,omitempty"`
}

// EmailCopy controls the copy-to-email behavior.
type EmailCopy struct {
	Enabled *bool   `json:"enabled,omitempty"`
	EmailID *string `json:"emailId,omitempty"`
}

// VoicemailToggle is an enabled/destination pair used in update
// payloads for notifications and call transfer.
type VoicemailToggle struct {
	Enabled     bool   `json:"enabled"`
	Destination string `json:"destination"`
}

// VoicemailUpdate is the PUT body for changing a person's voicemail
// settings.
type VoicemailUpdate struct {
	Enabled            bool            `json:"enabled"`
	Notifications      VoicemailToggle `json:"notifications"`
	TransferToNumber   VoicemailToggle `json:"transferToNumber"`
	MessageStorage     *MessageStorage `json:"messageStorage,omitempty"`
	EmailCopyOfMessage *EmailCopy      `json:"emailCopyOfMessage,omitempty"`
}

func voicemailPath(personID string) string {
	return fmt.Sprintf("/v1/people/%s/features/voicemail", url.PathEscape(personID))
}

// GetVoicemail fetches one person's voicemail configuration. Failures
// are logged and returned; the caller decides whether to carry on. A
// 2xx body that does not parse as JSON is treated the same way as a
// failed request.
func (c *Client) GetVoicemail(personID string) (*VoicemailConfig, error) {
	path := voicemailPath(personID)
	log.Debug("GET %s%s", c.BaseURL, path)

	resp, err := c.request().Get(path)
	if err != nil {
		log.Error("%s: %v", personID, err)
		return nil, werrors.Wrapf(werrors.ErrAPIConnection, "GET %s: %v", path, err)
	}
	if !resp.IsSuccessState() {
		log.Error("%s: %d %s", personID, resp.StatusCode, resp.String())
		return nil, &APIError{StatusCode: resp.StatusCode, Body: resp.String()}
	}

	var config VoicemailConfig
	if err := resp.UnmarshalJson(&config); err != nil {
		log.Error("%s: %v", personID, err)
		return nil, werrors.Wrapf(werrors.ErrAPIResponse, "unmarshal voicemail config: %v", err)
	}
	return &config, nil
}

// SetVoicemail replaces a person's voicemail settings. The API
// answers 200 or 204 on success; anything else comes back as an
// *APIError with the response body attached.
func (c *Client) SetVoicemail(personID string, update *VoicemailUpdate) error {
	path := voicemailPath(personID)
	log.Debug("PUT %s%s", c.BaseURL, path)

	resp, err := c.request().SetBodyJsonMarshal(update).Put(path)
	if err != nil {
		return werrors.Wrapf(werrors.ErrAPIConnection, "PUT %s: %v", path, err)
	}
	if !resp.IsSuccessState() {
		return &APIError{StatusCode: resp.StatusCode, Body: resp.String()}
	}
	return nil
}
