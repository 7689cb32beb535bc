package voicemail

import (
	"fmt"
	"time"

	"github.com/dannywalker-afni-com/Wx/internal/csvfile"
	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/wxapi"
)

// Mode selects where voicemail recordings are delivered when
// voicemail is being enabled.
type Mode string

const (
	// ModeInternal keeps messages in the Webex mailbox only.
	ModeInternal Mode = "internal"
	// ModeCopy keeps the Webex mailbox and emails a copy.
	ModeCopy Mode = "copy"
	// ModeExternal stores messages only in an external mailbox; they
	// will not show up in the Webex App or on phones.
	ModeExternal Mode = "external"
)

// ParseMode validates a mode flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeInternal, ModeCopy, ModeExternal:
		return Mode(s), nil
	}
	return "", fmt.Errorf("mode must be one of: internal | copy | external, got %q", s)
}

// Setter applies one voicemail settings change to every person in the
// roster, sequentially, pausing between requests.
type Setter struct {
	API       *wxapi.Client
	InputPath string
	Enable    bool
	Mode      Mode
	// DestOverride replaces the row's email as the delivery address
	// for copy/external modes when set.
	DestOverride string
	Pause        time.Duration
}

// Summary is the per-run tally printed when a set run finishes.
type Summary struct {
	Total  int
	OK     int
	Failed int
}

func ptrBool(b bool) *bool       { return &b }
func ptrString(s string) *string { return &s }

// buildUpdate assembles the PUT body. The notification and transfer
// blocks are always sent disabled so the update fully describes the
// resulting state.
func buildUpdate(enable bool, mode Mode, dest string) (*wxapi.VoicemailUpdate, error) {
	update := &wxapi.VoicemailUpdate{
		Enabled:          enable,
		Notifications:    wxapi.VoicemailToggle{Enabled: false, Destination: ""},
		TransferToNumber: wxapi.VoicemailToggle{Enabled: false, Destination: ""},
	}
	if !enable {
		return update, nil
	}

	switch mode {
	case ModeInternal:
		update.MessageStorage = &wxapi.MessageStorage{
			MwiEnabled:  ptrBool(true),
			StorageType: ptrString("INTERNAL"),
		}
		update.EmailCopyOfMessage = &wxapi.EmailCopy{Enabled: ptrBool(false), EmailID: ptrString("")}
	case ModeCopy:
		update.MessageStorage = &wxapi.MessageStorage{
			MwiEnabled:  ptrBool(true),
			StorageType: ptrString("INTERNAL"),
		}
		update.EmailCopyOfMessage = &wxapi.EmailCopy{
			Enabled: ptrBool(dest != ""),
			EmailID: ptrString(dest),
		}
	case ModeExternal:
		if dest == "" {
			return nil, fmt.Errorf("external mode requires a destination email (use --dest or an email column)")
		}
		update.MessageStorage = &wxapi.MessageStorage{
			MwiEnabled:    ptrBool(false),
			StorageType:   ptrString("EXTERNAL"),
			ExternalEmail: ptrString(dest),
		}
		update.EmailCopyOfMessage = &wxapi.EmailCopy{Enabled: ptrBool(false), EmailID: ptrString(dest)}
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	return update, nil
}

// Run walks the roster and applies the update row by row. Rows that
// fail are counted, not retried; the run always reaches the end of
// the file.
func (s *Setter) Run() (*Summary, error) {
	roster, err := csvfile.ReadRoster(s.InputPath)
	if err != nil {
		return nil, err
	}
	if !roster.HasColumn("email") || !roster.HasColumn("personid") {
		return nil, werrors.Wrap(werrors.ErrMissingHeader, "roster must contain headers: email,personid")
	}

	summary := &Summary{}
	for i := 0; i < roster.Len(); i++ {
		rec := roster.Record(i)
		summary.Total++

		if rec.PersonID == "" {
			log.Error("Row %d: missing personid, skipping.", summary.Total)
			summary.Failed++
			continue
		}

		dest := s.DestOverride
		if dest == "" {
			dest = rec.Email
		}

		label := rec.Email
		if label == "" {
			label = "(no-email)"
		}
		log.Info("[%d] %s :: %s :: enabled=%v mode=%s dest=%s",
			summary.Total, label, rec.PersonID, s.Enable, s.Mode, dest)

		update, err := buildUpdate(s.Enable, s.Mode, dest)
		if err != nil {
			log.ErrorH2("%v", err)
			summary.Failed++
			continue
		}

		if err := s.API.SetVoicemail(rec.PersonID, update); err != nil {
			log.ErrorH2("%v", err)
			summary.Failed++
		} else {
			log.InfoH2("updated")
			summary.OK++
		}

		if s.Pause > 0 {
			time.Sleep(s.Pause)
		}
	}

	return summary, nil
}
