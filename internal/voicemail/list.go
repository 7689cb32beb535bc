// Package voicemail implements the batch voicemail operations: the
// parameter report and the bulk settings update.
package voicemail

import (
	"strconv"

	"github.com/dannywalker-afni-com/Wx/internal/csvfile"
	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/wxapi"
)

// Lister reads a roster CSV, fetches each person's voicemail
// configuration, and writes the flattened fields to the report file.
// Rows are processed strictly in file order, one request at a time.
type Lister struct {
	API        *wxapi.Client
	InputPath  string
	OutputPath string
}

func renderBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func renderString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// outputRow flattens one fetched configuration into the fixed report
// column order.
func outputRow(rec csvfile.Record, config *wxapi.VoicemailConfig) []string {
	storage := config.MessageStorage
	if storage == nil {
		storage = &wxapi.MessageStorage{}
	}
	emailCopy := config.EmailCopyOfMessage
	if emailCopy == nil {
		emailCopy = &wxapi.EmailCopy{}
	}
	return []string{
		rec.Email,
		rec.PersonID,
		renderBool(config.Enabled),
		renderString(storage.StorageType),
		renderBool(storage.MwiEnabled),
		renderString(storage.ExternalEmail),
		renderBool(emailCopy.Enabled),
		renderString(emailCopy.EmailID),
	}
}

func printSummary(rec csvfile.Record, config *wxapi.VoicemailConfig) {
	storage := config.MessageStorage
	if storage == nil {
		storage = &wxapi.MessageStorage{}
	}
	emailCopy := config.EmailCopyOfMessage
	if emailCopy == nil {
		emailCopy = &wxapi.EmailCopy{}
	}
	log.Info("%s (%s)", rec.Email, rec.PersonID)
	log.InfoH2("Voicemail Enabled: %s", renderBool(config.Enabled))
	log.InfoH2("Storage Type: %s", renderString(storage.StorageType))
	log.InfoH2("MWI Enabled: %s", renderBool(storage.MwiEnabled))
	log.InfoH2("External Email: %s", renderString(storage.ExternalEmail))
	log.InfoH2("Email Copy Enabled: %s", renderBool(emailCopy.Enabled))
	log.InfoH2("Email Copy ID: %s", renderString(emailCopy.EmailID))
}

// Run executes the report. Rows without a personid are skipped with a
// warning; rows whose fetch fails are skipped after the client has
// logged the failure. The report file is created only after the input
// parsed, and always holds exactly one header row.
func (l *Lister) Run() error {
	roster, err := csvfile.ReadRoster(l.InputPath)
	if err != nil {
		return err
	}

	out, err := csvfile.NewWriter(l.OutputPath, csvfile.VoicemailHeader)
	if err != nil {
		return err
	}

	for i := 0; i < roster.Len(); i++ {
		rec := roster.Record(i)
		if rec.PersonID == "" {
			log.Warn("Skipping missing personid for %s", rec.Email)
			continue
		}

		config, err := l.API.GetVoicemail(rec.PersonID)
		if err != nil {
			// Already logged by the client; move on to the next row
			continue
		}

		if err := out.Write(outputRow(rec, config)); err != nil {
			out.Close() //nolint:errcheck,gosec // write error takes precedence
			return err
		}
		printSummary(rec, config)
	}

	if err := out.Close(); err != nil {
		return err
	}
	log.Info("All results written to %s", l.OutputPath)
	return nil
}
