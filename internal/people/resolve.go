// Package people fills in Webex person identifiers for a roster of
// email addresses.
package people

import (
	"fmt"
	"time"

	"github.com/dannywalker-afni-com/Wx/internal/csvfile"
	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/wxapi"
)

// Markers written into the personid column when a lookup does not
// produce an id. Downstream commands treat these rows as unusable.
const (
	NotFoundMarker     = "NOT_FOUND"
	ConnectErrorMarker = "ERROR_CONNECT"
)

func errorMarker(statusCode int) string {
	return fmt.Sprintf("ERROR_%d", statusCode)
}

// Resolver rewrites the roster file in place, filling the personid
// column for every row that still lacks one.
type Resolver struct {
	API   *wxapi.Client
	Path  string
	Pause time.Duration
}

// Run resolves ids row by row and atomically rewrites the roster.
// Rows that already hold an id are left untouched. Lookup failures
// are recorded as markers so a re-run can pick them out.
func (r *Resolver) Run() error {
	roster, err := csvfile.ReadRoster(r.Path)
	if err != nil {
		return err
	}
	if !roster.HasColumn("email") {
		return werrors.Wrap(werrors.ErrMissingHeader, "roster must contain header: email")
	}
	roster.EnsurePersonIDColumn()

	for i := 0; i < roster.Len(); i++ {
		rec := roster.Record(i)
		if rec.Email == "" {
			continue
		}
		if rec.PersonID != "" {
			log.Info("Skipping %s (already has ID)", rec.Email)
			continue
		}

		people, err := r.API.ListPeople(rec.Email)
		switch {
		case err != nil:
			var apiErr *wxapi.APIError
			if werrors.As(err, &apiErr) {
				log.Error("API error %d for %s", apiErr.StatusCode, rec.Email)
				roster.SetPersonID(i, errorMarker(apiErr.StatusCode))
			} else {
				log.Error("%s: %v", rec.Email, err)
				roster.SetPersonID(i, ConnectErrorMarker)
			}
		case len(people) == 0:
			log.Warn("No match for %s", rec.Email)
			roster.SetPersonID(i, NotFoundMarker)
		default:
			log.InfoH2("Found %s -> %s", rec.Email, people[0].Id)
			roster.SetPersonID(i, people[0].Id)
		}

		if r.Pause > 0 {
			time.Sleep(r.Pause)
		}
	}

	if err := roster.WriteAtomic(r.Path); err != nil {
		return err
	}
	log.Info("Finished updating %s with person IDs", r.Path)
	return nil
}
