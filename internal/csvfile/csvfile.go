// Package csvfile reads and writes the delimited roster files the wx
// commands operate on. Rows are resolved against the header once at
// parse time, so column lookups cannot silently hit a typo.
package csvfile

import (
	"encoding/csv"
	"os"
	"strings"

	werrors "github.com/dannywalker-afni-com/Wx/internal/errors"
)

// VoicemailHeader is the fixed column order of the voicemail report.
var VoicemailHeader = []string{
	"email", "personid", "enabled", "storageType", "mwiEnabled",
	"externalEmail", "emailCopyEnabled", "emailCopyId",
}

// Record is one roster row, already trimmed.
type Record struct {
	Email    string
	PersonID string
}

// Roster is a parsed roster file. The raw rows are kept so the file
// can be rewritten with all of its original columns intact.
type Roster struct {
	Header []string

	rows      [][]string
	emailIdx  int
	personIdx int
}

// headerIndex finds the first column whose name matches, ignoring
// case and surrounding whitespace. Returns -1 when absent.
func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// ReadRoster parses path into a Roster. The file must exist and carry
// a header row; `email` and `personid` columns are optional and read
// as empty strings when absent.
func ReadRoster(path string) (*Roster, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from a command flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, werrors.Wrap(werrors.ErrFileNotFound, path)
		}
		return nil, werrors.Wrapf(err, "opening %s", path)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	all, err := reader.ReadAll()
	if err != nil {
		return nil, werrors.Wrapf(err, "reading %s", path)
	}
	if len(all) == 0 {
		return nil, werrors.Wrap(werrors.ErrMissingHeader, path)
	}

	header := all[0]
	return &Roster{
		Header:    header,
		rows:      all[1:],
		emailIdx:  headerIndex(header, "email"),
		personIdx: headerIndex(header, "personid"),
	}, nil
}

// HasColumn reports whether the header names the column,
// case-insensitively.
func (r *Roster) HasColumn(name string) bool {
	return headerIndex(r.Header, name) >= 0
}

// Len returns the number of data rows.
func (r *Roster) Len() int {
	return len(r.rows)
}

func (r *Roster) field(row int, col int) string {
	if col < 0 || col >= len(r.rows[row]) {
		return ""
	}
	return strings.TrimSpace(r.rows[row][col])
}

// Record returns the typed view of data row i.
func (r *Roster) Record(i int) Record {
	return Record{
		Email:    r.field(i, r.emailIdx),
		PersonID: r.field(i, r.personIdx),
	}
}

// EnsurePersonIDColumn appends a personid column to the header when
// the file does not have one yet.
func (r *Roster) EnsurePersonIDColumn() {
	if r.personIdx >= 0 {
		return
	}
	r.Header = append(r.Header, "personid")
	r.personIdx = len(r.Header) - 1
}

// SetPersonID stores id into data row i, padding the row out to the
// personid column if the source row was short.
func (r *Roster) SetPersonID(i int, id string) {
	for len(r.rows[i]) <= r.personIdx {
		r.rows[i] = append(r.rows[i], "")
	}
	r.rows[i][r.personIdx] = id
}

// WriteAtomic rewrites the roster to path via a temp file and rename,
// so a crash mid-write cannot truncate the original.
func (r *Roster) WriteAtomic(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp) //nolint:gosec // G304: path comes from a command flag
	if err != nil {
		return werrors.Wrapf(err, "creating %s", tmp)
	}

	w := csv.NewWriter(f)
	if err := w.Write(r.Header); err != nil {
		f.Close() //nolint:errcheck,gosec
		return werrors.Wrap(err, "writing header")
	}
	for _, row := range r.rows {
		// Pad short rows so every record has the full column set
		for len(row) < len(r.Header) {
			row = append(row, "")
		}
		if err := w.Write(row); err != nil {
			f.Close() //nolint:errcheck,gosec
			return werrors.Wrap(err, "writing row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec
		return werrors.Wrap(err, "flushing rows")
	}
	if err := f.Close(); err != nil {
		return werrors.Wrapf(err, "closing %s", tmp)
	}
	return os.Rename(tmp, path)
}

// Writer appends rows to a freshly truncated CSV file. The header is
// written exactly once, at creation.
type Writer struct {
	f *os.File
	w *csv.Writer
}

// NewWriter creates (or truncates) path and writes the header row.
func NewWriter(path string, header []string) (*Writer, error) {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from a command flag
	if err != nil {
		return nil, werrors.Wrapf(err, "creating %s", path)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close() //nolint:errcheck,gosec
		return nil, werrors.Wrap(err, "writing header")
	}
	return &Writer{f: f, w: w}, nil
}

// Write appends one data row.
func (w *Writer) Write(row []string) error {
	return w.w.Write(row)
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close() //nolint:errcheck,gosec
		return werrors.Wrap(err, "flushing rows")
	}
	return w.f.Close()
}
