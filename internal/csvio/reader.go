package csvio

// Package csvio reads transaction rows from comma-delimited text.
import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/tinoosan/txnledger/internal/errs"
)

// Reader yields tokenized rows after the header line. Rows may have a
// varying number of fields; the ledger parser decides what is acceptable.
type Reader struct {
	r          *csv.Reader
	headerRead bool
}

// NewReader wraps src. The first record is treated as a header and skipped.
func NewReader(src io.Reader) *Reader {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return &Reader{r: r}
}

// Next returns the next data row and its 1-based line number. It returns
// io.EOF at the end of input. A malformed line yields an error wrapping
// errs.ErrUnparseable; the caller may keep reading after it.
func (r *Reader) Next() ([]string, int, error) {
	for {
		rec, err := r.r.Read()
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				if !r.headerRead {
					r.headerRead = true
					continue
				}
				return nil, pe.StartLine, fmt.Errorf("%w: %v", errs.ErrUnparseable, pe.Err)
			}
			return nil, 0, err
		}
		if !r.headerRead {
			r.headerRead = true
			continue
		}
		line, _ := r.r.FieldPos(0)
		return rec, line, nil
	}
}
