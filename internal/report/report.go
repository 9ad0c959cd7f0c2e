package report

// Package report renders account summaries for output.
import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tinoosan/txnledger/internal/ledger"
)

// Header is the fixed column order of every report.
var Header = []string{"client", "available", "held", "total", "locked"}

// Writer renders summaries to w.
type Writer interface {
	Write(w io.Writer, sums []ledger.AccountSummary) error
}

// ForFormat returns the writer for a config format name.
func ForFormat(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "csv":
		return CSV{}, nil
	case "xlsx":
		return XLSX{}, nil
	case "pdf":
		return PDF{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Row renders one summary as text fields in Header order.
func Row(s ledger.AccountSummary) []string {
	return []string{
		strconv.FormatUint(uint64(s.Client), 10),
		ledger.FormatAmount(s.Available),
		ledger.FormatAmount(s.Held),
		ledger.FormatAmount(s.Total),
		strconv.FormatBool(s.Locked),
	}
}

// CSV writes comma-delimited text with a header row.
type CSV struct{}

func (CSV) Write(w io.Writer, sums []ledger.AccountSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, s := range sums {
		if err := cw.Write(Row(s)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
