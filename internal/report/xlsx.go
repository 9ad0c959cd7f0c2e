package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tinoosan/txnledger/internal/ledger"
)

const accountsSheet = "Accounts"

// XLSX writes a workbook with a single Accounts sheet. Amounts are written as
// text so the four fractional digits survive spreadsheet number formatting.
// The locked column keeps the literal true/false of the CSV report.
type XLSX struct{}

func (XLSX) Write(w io.Writer, sums []ledger.AccountSummary) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", accountsSheet); err != nil {
		return err
	}
	for col, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(accountsSheet, cell, h); err != nil {
			return err
		}
	}
	for i, s := range sums {
		row := i + 2
		if err := f.SetCellValue(accountsSheet, fmt.Sprintf("A%d", row), int(s.Client)); err != nil {
			return err
		}
		for col, v := range Row(s)[1:] {
			cell, _ := excelize.CoordinatesToCellName(col+2, row)
			if err := f.SetCellStr(accountsSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
