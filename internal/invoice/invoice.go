package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultTitle is printed on every bill unless overridden in config.
const DefaultTitle = "KREVOS – MEET YOUR CRAVINGS"

// Bill carries everything the printable invoice shows. Total is
// price × qty; Packaging is displayed as a separate note and is NOT part
// of the grand total line (the menu price does not include packaging
// either — the mismatch is an accepted display quirk, pinned in tests).
type Bill struct {
	Title     string
	Dish      string
	Qty       int
	UnitPrice float64
	Total     float64
	Packaging float64
	IssuedAt  time.Time
}

// Render produces the invoice as an xlsx document: header block,
// timestamp, one line-item table, packaging note and grand total.
func Render(b Bill) ([]byte, error) {
	title := b.Title
	if title == "" {
		title = DefaultTitle
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	lines := [][]interface{}{
		{title},
		{b.IssuedAt.Format("2006-01-02 15:04")},
		{},
		{"Item", "Qty", "Unit Price", "Total"},
		{b.Dish, b.Qty, b.UnitPrice, b.Total},
		{},
		{fmt.Sprintf("Packaging: %v Tk", b.Packaging)},
		{fmt.Sprintf("Grand Total: %v Tk", b.Total)},
	}
	for i, vals := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return nil, err
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename names the artifact after the moment the bill was issued.
func Filename(t time.Time) string {
	return fmt.Sprintf("invoice_%d.xlsx", t.Unix())
}
