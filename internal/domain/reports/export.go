package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DailyWorkbook renders a daily report as an xlsx document: income
// table, expense table, totals and net profit.
func DailyWorkbook(d *Daily) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	row := 1
	if err := setRow(f, sheet, row, []interface{}{fmt.Sprintf("Daily Report %s", d.Date)}); err != nil {
		return nil, err
	}
	row += 2

	if err := setRow(f, sheet, row, []interface{}{"Income"}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Date", "Dish", "Qty", "Total"}); err != nil {
		return nil, err
	}
	row++
	for _, s := range d.Income {
		if err := setRow(f, sheet, row, []interface{}{s.Date, s.Dish, s.Qty, s.Total}); err != nil {
			return nil, err
		}
		row++
	}
	row++

	if err := setRow(f, sheet, row, []interface{}{"Expenses"}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Date", "Category", "Amount", "Note"}); err != nil {
		return nil, err
	}
	row++
	for _, e := range d.Expenses {
		if err := setRow(f, sheet, row, []interface{}{e.Date, e.Category, e.Amount, e.Note}); err != nil {
			return nil, err
		}
		row++
	}
	row++

	if err := setRow(f, sheet, row, []interface{}{"Income Total", d.IncomeTotal}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Expense Total", d.ExpenseTotal}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Net Profit", d.NetProfit}); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MonthlyWorkbook renders a monthly report as an xlsx document.
func MonthlyWorkbook(m *Monthly) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	row := 1
	if err := setRow(f, sheet, row, []interface{}{fmt.Sprintf("Monthly Report %s", m.Month)}); err != nil {
		return nil, err
	}
	row += 2

	if err := setRow(f, sheet, row, []interface{}{"Income"}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Date", "Dish", "Qty", "Total"}); err != nil {
		return nil, err
	}
	row++
	for _, s := range m.Income {
		if err := setRow(f, sheet, row, []interface{}{s.Date, s.Dish, s.Qty, s.Total}); err != nil {
			return nil, err
		}
		row++
	}
	row++

	if err := setRow(f, sheet, row, []interface{}{"Expenses"}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Date", "Category", "Amount", "Note"}); err != nil {
		return nil, err
	}
	row++
	for _, e := range m.Expenses {
		if err := setRow(f, sheet, row, []interface{}{e.Date, e.Category, e.Amount, e.Note}); err != nil {
			return nil, err
		}
		row++
	}
	row++

	if err := setRow(f, sheet, row, []interface{}{"Income Total", m.IncomeTotal}); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, sheet, row, []interface{}{"Expense Total", m.ExpenseTotal}); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
