package reports

import (
	"context"

	"github.com/Spok95/krevos/internal/domain/expenses"
	"github.com/Spok95/krevos/internal/domain/sales"
)

type SalesSource interface {
	ListByDate(ctx context.Context, date string) ([]sales.Sale, error)
	ListByMonth(ctx context.Context, yearMonth string) ([]sales.Sale, error)
}

type ExpenseSource interface {
	ListByDate(ctx context.Context, date string) ([]expenses.Expense, error)
	ListByMonth(ctx context.Context, yearMonth string) ([]expenses.Expense, error)
}

// Daily is one day's income/expense view. Empty days report zeros.
type Daily struct {
	Date         string             `json:"date"`
	Income       []sales.Sale       `json:"income"`
	Expenses     []expenses.Expense `json:"expenses"`
	IncomeTotal  float64            `json:"income_total"`
	ExpenseTotal float64            `json:"expense_total"`
	NetProfit    float64            `json:"net_profit"`
}

// Monthly is the calendar-month variant, matched by date prefix.
type Monthly struct {
	Month        string             `json:"month"`
	Income       []sales.Sale       `json:"income"`
	Expenses     []expenses.Expense `json:"expenses"`
	IncomeTotal  float64            `json:"income_total"`
	ExpenseTotal float64            `json:"expense_total"`
}

type Service struct {
	sales    SalesSource
	expenses ExpenseSource
}

func New(sales SalesSource, expenses ExpenseSource) *Service {
	return &Service{sales: sales, expenses: expenses}
}

func (s *Service) Daily(ctx context.Context, date string) (*Daily, error) {
	income, err := s.sales.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	exp, err := s.expenses.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	d := Daily{Date: date, Income: income, Expenses: exp}
	for _, sl := range income {
		d.IncomeTotal += sl.Total
	}
	for _, e := range exp {
		d.ExpenseTotal += e.Amount
	}
	d.NetProfit = d.IncomeTotal - d.ExpenseTotal
	return &d, nil
}

func (s *Service) Monthly(ctx context.Context, yearMonth string) (*Monthly, error) {
	income, err := s.sales.ListByMonth(ctx, yearMonth)
	if err != nil {
		return nil, err
	}
	exp, err := s.expenses.ListByMonth(ctx, yearMonth)
	if err != nil {
		return nil, err
	}

	m := Monthly{Month: yearMonth, Income: income, Expenses: exp}
	for _, sl := range income {
		m.IncomeTotal += sl.Total
	}
	for _, e := range exp {
		m.ExpenseTotal += e.Amount
	}
	return &m, nil
}
