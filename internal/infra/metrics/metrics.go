package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operator-action counters, visible on /metrics when enabled.
var (
	SalesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "krevos_sales_recorded_total",
		Help: "Bills generated.",
	})

	StockArrivals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "krevos_stock_arrivals_total",
		Help: "Inventory purchases recorded.",
	})

	ExpensesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "krevos_expenses_recorded_total",
		Help: "Expense rows appended, fixed daily costs included.",
	})
)
