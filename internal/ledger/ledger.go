// Package ledger holds the bookkeeping arithmetic: transaction tax and
// totals, signed debt deltas, employee running balances and monthly
// summaries.
//
// All amounts are computed with shopspring/decimal and rounded to two
// fractional digits, half away from zero. Float inputs are converted through
// their shortest decimal representation first, so 2.675 rounds to 2.68 and
// -2.675 to -2.68. Functions here never touch the store.
package ledger

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/models"
)

const moneyPlaces = 2

// MaxAmount is the largest base or debt amount accepted. Sums of bounded
// amounts stay far inside float64's exact-cents range.
const MaxAmount = 1e12

var hundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func toFloat(d decimal.Decimal) float64 {
	return round2(d).InexactFloat64()
}

// Round2 rounds v to two fractional digits, half away from zero.
func Round2(v float64) float64 {
	return toFloat(decimal.NewFromFloat(v))
}

// ComputeTax returns round2(base * ratePercent / 100).
func ComputeTax(base, ratePercent float64) float64 {
	return toFloat(tax(decimal.NewFromFloat(base), ratePercent))
}

func tax(base decimal.Decimal, ratePercent float64) decimal.Decimal {
	return round2(base.Mul(decimal.NewFromFloat(ratePercent)).Div(hundred))
}

// ValidateAmount rejects NaN, infinities and values outside [0, MaxAmount].
func ValidateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxAmount {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("%s must be between 0 and %.0f", field, MaxAmount))
	}
	return nil
}

// ComputeTransactionTotals selects the rate for txType from settings and
// returns the rounded tax and total. A nil settings value or a zero rate
// yields no tax. Out-of-range bases are rejected with INVALID_INPUT.
func ComputeTransactionTotals(base float64, txType models.TransactionType, settings *models.Settings) (float64, float64, error) {
	if err := ValidateAmount("base", base); err != nil {
		return 0, 0, err
	}
	b := decimal.NewFromFloat(base)
	t := tax(b, settings.RateFor(txType))
	return toFloat(t), toFloat(b.Add(t)), nil
}

// ComputeDebtDelta returns +amount for an advance and -amount for a repay.
func ComputeDebtDelta(amount float64, kind models.DebtKind) (float64, error) {
	if err := ValidateAmount("amount", amount); err != nil {
		return 0, err
	}
	a := decimal.NewFromFloat(amount)
	switch kind {
	case models.DebtKindAdvance:
		return toFloat(a), nil
	case models.DebtKindRepay:
		return toFloat(a.Neg()), nil
	}
	return 0, apperrors.ErrInvalidDebtKind
}

// DebtLine is a debt entry annotated with the employee's balance after it.
type DebtLine struct {
	models.Debt
	Balance float64 `json:"balance"`
}

// RunningBalances walks debts in the given order and attaches each
// employee's cumulative balance. Callers pass debts in chronological
// (date, created_at) order so every prefix sum is the balance at that point.
func RunningBalances(debts []models.Debt) []DebtLine {
	running := make(map[string]decimal.Decimal)
	lines := make([]DebtLine, 0, len(debts))
	for _, d := range debts {
		bal := running[d.Employee].Add(decimal.NewFromFloat(d.Delta))
		running[d.Employee] = bal
		lines = append(lines, DebtLine{Debt: d, Balance: toFloat(bal)})
	}
	return lines
}

// EmployeeBalance is the outstanding debt of one employee.
type EmployeeBalance struct {
	Employee string  `json:"employee"`
	Balance  float64 `json:"balance"`
	Entries  int     `json:"entries"`
}

// Balances sums deltas per employee, sorted by employee name.
func Balances(debts []models.Debt) []EmployeeBalance {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, d := range debts {
		sums[d.Employee] = sums[d.Employee].Add(decimal.NewFromFloat(d.Delta))
		counts[d.Employee]++
	}

	out := make([]EmployeeBalance, 0, len(sums))
	for emp, sum := range sums {
		out = append(out, EmployeeBalance{Employee: emp, Balance: toFloat(sum), Entries: counts[emp]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Employee < out[j].Employee })
	return out
}

// Totals groups the three amounts stored on a transaction.
type Totals struct {
	Base  float64 `json:"base"`
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

// MonthlySummary aggregates a month of transactions against the owner's
// settings.
type MonthlySummary struct {
	Month        string  `json:"month"`
	Currency     string  `json:"currency"`
	Income       Totals  `json:"income"`
	Expense      Totals  `json:"expense"`
	Net          float64 `json:"net"`
	ExpenseCap   float64 `json:"expense_cap"`
	CapRemaining float64 `json:"cap_remaining"`
	CapExceeded  bool    `json:"cap_exceeded"`
	Transactions int     `json:"transactions"`
}

type totalsAcc struct{ base, tax, total decimal.Decimal }

func (a *totalsAcc) add(tx models.Transaction) {
	a.base = a.base.Add(decimal.NewFromFloat(tx.BaseAmount))
	a.tax = a.tax.Add(decimal.NewFromFloat(tx.Tax))
	a.total = a.total.Add(decimal.NewFromFloat(tx.Total))
}

func (a *totalsAcc) totals() Totals {
	return Totals{Base: toFloat(a.base), Tax: toFloat(a.tax), Total: toFloat(a.total)}
}

// Summarize totals the stored amounts of the given transactions. The expense
// cap is compared against expense totals (tax included).
func Summarize(month string, txs []models.Transaction, settings *models.Settings) MonthlySummary {
	var income, expense totalsAcc
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			income.add(tx)
		case models.TransactionTypeExpense:
			expense.add(tx)
		}
	}

	summary := MonthlySummary{
		Month:        month,
		Income:       income.totals(),
		Expense:      expense.totals(),
		Net:          toFloat(income.total.Sub(expense.total)),
		Transactions: len(txs),
	}
	if settings != nil {
		limit := decimal.NewFromFloat(settings.MonthlyExpenseCap)
		summary.Currency = settings.Currency
		summary.ExpenseCap = toFloat(limit)
		summary.CapRemaining = toFloat(limit.Sub(expense.total))
		summary.CapExceeded = expense.total.GreaterThan(limit)
	}
	return summary
}
