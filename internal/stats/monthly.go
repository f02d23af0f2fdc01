package stats

import (
	"cmp"
	"strings"
	"time"

	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// CategoryTotal is the sum of all records of a category in a month.
type CategoryTotal struct {
	Category   string          `json:"category" example:"食費"`
	Emoji      string          `json:"emoji" example:"🍽️"`
	Amount     int64           `json:"amount" example:"32000"`
	Percentage decimal.Decimal `json:"percentage" swaggertype:"string" example:"45.71"`
}

// MonthlyStats are the statistics for all records of a month, regardless
// of their type.
type MonthlyStats struct {
	Month        types.Month     `json:"month" swaggertype:"string" example:"2024-05"`
	Total        int64           `json:"total" example:"70000"`
	Count        int             `json:"count" example:"23"`
	AverageDaily decimal.Decimal `json:"averageDaily" swaggertype:"string" example:"4666.67"`
	Max          int64           `json:"max" example:"12000"`
	Categories   []CategoryTotal `json:"categories"`
}

// Summary is the income and expense balance of a month.
type Summary struct {
	Month   types.Month `json:"month" swaggertype:"string" example:"2024-05"`
	Income  int64       `json:"income" example:"250000"`
	Expense int64       `json:"expense" example:"70000"`
	Net     int64       `json:"net" example:"180000"`
}

// Total is the sum of all amounts.
func Total(records []models.Record) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}

	return total
}

// Signed returns the amount as displayed: positive for income,
// negative for expenses.
func Signed(r models.Record) int64 {
	if r.Type == models.TypeIncome {
		return r.Amount
	}
	return -r.Amount
}

// InMonth returns all records dated in the same month and year as now.
func InMonth(records []models.Record, now time.Time) []models.Record {
	month := types.MonthOf(now)

	result := make([]models.Record, 0, len(records))
	for _, r := range records {
		if month.Contains(r.Date) {
			result = append(result, r)
		}
	}

	return result
}

// Monthly calculates the statistics for the month of now.
func Monthly(records []models.Record, now time.Time) MonthlyStats {
	monthly := InMonth(records, now)

	stats := MonthlyStats{
		Month:        types.MonthOf(now),
		Total:        Total(monthly),
		Count:        len(monthly),
		AverageDaily: decimal.Zero,
		Categories:   []CategoryTotal{},
	}

	sums := make(map[string]int64)
	for _, r := range monthly {
		if _, ok := sums[r.Category]; !ok {
			stats.Categories = append(stats.Categories, CategoryTotal{Category: r.Category, Emoji: models.Emoji(r.Category)})
		}
		sums[r.Category] += r.Amount

		if r.Amount > stats.Max {
			stats.Max = r.Amount
		}
	}

	total := decimal.NewFromInt(stats.Total)
	for i := range stats.Categories {
		c := &stats.Categories[i]
		c.Amount = sums[c.Category]
		c.Percentage = percentage(c.Amount, total)
	}

	slices.SortFunc(stats.Categories, func(a, b CategoryTotal) int {
		if a.Amount != b.Amount {
			return cmp.Compare(b.Amount, a.Amount)
		}
		return strings.Compare(a.Category, b.Category)
	})

	stats.AverageDaily = total.DivRound(decimal.NewFromInt(int64(now.Day())), 2)

	return stats
}

func percentage(amount int64, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return decimal.NewFromInt(amount).Mul(decimal.NewFromInt(100)).DivRound(total, 2)
}

// Balance sums income and expenses of the month of now separately.
func Balance(records []models.Record, now time.Time) Summary {
	summary := Summary{Month: types.MonthOf(now)}

	for _, r := range InMonth(records, now) {
		switch r.Type {
		case models.TypeIncome:
			summary.Income += r.Amount
		case models.TypeExpense:
			summary.Expense += r.Amount
		}
	}

	summary.Net = summary.Income - summary.Expense
	return summary
}
