package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/domain/entity"
)

// testNow is a Wednesday afternoon; several tests depend on its
// position inside the week and month.
var testNow = time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC)

var testOwner = uuid.New()

func testSale(t *testing.T, item string, quantity int, price float64, at time.Time) *entity.Sale {
	t.Helper()
	return entity.NewSale(testOwner, item, quantity, decimal.NewFromFloat(price), "", at)
}

func testExpense(t *testing.T, name string, category entity.ExpenseCategory, amount float64, at time.Time) *entity.Expense {
	t.Helper()
	return entity.NewExpense(testOwner, name, category, decimal.NewFromFloat(amount), at)
}

func assertDecimal(t *testing.T, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("expected %v, got %s", want, got)
	}
}

func TestCompute_EmptySnapshot(t *testing.T) {
	bundle := Compute(testNow, nil, nil)

	if bundle.Health.Status != "No Data" {
		t.Errorf("expected No Data status, got %q", bundle.Health.Status)
	}
	if bundle.Health.Score != 0 {
		t.Errorf("expected zero score, got %d", bundle.Health.Score)
	}
	if len(bundle.TopProducts) != 0 {
		t.Errorf("expected no top products, got %d", len(bundle.TopProducts))
	}
	if len(bundle.SlowMovers) != 0 {
		t.Errorf("expected no slow movers, got %d", len(bundle.SlowMovers))
	}
	if bundle.PeakTimes.BusiestHour != "N/A" {
		t.Errorf("expected N/A busiest hour, got %q", bundle.PeakTimes.BusiestHour)
	}
	if !bundle.Forecast.NextDay.IsZero() || !bundle.Forecast.NextWeek.IsZero() {
		t.Error("expected zero forecast for empty snapshot")
	}
	if len(bundle.Trends.Chart) != 30 {
		t.Errorf("expected 30 chart points, got %d", len(bundle.Trends.Chart))
	}
}

func TestCompute_DoesNotMutateInputs(t *testing.T) {
	sale := testSale(t, "Soap", 2, 10, testNow)
	expense := testExpense(t, "March rent", entity.ExpenseCategoryRent, 500, testNow)
	sales := []*entity.Sale{sale}
	expenses := []*entity.Expense{expense}

	before := *sale
	Compute(testNow, sales, expenses)

	if sale.Total.Cmp(before.Total) != 0 || sale.Quantity != before.Quantity || !sale.Date.Equal(before.Date) {
		t.Error("engine mutated its sale input")
	}
}

func TestCompute_TopProductRevenueBound(t *testing.T) {
	sales := []*entity.Sale{
		testSale(t, "A", 1, 10, testNow),
		testSale(t, "B", 2, 20, testNow),
		testSale(t, "C", 3, 30, testNow),
		testSale(t, "D", 4, 40, testNow),
		testSale(t, "E", 5, 50, testNow),
		testSale(t, "F", 6, 60, testNow),
		testSale(t, "G", 7, 70, testNow),
	}

	gross := decimal.Zero
	for _, s := range sales {
		gross = gross.Add(s.Total)
	}

	ranked := decimal.Zero
	for _, p := range TopProducts(sales) {
		ranked = ranked.Add(p.Revenue)
	}

	if ranked.GreaterThan(gross) {
		t.Errorf("top product revenue %s exceeds gross sales %s", ranked, gross)
	}
}
