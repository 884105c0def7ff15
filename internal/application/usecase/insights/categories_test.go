package insights

import (
	"testing"

	"github.com/shopledger/backend/internal/domain/entity"
)

func TestExpenseBreakdown(t *testing.T) {
	t.Run("sums per category and sorts by value descending", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Shop rent", entity.ExpenseCategoryRent, 500, testNow),
			testExpense(t, "Electricity", entity.ExpenseCategoryUtilities, 200, testNow),
			testExpense(t, "Storage rent", entity.ExpenseCategoryRent, 100, testNow),
		}

		breakdown := ExpenseBreakdown(expenses)
		if len(breakdown) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(breakdown))
		}
		if breakdown[0].Name != "Rent" {
			t.Errorf("expected Rent first, got %q", breakdown[0].Name)
		}
		assertDecimal(t, breakdown[0].Value, 600)
		if breakdown[1].Name != "Utilities" {
			t.Errorf("expected Utilities second, got %q", breakdown[1].Name)
		}
		assertDecimal(t, breakdown[1].Value, 200)
	})

	t.Run("tied categories keep first-appearance order", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Fuel", entity.ExpenseCategoryTransport, 300, testNow),
			testExpense(t, "Wages", entity.ExpenseCategorySalaries, 300, testNow),
		}

		breakdown := ExpenseBreakdown(expenses)
		if breakdown[0].Name != "Transport" || breakdown[1].Name != "Salaries" {
			t.Errorf("unexpected tie order: %q then %q", breakdown[0].Name, breakdown[1].Name)
		}
	})

	t.Run("no expenses yields an empty distribution", func(t *testing.T) {
		if got := ExpenseBreakdown(nil); len(got) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(got))
		}
	})
}
