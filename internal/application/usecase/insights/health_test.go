package insights

import (
	"testing"

	"github.com/shopledger/backend/internal/domain/entity"
)

func TestHealthScore(t *testing.T) {
	t.Run("thriving shop scores 85", func(t *testing.T) {
		// One 40-unit sale per day for 25 days saturates activity. The
		// extra 160 sale today makes the current week match the previous
		// week exactly, so growth sits at the neutral 50. The single
		// expense leaves a 40% lifetime margin, saturating profitability.
		sales := make([]*entity.Sale, 0, 26)
		for d := 0; d < 25; d++ {
			sales = append(sales, testSale(t, "Bread", 1, 40, testNow.AddDate(0, 0, -d)))
		}
		sales = append(sales, testSale(t, "Cake", 1, 160, testNow))
		expenses := []*entity.Expense{
			testExpense(t, "Rent", entity.ExpenseCategoryRent, 696, testNow),
		}

		health := HealthScore(testNow, sales, expenses)

		if health.GrowthScore != 50 {
			t.Errorf("expected growth 50, got %v", health.GrowthScore)
		}
		if health.ProfitScore != 100 {
			t.Errorf("expected profit 100, got %v", health.ProfitScore)
		}
		if health.ActivityScore != 100 {
			t.Errorf("expected activity 100, got %v", health.ActivityScore)
		}
		if health.Score != 85 {
			t.Errorf("expected score 85, got %d", health.Score)
		}
		if health.Status != "Excellent & Growing" {
			t.Errorf("expected Excellent & Growing, got %q", health.Status)
		}
	})

	t.Run("dormant unprofitable shop is critical", func(t *testing.T) {
		sales := []*entity.Sale{
			testSale(t, "Bread", 1, 100, testNow.AddDate(0, 0, -40)),
		}
		expenses := []*entity.Expense{
			testExpense(t, "Rent", entity.ExpenseCategoryRent, 250, testNow.AddDate(0, 0, -40)),
		}

		health := HealthScore(testNow, sales, expenses)

		if health.GrowthScore != 50 {
			t.Errorf("expected neutral growth, got %v", health.GrowthScore)
		}
		if health.ProfitScore != 0 {
			t.Errorf("expected profit floor, got %v", health.ProfitScore)
		}
		if health.ActivityScore != 0 {
			t.Errorf("expected zero activity, got %v", health.ActivityScore)
		}
		if health.Score != 15 {
			t.Errorf("expected score 15, got %d", health.Score)
		}
		if health.Status != "Critical Condition" {
			t.Errorf("expected Critical Condition, got %q", health.Status)
		}
	})

	t.Run("no sales means no data, even with expenses", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Rent", entity.ExpenseCategoryRent, 500, testNow),
		}

		health := HealthScore(testNow, nil, expenses)

		if health.Status != "No Data" {
			t.Errorf("expected No Data, got %q", health.Status)
		}
		if health.Score != 0 {
			t.Errorf("expected score 0, got %d", health.Score)
		}
	})
}

func TestHealthStatus(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{100, "Excellent & Growing"},
		{80, "Excellent & Growing"},
		{79, "Good & Healthy"},
		{60, "Good & Healthy"},
		{59, "Needs Attention"},
		{40, "Needs Attention"},
		{39, "Critical Condition"},
		{0, "Critical Condition"},
	}

	for _, tc := range cases {
		if got := healthStatus(tc.score); got != tc.want {
			t.Errorf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}
