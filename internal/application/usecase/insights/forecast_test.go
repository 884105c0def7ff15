package insights

import (
	"testing"

	"github.com/shopledger/backend/internal/domain/entity"
)

func TestForecastSales(t *testing.T) {
	t.Run("fewer than seven sale-days yields a zero forecast", func(t *testing.T) {
		sales := make([]*entity.Sale, 0, 5)
		for i := 0; i < 5; i++ {
			sales = append(sales, testSale(t, "Bread", 1, 100, testNow))
		}

		forecast := ForecastSales(sales)
		assertDecimal(t, forecast.NextDay, 0)
		assertDecimal(t, forecast.NextWeek, 0)
	})

	t.Run("averages the seven most recent sale-days", func(t *testing.T) {
		sales := make([]*entity.Sale, 0, 10)
		// Ten consecutive days; the three oldest carry large totals that
		// must not leak into the forecast.
		for i := 0; i < 10; i++ {
			price := 70.0
			if i >= 7 {
				price = 10_000
			}
			sales = append(sales, testSale(t, "Bread", 1, price, testNow.AddDate(0, 0, -i)))
		}

		forecast := ForecastSales(sales)
		assertDecimal(t, forecast.NextDay, 70)
		assertDecimal(t, forecast.NextWeek, 490)
	})

	t.Run("multiple sales on one day count as one sale-day", func(t *testing.T) {
		sales := make([]*entity.Sale, 0, 12)
		for i := 0; i < 6; i++ {
			day := testNow.AddDate(0, 0, -i)
			sales = append(sales, testSale(t, "Bread", 1, 40, day))
			sales = append(sales, testSale(t, "Milk", 1, 30, day))
		}

		// Six distinct days despite twelve sales.
		forecast := ForecastSales(sales)
		assertDecimal(t, forecast.NextDay, 0)
		assertDecimal(t, forecast.NextWeek, 0)
	})

	t.Run("gaps between sale-days do not matter", func(t *testing.T) {
		sales := make([]*entity.Sale, 0, 7)
		for i := 0; i < 7; i++ {
			sales = append(sales, testSale(t, "Bread", 1, 35, testNow.AddDate(0, 0, -i*3)))
		}

		forecast := ForecastSales(sales)
		assertDecimal(t, forecast.NextDay, 35)
		assertDecimal(t, forecast.NextWeek, 245)
	})
}
