package adapter

// ReportProduct is one ranked product row in the weekly report.
type ReportProduct struct {
	Name     string
	Quantity int
	Revenue  string
}

// WeeklyReportData contains data for the weekly report email template.
type WeeklyReportData struct {
	OwnerName        string
	ShopName         string
	Currency         string
	WeekStart        string
	WeekEnd          string
	WeeklySales      string
	WeeklyExpenses   string
	WeeklyChange     string
	HealthScore      int
	HealthStatus     string
	TopProducts      []ReportProduct
	BusiestDay       string
	SlowestDay       string
	ForecastNextWeek string
	TopExpense       string
	TopExpenseAmount string
}

// ReportRenderer renders the weekly report email bodies.
type ReportRenderer interface {
	// RenderWeeklyReport renders the HTML and plain-text versions of
	// the weekly report email.
	RenderWeeklyReport(data WeeklyReportData) (html string, text string, err error)
}
