package schemas

type OverviewSummary struct {
	TotalEvents     int64            `json:"total_events"`
	ByStatus        map[string]int64 `json:"by_status"`
	ByTimelinePhase map[string]int64 `json:"by_timeline_phase"`
}

type FinancialSummary struct {
	TotalSavingsTarget      float64 `json:"total_savings_target"`
	TotalAmountSaved        float64 `json:"total_amount_saved"`
	FullyFundedEvents       int64   `json:"fully_funded_events"`
	UpcomingFinancialEvents int64   `json:"upcoming_financial_events"`
	NextYears               int     `json:"next_years"`
}
