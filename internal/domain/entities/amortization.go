package entities

// AmortizationInput is the three interdependent financial inputs the
// reducing-balance engine derives everything else from.
type AmortizationInput struct {
	Principal     float64 `json:"principal" validate:"required,gt=0"`
	AnnualRatePct float64 `json:"annualRatePercent" validate:"required,gt=0"`
	TermMonths    int     `json:"termMonths" validate:"required,gt=0"`
}

// ScheduleRow is one month of a reducing-balance amortization schedule.
type ScheduleRow struct {
	Month     int     `json:"month"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// EMIRange bounds the on-screen EMI slider. It is derived from the
// computed EMI, never an independent input.
type EMIRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
