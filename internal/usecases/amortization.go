package usecases

import (
	"math"

	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/domain/errors"
)

// previewRows is how many schedule rows the quick on-screen preview
// shows.
const previewRows = 4

// AmortizationEngine converts (principal, annual rate, term) into an
// EMI and a month-by-month reducing-balance schedule. It is stateless
// and safe for concurrent use; schedules are recomputed on demand and
// never persisted.
type AmortizationEngine struct{}

func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{}
}

func validateInput(in entities.AmortizationInput) error {
	if in.Principal <= 0 || in.AnnualRatePct <= 0 || in.TermMonths <= 0 {
		return errors.ErrInvalidAmortizationInput
	}
	return nil
}

// ComputeEMI returns the equated monthly installment rounded to the
// nearest whole currency unit. The schedule is generated from this
// rounded value, so accumulated rounding drift in the balance column
// is expected and bounded, not a bug.
func (e *AmortizationEngine) ComputeEMI(in entities.AmortizationInput) (float64, error) {
	if err := validateInput(in); err != nil {
		return 0, err
	}

	monthlyRate := in.AnnualRatePct / 1200
	factor := math.Pow(1+monthlyRate, float64(in.TermMonths))
	emi := in.Principal * monthlyRate * factor / (factor - 1)
	return math.Round(emi), nil
}

// Schedule returns all termMonths rows. Non-final balances are not
// clamped; the final row absorbs the rounding drift and is clamped to
// not go negative.
func (e *AmortizationEngine) Schedule(in entities.AmortizationInput) ([]entities.ScheduleRow, error) {
	emi, err := e.ComputeEMI(in)
	if err != nil {
		return nil, err
	}

	monthlyRate := in.AnnualRatePct / 1200
	rows := make([]entities.ScheduleRow, in.TermMonths)
	balance := in.Principal

	for m := 1; m <= in.TermMonths; m++ {
		interest := balance * monthlyRate
		principal := emi - interest
		balance -= principal
		if m == in.TermMonths {
			balance = math.Max(0, balance)
		}
		rows[m-1] = entities.ScheduleRow{
			Month:     m,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		}
	}
	return rows, nil
}

// Preview returns the first min(4, termMonths) rows, bit-for-bit equal
// to the head of the full schedule.
func (e *AmortizationEngine) Preview(in entities.AmortizationInput) ([]entities.ScheduleRow, error) {
	rows, err := e.Schedule(in)
	if err != nil {
		return nil, err
	}
	if len(rows) > previewRows {
		rows = rows[:previewRows]
	}
	return rows, nil
}

// EMIRange derives the slider bounds [0.5*emi, 1.5*emi] from the
// computed EMI. The engine does not solve for principal, rate or term
// from a directly edited EMI.
func (e *AmortizationEngine) EMIRange(in entities.AmortizationInput) (entities.EMIRange, error) {
	emi, err := e.ComputeEMI(in)
	if err != nil {
		return entities.EMIRange{}, err
	}
	return entities.EMIRange{Min: 0.5 * emi, Max: 1.5 * emi}, nil
}
