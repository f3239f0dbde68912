package usecases

import (
	"context"
	"fmt"
	"strconv"

	"loanflow.backend/internal/domain/entities"
)

// ExportUsecase turns core data into the flat, stably-headed records
// the tabular export sink expects. File materialization itself is the
// sink's concern.
type ExportUsecase struct {
	engine       *AmortizationEngine
	disbursement *DisbursementUsecase
	sink         ExportSink
}

func NewExportUsecase(engine *AmortizationEngine, disbursement *DisbursementUsecase, sink ExportSink) *ExportUsecase {
	return &ExportUsecase{
		engine:       engine,
		disbursement: disbursement,
		sink:         sink,
	}
}

// ExportFile carries the materialized bytes plus the filename the
// operator's browser should save them under.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

const spreadsheetContentType = "application/vnd.ms-excel"

// AmortizationSchedule exports the full schedule for the three inputs.
func (uc *ExportUsecase) AmortizationSchedule(ctx context.Context, in entities.AmortizationInput) (*ExportFile, error) {
	rows, err := uc.engine.Schedule(in)
	if err != nil {
		return nil, err
	}

	headers := []string{"Month", "Principal Paid", "Interest Paid", "Outstanding Balance"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			strconv.Itoa(r.Month),
			money(r.Principal),
			money(r.Interest),
			money(r.Balance),
		})
	}

	data, err := uc.sink.Write("EMI Schedule", headers, records)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		FileName:    fmt.Sprintf("emi-schedule-%dm.xls", in.TermMonths),
		ContentType: spreadsheetContentType,
		Data:        data,
	}, nil
}

// CompletedReport exports the completed-disbursement collection,
// optionally narrowed by the same substring filter the screens use.
func (uc *ExportUsecase) CompletedReport(ctx context.Context, query string) (*ExportFile, error) {
	recs, err := uc.disbursement.ListCompleted(ctx, query)
	if err != nil {
		return nil, err
	}

	headers := []string{"Lead ID", "Lead Name", "Sales Executive", "Bank", "Status", "Payment Amount", "UTR"}
	records := make([][]string, 0, len(recs))
	for _, r := range recs {
		records = append(records, []string{
			r.LeadID,
			r.LeadName,
			r.SalesExecutive,
			r.BankName,
			r.Status,
			r.PaymentAmount.String,
			r.UTR.String,
		})
	}

	data, err := uc.sink.Write("Completed Disbursements", headers, records)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		FileName:    "completed-disbursements.xls",
		ContentType: spreadsheetContentType,
		Data:        data,
	}, nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
