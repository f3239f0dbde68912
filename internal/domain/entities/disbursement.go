package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// DisbursementType distinguishes a fresh disbursement from a part
// (tranche) disbursement of an already sanctioned loan.
type DisbursementType string

const (
	DisbursementNew  DisbursementType = "New"
	DisbursementPart DisbursementType = "Part"
)

// ReadinessFlag names one boolean sub-condition tracked per case.
// Flags are independent; the coordinator toggles them in any order.
type ReadinessFlag string

const (
	FlagHardCopy             ReadinessFlag = "hardCopy"
	FlagVerificationInitiate ReadinessFlag = "verificationInitiate"
	FlagScan                 ReadinessFlag = "scan"
	FlagRaas                 ReadinessFlag = "raas"
	FlagRlms                 ReadinessFlag = "rlms"
	FlagCod                  ReadinessFlag = "cod"
	FlagPoAssigned           ReadinessFlag = "poAssigned"
	FlagIncome               ReadinessFlag = "income"
	FlagLnt                  ReadinessFlag = "lnt"
	FlagAppointmentFixed     ReadinessFlag = "appointmentFixed"
	FlagDocumentation        ReadinessFlag = "documentation"
)

// ReadinessFlags lists every flag in display order.
var ReadinessFlags = []ReadinessFlag{
	FlagHardCopy,
	FlagVerificationInitiate,
	FlagScan,
	FlagRaas,
	FlagRlms,
	FlagCod,
	FlagPoAssigned,
	FlagIncome,
	FlagLnt,
	FlagAppointmentFixed,
	FlagDocumentation,
}

// ValidReadinessFlag reports whether f is a defined flag.
func ValidReadinessFlag(f ReadinessFlag) bool {
	for _, known := range ReadinessFlags {
		if known == f {
			return true
		}
	}
	return false
}

// ScheduleField names one of the independently settable case dates.
type ScheduleField string

const (
	FieldPostSanctionDate  ScheduleField = "postSanctionDate"
	FieldAppointmentDate   ScheduleField = "appointmentDate"
	FieldDocumentationDate ScheduleField = "documentationDate"
)

// MonetaryField names one of the operator-entered free-text amounts.
type MonetaryField string

const (
	FieldSanctionAmt      MonetaryField = "sanctionAmt"
	FieldDisbursementDone MonetaryField = "disbursementDone"
	FieldUTR              MonetaryField = "utr"
)

// AppointmentSlots is the fixed set of bookable appointment times.
var AppointmentSlots = []string{
	"10:00 AM",
	"11:30 AM",
	"01:00 PM",
	"02:30 PM",
	"04:00 PM",
	"05:30 PM",
}

// ValidAppointmentSlot reports whether slot is a bookable time.
func ValidAppointmentSlot(slot string) bool {
	for _, s := range AppointmentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// BankDocLabels is the usual set of bank-side verification documents a
// coordinator can mark outstanding on a case. These are distinct from
// the borrower KYC uploads.
var BankDocLabels = []string{"ROV", "Legal", "Technical", "26AS", "ITR"}

// DisbursementCase is a pending disbursement-tracking record. A lead
// exists in at most one of the pending and completed collections.
type DisbursementCase struct {
	LeadID           string           `json:"leadId"`
	LeadName         string           `json:"leadName"`
	SalesExecutive   string           `json:"salesExecutive"`
	BankName         string           `json:"bankName"`
	DisbursementType DisbursementType `json:"disbursementType"`

	// Requested amount is supplied at intake and immutable afterwards.
	// Whole rupees; drives the dual-reviewer verification threshold.
	RequestedAmount int64 `json:"requestedAmount"`

	HardCopy             bool `json:"hardCopy"`
	VerificationInitiate bool `json:"verificationInitiate"`
	Scan                 bool `json:"scan"`
	Raas                 bool `json:"raas"`
	Rlms                 bool `json:"rlms"`
	Cod                  bool `json:"cod"`
	PoAssigned           bool `json:"poAssigned"`
	Income               bool `json:"income"`
	Lnt                  bool `json:"lnt"`
	AppointmentFixed     bool `json:"appointmentFixed"`
	Documentation        bool `json:"documentation"`

	// Bank-side verification documents still outstanding. Empty is a
	// valid terminal state ("resolved") distinct from never set.
	PendingDocs []string `json:"pendingDocs"`

	PostSanctionDate  null.Time   `json:"postSanctionDate,omitempty"`
	AppointmentDate   null.Time   `json:"appointmentDate,omitempty"`
	AppointmentTime   null.String `json:"appointmentTime,omitempty"`
	DocumentationDate null.Time   `json:"documentationDate,omitempty"`

	// Operator-entered free text; validated, if at all, before finalize
	// by an external collaborator.
	SanctionAmt      null.String `json:"sanctionAmt,omitempty"`
	DisbursementDone null.String `json:"disbursementDone,omitempty"`
	UTR              null.String `json:"utr,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Flag returns the value of the named readiness flag.
func (c *DisbursementCase) Flag(f ReadinessFlag) bool {
	switch f {
	case FlagHardCopy:
		return c.HardCopy
	case FlagVerificationInitiate:
		return c.VerificationInitiate
	case FlagScan:
		return c.Scan
	case FlagRaas:
		return c.Raas
	case FlagRlms:
		return c.Rlms
	case FlagCod:
		return c.Cod
	case FlagPoAssigned:
		return c.PoAssigned
	case FlagIncome:
		return c.Income
	case FlagLnt:
		return c.Lnt
	case FlagAppointmentFixed:
		return c.AppointmentFixed
	case FlagDocumentation:
		return c.Documentation
	}
	return false
}

// CompletedStatus is the only status a completed record carries.
const CompletedStatus = "Completed"

// CompletedDisbursement is the narrowed record a case collapses into
// when finalized. The readiness flags are deliberately discarded.
type CompletedDisbursement struct {
	LeadID         string      `json:"leadId"`
	LeadName       string      `json:"leadName"`
	SalesExecutive string      `json:"salesExecutive"`
	BankName       string      `json:"bankName"`
	Status         string      `json:"status"`
	PaymentAmount  null.String `json:"paymentAmount,omitempty"`
	UTR            null.String `json:"utr,omitempty"`
	CompletedAt    time.Time   `json:"completedAt"`
}
