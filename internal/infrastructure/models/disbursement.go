package models

import (
	"time"
)

// PendingDisbursement is the gorm model backing a pending
// entities.DisbursementCase. PendingDocs is stored as a JSON array so
// order survives the round trip.
type PendingDisbursement struct {
	LeadID           string `gorm:"primary_key"`
	LeadName         string `gorm:"not null"`
	SalesExecutive   string
	BankName         string
	DisbursementType string `gorm:"not null"`
	RequestedAmount  int64  `gorm:"not null"`

	HardCopy             bool `gorm:"not null;default:false"`
	VerificationInitiate bool `gorm:"not null;default:false"`
	Scan                 bool `gorm:"not null;default:false"`
	Raas                 bool `gorm:"not null;default:false"`
	Rlms                 bool `gorm:"not null;default:false"`
	Cod                  bool `gorm:"not null;default:false"`
	PoAssigned           bool `gorm:"not null;default:false"`
	Income               bool `gorm:"not null;default:false"`
	Lnt                  bool `gorm:"not null;default:false"`
	AppointmentFixed     bool `gorm:"not null;default:false"`
	Documentation        bool `gorm:"not null;default:false"`

	PendingDocs string

	PostSanctionDate  *time.Time
	AppointmentDate   *time.Time
	AppointmentTime   *string
	DocumentationDate *time.Time

	SanctionAmt      *string
	DisbursementDone *string
	Utr              *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (PendingDisbursement) TableName() string {
	return "pending_disbursements"
}

// CompletedDisbursement is the gorm model backing the narrowed record a
// finalized case collapses into.
type CompletedDisbursement struct {
	LeadID         string `gorm:"primary_key"`
	LeadName       string `gorm:"not null"`
	SalesExecutive string
	BankName       string
	Status         string `gorm:"not null"`
	PaymentAmount  *string
	Utr            *string
	CompletedAt    time.Time
	CreatedAt      time.Time
}

// TableName overrides the table name
func (CompletedDisbursement) TableName() string {
	return "completed_disbursements"
}
