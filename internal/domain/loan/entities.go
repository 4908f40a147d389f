package loan

import (
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusRepaid    Status = "repaid"
	StatusDefaulted Status = "defaulted"
)

type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID   string `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	Borrower string `gorm:"column:borrower;size:32;index:idx_loans_borrower;uniqueIndex:ux_loans_borrower_created" json:"borrower"`
	// Principal in credit tokens, fixed at creation
	Amount   uint64 `gorm:"column:amount" json:"amount"`
	TermDays uint16 `gorm:"column:term_days" json:"term_days"`
	// Creation instant, second granularity; part of the loan's identity
	CreatedUnix     int64     `gorm:"column:created_unix;uniqueIndex:ux_loans_borrower_created" json:"created_unix"`
	RepaidAmount    uint64    `gorm:"column:repaid_amount" json:"repaid_amount"`
	Status          Status    `gorm:"column:status;size:16;default:'active'" json:"status"`
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at" json:"status_updated_at"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Remaining is the principal still owed. The repaid amount never exceeds
// the principal, so this cannot underflow for a well-formed loan.
func (l *Loan) Remaining() uint64 {
	if l.RepaidAmount > l.Amount {
		return 0
	}
	return l.Amount - l.RepaidAmount
}
