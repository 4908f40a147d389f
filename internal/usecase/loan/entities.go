package loan

import (
	"time"
)

type CreateLoanInput struct {
	Borrower string `json:"borrower"`
	Amount   uint64 `json:"amount"`
	TermDays uint16 `json:"term_days"`
}

type RepayInput struct {
	LoanID string
	Payer  string // must be the borrower
	Amount uint64
}

type LoanDTO struct {
	LoanID       string    `json:"loan_id"`
	Borrower     string    `json:"borrower"`
	Amount       uint64    `json:"amount"`
	TermDays     uint16    `json:"term_days"`
	RepaidAmount uint64    `json:"repaid_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	// Informational only; no transition is driven by this date.
	DueAt time.Time `json:"due_at"`
}

type RepaymentDTO struct {
	LoanID string `json:"loan_id"`
	// Amount actually moved, after clamping to what remained due
	Repaid       uint64 `json:"repaid"`
	RepaidAmount uint64 `json:"repaid_amount"`
	Status       string `json:"status"`
}
