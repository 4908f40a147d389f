package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Row-locked read for the repayment read-modify-write sequence.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByBorrower(ctx context.Context, borrower string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
