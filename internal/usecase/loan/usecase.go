package loan

import (
	"context"
	"errors"
	"time"

	domain "wattledger/internal/domain/loan"
	"wattledger/internal/domain/token"
	"wattledger/internal/domain/uow"
	"wattledger/pkg/checked"
	"wattledger/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the clock used for loan creation timestamps.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Create opens an active loan. Identity includes the creation instant at
// second granularity, so the same borrower creating two loans within one
// second collides on the unique index.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if len(in.Borrower) != 32 {
		return nil, domain.ErrInvalidBorrower
	}
	if in.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	now := u.now()
	l := &domain.Loan{
		LoanID:          id.NewID32(),
		Borrower:        in.Borrower,
		Amount:          in.Amount,
		TermDays:        in.TermDays,
		CreatedUnix:     now.Unix(),
		RepaidAmount:    0,
		Status:          domain.StatusActive,
		StatusUpdatedAt: now,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Repay applies a repayment in credit. Overpayment is clamped to what
// remains due; the returned DTO carries the amount actually moved. The
// credit transfer and the loan update commit together or not at all.
func (u *Usecase) Repay(ctx context.Context, in RepayInput) (*RepaymentDTO, error) {
	if in.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	var dto *RepaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, in.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if l.Borrower != in.Payer {
			return domain.ErrUnauthorized
		}
		if l.Status != domain.StatusActive {
			return domain.ErrNotActive
		}

		remaining, err := checked.SubU64(l.Amount, l.RepaidAmount)
		if err != nil {
			return err
		}
		effective := in.Amount
		if effective > remaining {
			effective = remaining
		}

		if err := r.Ledger.Transfer(ctx,
			token.UserAccount(in.Payer), token.LoanCollector(l.LoanID), effective); err != nil {
			return err
		}

		newRepaid, err := checked.AddU64(l.RepaidAmount, effective)
		if err != nil {
			return err
		}
		l.RepaidAmount = newRepaid
		if l.RepaidAmount == l.Amount {
			l.Status = domain.StatusRepaid
			l.StatusUpdatedAt = u.now()
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &RepaymentDTO{
			LoanID:       l.LoanID,
			Repaid:       effective,
			RepaidAmount: l.RepaidAmount,
			Status:       string(l.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrower string) ([]LoanDTO, error) {
	ls, err := u.repo.ListByBorrower(ctx, borrower)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

func toDTO(l *domain.Loan) *LoanDTO {
	created := time.Unix(l.CreatedUnix, 0).UTC()
	return &LoanDTO{
		LoanID:       l.LoanID,
		Borrower:     l.Borrower,
		Amount:       l.Amount,
		TermDays:     l.TermDays,
		RepaidAmount: l.RepaidAmount,
		Status:       string(l.Status),
		CreatedAt:    created,
		DueAt:        created.AddDate(0, 0, int(l.TermDays)),
	}
}
