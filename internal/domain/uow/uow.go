package uow

import (
	"context"

	"wattledger/internal/domain/listing"
	"wattledger/internal/domain/loan"
	"wattledger/internal/domain/source"
	"wattledger/internal/domain/token"
)

type Repos struct {
	Sources  source.Repository
	Loans    loan.Repository
	Listings listing.Repository
	Ledger   token.Ledger
}

// UnitOfWork runs fn with every repository and the credit ledger bound to
// one transaction. If fn returns an error nothing it did is observable.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
