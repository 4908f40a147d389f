package ledgermock

import (
	"context"
	"errors"

	"wattledger/internal/domain/token"
)

var _ token.Ledger = (*Ledger)(nil)

var errUnimplemented = errors.New("ledgermock: method not implemented")

// Ledger is a function-backed mock that satisfies token.Ledger.
type Ledger struct {
	TransferFn  func(ctx context.Context, from, to token.Account, amount uint64) error
	MintFn      func(ctx context.Context, to token.Account, amount uint64) error
	BalanceOfFn func(ctx context.Context, a token.Account) (uint64, error)
}

func (m *Ledger) Transfer(ctx context.Context, from, to token.Account, amount uint64) error {
	if m.TransferFn != nil {
		return m.TransferFn(ctx, from, to, amount)
	}
	return nil
}

func (m *Ledger) Mint(ctx context.Context, to token.Account, amount uint64) error {
	if m.MintFn != nil {
		return m.MintFn(ctx, to, amount)
	}
	return nil
}

func (m *Ledger) BalanceOf(ctx context.Context, a token.Account) (uint64, error) {
	if m.BalanceOfFn != nil {
		return m.BalanceOfFn(ctx, a)
	}
	return 0, errUnimplemented
}
