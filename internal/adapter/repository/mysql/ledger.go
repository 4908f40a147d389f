package mysql

import (
	"context"
	"errors"

	"wattledger/internal/domain/token"
	"wattledger/pkg/checked"

	"gorm.io/gorm"
)

// LedgerRepository is the gorm-backed credit ledger. Both sides of a
// Transfer are row-locked, so enlisted in a transaction the movement is
// all-or-nothing.
type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Transfer(ctx context.Context, from, to token.Account, amount uint64) error {
	if amount == 0 {
		return nil
	}

	src, err := r.getForUpdate(ctx, from)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// An account that never received credit has balance 0.
			return token.ErrInsufficientBalance
		}
		return err
	}
	if src.Amount < amount {
		return token.ErrInsufficientBalance
	}
	src.Amount -= amount
	if err := r.db.WithContext(ctx).Save(src).Error; err != nil {
		return err
	}
	return r.credit(ctx, to, amount)
}

func (r *LedgerRepository) Mint(ctx context.Context, to token.Account, amount uint64) error {
	if amount == 0 {
		return token.ErrInvalidAmount
	}
	return r.credit(ctx, to, amount)
}

func (r *LedgerRepository) BalanceOf(ctx context.Context, a token.Account) (uint64, error) {
	var out token.Balance
	res := r.db.WithContext(ctx).Where("account = ?", string(a)).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, res.Error
	}
	return out.Amount, nil
}

func (r *LedgerRepository) getForUpdate(ctx context.Context, a token.Account) (*token.Balance, error) {
	var out token.Balance
	res := forUpdate(r.db.WithContext(ctx)).
		Where("account = ?", string(a)).
		First(&out)
	return &out, res.Error
}

func (r *LedgerRepository) credit(ctx context.Context, a token.Account, amount uint64) error {
	b, err := r.getForUpdate(ctx, a)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(&token.Balance{Account: string(a), Amount: amount}).Error
		}
		return err
	}
	newAmount, err := checked.AddU64(b.Amount, amount)
	if err != nil {
		return err
	}
	b.Amount = newAmount
	return r.db.WithContext(ctx).Save(b).Error
}
