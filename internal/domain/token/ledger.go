package token

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInsufficientBalance = errors.New("insufficient credit balance")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)

// Account addresses a credit balance. User accounts are 32-char hex wallet
// ids; escrow accounts are derived from the entity that owns them.
type Account string

func UserAccount(wallet string) Account { return Account(wallet) }

func ListingEscrow(listingID string) Account { return Account("listing:" + listingID) }

func LoanCollector(loanID string) Account { return Account("loan:" + loanID) }

// Ledger is the external credit-transfer service. Implementations must
// apply each call atomically: a failed Transfer or Mint leaves both
// balances untouched.
type Ledger interface {
	Transfer(ctx context.Context, from, to Account, amount uint64) error
	Mint(ctx context.Context, to Account, amount uint64) error
	BalanceOf(ctx context.Context, a Account) (uint64, error)
}

// Balance is a single credit balance row.
type Balance struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	Account   string    `gorm:"column:account;size:64;uniqueIndex:ux_balances_account" json:"account"`
	Amount    uint64    `gorm:"column:amount" json:"amount"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Balance) TableName() string { return "balances" }
