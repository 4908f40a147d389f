package source

import "context"

// VerifierAuthority decides whether a caller may flip a source to verified.
// Injected so allowlist, multisig, or staked-oracle schemes can be swapped
// without touching the state machine.
type VerifierAuthority interface {
	CanVerify(ctx context.Context, caller, sourceID string) bool
}

// Allowlist is the simplest authority: a fixed set of verifier wallets.
type Allowlist map[string]struct{}

func NewAllowlist(wallets []string) Allowlist {
	a := make(Allowlist, len(wallets))
	for _, w := range wallets {
		if w != "" {
			a[w] = struct{}{}
		}
	}
	return a
}

func (a Allowlist) CanVerify(_ context.Context, caller, _ string) bool {
	_, ok := a[caller]
	return ok
}
