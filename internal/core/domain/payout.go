package domain

import "github.com/betvault/betd/pkg/mathutil"

// SpendAuthority is the capability required to move funds out of a
// market's vault. It is minted only by SettlePosition and
// SettleCreatorFee, the two code paths allowed to spend escrowed funds,
// and is never persisted.
type SpendAuthority struct {
	vault string
}

// Vault returns the vault the authority can spend from.
func (a SpendAuthority) Vault() string {
	return a.vault
}

// IsZero returns whether the authority is the useless zero value.
func (a SpendAuthority) IsZero() bool {
	return len(a.vault) <= 0
}

// Settlement is the outcome of settling a position or the creator fee.
// Amount may be zero, in which case no transfer is due and the authority
// is the zero value.
type Settlement struct {
	Amount    uint64
	Authority SpendAuthority
}

// PayoutInfo details a payout computation on a finalized market.
type PayoutInfo struct {
	TotalStaked   uint64
	FeeAmount     uint64
	Distributable uint64
	Payout        uint64
}

// PayoutFor computes the settlement amount the position is entitled to
// on a finalized market, without mutating any state:
//   - cancelled market: the full original stake, no fee deducted
//   - resolved market, losing side: zero
//   - resolved market, winning side: the pro-rata share of the
//     fee-reduced pool, truncated toward zero.
func (m *Market) PayoutFor(p *Position) (*PayoutInfo, error) {
	if !m.IsFinalized() {
		return nil, ErrMarketNotFinalized
	}

	if m.IsCancelled() {
		// Refund of the original stake, no fee and no pool math involved.
		return &PayoutInfo{Payout: p.Amount}, nil
	}

	total, err := m.TotalStaked()
	if err != nil {
		return nil, err
	}
	fee, err := m.FeeAmount()
	if err != nil {
		return nil, err
	}
	distributable, ok := mathutil.CheckedSub(total, fee)
	if !ok {
		return nil, ErrUnderflow
	}

	info := &PayoutInfo{
		TotalStaked:   total,
		FeeAmount:     fee,
		Distributable: distributable,
	}

	outcome := *m.Outcome
	if p.Side != outcome {
		return info, nil
	}

	winningTotal := m.StakeOnSide(outcome)
	if winningTotal == 0 {
		return info, nil
	}

	payout, ok := mathutil.MulDiv(distributable, p.Amount, winningTotal)
	if !ok {
		return nil, ErrOverflow
	}
	info.Payout = payout
	return info, nil
}

// SettlePosition settles the position of the given claimer on the
// market. The position is marked claimed exactly once, whatever the
// payout amount. A spend authority for the vault is minted only when a
// transfer is actually due.
func (m *Market) SettlePosition(p *Position, claimer string) (*Settlement, error) {
	if !m.IsFinalized() {
		return nil, ErrMarketNotFinalized
	}
	if p.Claimed {
		return nil, ErrAlreadyClaimed
	}
	if p.Owner != claimer {
		return nil, ErrUnauthorizedClaim
	}

	info, err := m.PayoutFor(p)
	if err != nil {
		return nil, err
	}

	p.Claimed = true

	settlement := &Settlement{Amount: info.Payout}
	if info.Payout > 0 {
		settlement.Authority = SpendAuthority{vault: m.Vault}
	}
	return settlement, nil
}

// SettleCreatorFee settles the creator fee on a resolved market. The
// withdrawn flag flips exactly once, whatever the fee amount. The fee is
// recomputed from the frozen aggregate stakes, so its value does not
// depend on how many positions were claimed before.
func (m *Market) SettleCreatorFee(withdrawer string) (*Settlement, error) {
	if !m.IsResolved() {
		return nil, ErrMarketNotResolved
	}
	if withdrawer != m.Creator {
		return nil, ErrUnauthorizedWithdrawal
	}
	if m.CreatorFeeWithdrawn {
		return nil, ErrFeeAlreadyWithdrawn
	}

	fee, err := m.FeeAmount()
	if err != nil {
		return nil, err
	}

	m.CreatorFeeWithdrawn = true

	settlement := &Settlement{Amount: fee}
	if fee > 0 {
		settlement.Authority = SpendAuthority{vault: m.Vault}
	}
	return settlement, nil
}
