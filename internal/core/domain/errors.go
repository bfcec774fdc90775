package domain

import "errors"

var (
	// ErrMarketInvalidCreator ...
	ErrMarketInvalidCreator = errors.New("market creator must not be empty")
	// ErrMarketInvalidAsset ...
	ErrMarketInvalidAsset = errors.New("market asset must not be empty")
	// ErrFeeTooHigh is thrown when the creator fee exceeds 2000 basis points.
	ErrFeeTooHigh = errors.New("fee too high (max 20%)")
	// ErrTitleTooLong is thrown when the title exceeds 64 bytes.
	ErrTitleTooLong = errors.New("title too long (max 64 bytes)")
	// ErrEndTimeInPast is thrown when the betting end time is not in the future.
	ErrEndTimeInPast = errors.New("end time must be in the future")
	// ErrInvalidDeadline is thrown when the resolve deadline does not follow
	// the betting end time.
	ErrInvalidDeadline = errors.New("resolve deadline must be after end time")
	// ErrInvalidAmount is thrown when betting a zero amount.
	ErrInvalidAmount = errors.New("invalid bet amount")
	// ErrInvalidSide ...
	ErrInvalidSide = errors.New("side must be either A or B")

	// ErrMarketNotOpen is thrown when betting on or closing a market that
	// already left the open state.
	ErrMarketNotOpen = errors.New("market is not open for betting")
	// ErrBettingClosed is thrown when betting after the end time.
	ErrBettingClosed = errors.New("betting period has ended")
	// ErrBettingNotEnded is thrown when closing betting before the end time.
	ErrBettingNotEnded = errors.New("betting period has not ended")
	// ErrMarketNotPendingResolve is thrown when resolving or cancelling a
	// market outside the pending-resolve window.
	ErrMarketNotPendingResolve = errors.New("market is not pending resolution")
	// ErrMarketNotFinalized is thrown when claiming on a market that is
	// neither resolved nor cancelled.
	ErrMarketNotFinalized = errors.New("market is not finalized")
	// ErrMarketNotResolved is thrown when withdrawing the creator fee of a
	// market that is not resolved.
	ErrMarketNotResolved = errors.New("market is not resolved")

	// ErrUnauthorizedResolver is thrown when the resolver is not the creator.
	ErrUnauthorizedResolver = errors.New("unauthorized resolver")
	// ErrUnauthorizedClaim is thrown when claiming a position of another owner.
	ErrUnauthorizedClaim = errors.New("unauthorized claim")
	// ErrUnauthorizedWithdrawal is thrown when withdrawing the creator fee
	// without being the creator.
	ErrUnauthorizedWithdrawal = errors.New("unauthorized withdrawal")

	// ErrResolutionDeadlinePassed is thrown when resolving after the deadline.
	ErrResolutionDeadlinePassed = errors.New("resolution deadline has passed")
	// ErrResolutionNotExpired is thrown when cancelling before the deadline.
	ErrResolutionNotExpired = errors.New("resolution deadline has not been reached")

	// ErrAlreadyClaimed is thrown when settling a position twice.
	ErrAlreadyClaimed = errors.New("position already claimed")
	// ErrFeeAlreadyWithdrawn is thrown when withdrawing the creator fee twice.
	ErrFeeAlreadyWithdrawn = errors.New("creator fee already withdrawn")

	// ErrPositionSideChanged is thrown when betting on the opposite side of
	// an existing position.
	ErrPositionSideChanged = errors.New("position already holds stake on the other side")
	// ErrOutcomeSideEmpty is thrown when resolving to a side nobody staked on.
	ErrOutcomeSideEmpty = errors.New("outcome side has no stake")

	// ErrOverflow is thrown when a stake or payout computation wraps 64 bits.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow is thrown when a subtraction wraps below zero.
	ErrUnderflow = errors.New("arithmetic underflow")
)
