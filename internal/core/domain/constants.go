package domain

const (
	// MaxFeeBasisPoints is the cap on the creator fee (20%).
	MaxFeeBasisPoints = 2000
	// MaxTitleLength is the cap on the market title in bytes.
	MaxTitleLength = 64
)

// MarketStatus is the lifecycle state of a market.
type MarketStatus int

const (
	// MarketStatusOpen accepts bets until the end time.
	MarketStatusOpen MarketStatus = iota
	// MarketStatusPendingResolve is the window between betting close and
	// either resolution or expiry cancellation.
	MarketStatusPendingResolve
	// MarketStatusResolved is terminal, the outcome is set.
	MarketStatusResolved
	// MarketStatusCancelled is terminal, all stakes are refundable.
	MarketStatusCancelled
)

func (s MarketStatus) String() string {
	switch s {
	case MarketStatusOpen:
		return "open"
	case MarketStatusPendingResolve:
		return "pending_resolve"
	case MarketStatusResolved:
		return "resolved"
	case MarketStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Side is one of the two outcomes of a market.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "unknown"
	}
}

func (s Side) IsValid() bool {
	return s == SideA || s == SideB
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// ParseSide parses the string representation of a side.
func ParseSide(str string) (Side, error) {
	switch str {
	case "A", "a":
		return SideA, nil
	case "B", "b":
		return SideB, nil
	default:
		return -1, ErrInvalidSide
	}
}
