package application

// Topics published on the pubsub service, one per lifecycle transition.
const (
	TopicMarketInitialized   = "MarketInitialized"
	TopicBetPlaced           = "BetPlaced"
	TopicBettingClosed       = "BettingClosed"
	TopicResolved            = "Resolved"
	TopicCancelled           = "Cancelled"
	TopicClaimed             = "Claimed"
	TopicCreatorFeeWithdrawn = "CreatorFeeWithdrawn"
)
