package application

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/betvault/betd/internal/core/domain"
	"github.com/betvault/betd/internal/core/ports"
)

// Publishing is fire-and-forget: a failed delivery is logged and never
// fails the operation that triggered it.

func publishMarketInitialized(pubsub ports.SecurePubSub, market *domain.Market) {
	payload := map[string]interface{}{
		"market":              market.Key,
		"creator":             market.Creator,
		"asset":               market.Asset,
		"title":               market.Title,
		"fee_bps":             market.FeeBasisPoints,
		"end_ts":              market.EndTime.Unix(),
		"resolve_deadline_ts": market.ResolveDeadline.Unix(),
	}
	publishTopic(pubsub, TopicMarketInitialized, payload)
}

func publishBetPlaced(
	pubsub ports.SecurePubSub,
	market *domain.Market, bettor string, side domain.Side, amount uint64,
) {
	payload := map[string]interface{}{
		"market": market.Key,
		"user":   bettor,
		"side":   side.String(),
		"amount": amount,
	}
	publishTopic(pubsub, TopicBetPlaced, payload)
}

func publishBettingClosed(pubsub ports.SecurePubSub, market *domain.Market) {
	payload := map[string]interface{}{
		"market": market.Key,
	}
	publishTopic(pubsub, TopicBettingClosed, payload)
}

func publishResolved(pubsub ports.SecurePubSub, market *domain.Market) {
	payload := map[string]interface{}{
		"market":  market.Key,
		"outcome": market.Outcome.String(),
	}
	publishTopic(pubsub, TopicResolved, payload)
}

func publishCancelled(pubsub ports.SecurePubSub, market *domain.Market) {
	payload := map[string]interface{}{
		"market": market.Key,
	}
	publishTopic(pubsub, TopicCancelled, payload)
}

func publishClaimed(
	pubsub ports.SecurePubSub, market *domain.Market, owner string, amount uint64,
) {
	payload := map[string]interface{}{
		"market": market.Key,
		"user":   owner,
		"amount": amount,
	}
	publishTopic(pubsub, TopicClaimed, payload)
}

func publishCreatorFeeWithdrawn(
	pubsub ports.SecurePubSub, market *domain.Market, amount uint64,
) {
	payload := map[string]interface{}{
		"market":  market.Key,
		"creator": market.Creator,
		"amount":  amount,
	}
	publishTopic(pubsub, TopicCreatorFeeWithdrawn, payload)
}

func publishTopic(
	pubsub ports.SecurePubSub, topic string, payload map[string]interface{},
) {
	if pubsub == nil {
		return
	}

	message, _ := json.Marshal(payload)
	if err := pubsub.Publish(topic, string(message)); err != nil {
		log.WithError(err).Warn(fmt.Sprintf(
			"an error occured while publishing message for topic %s", topic,
		))
	}
}
