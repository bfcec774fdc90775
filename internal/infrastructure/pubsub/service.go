package pubsub

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/sony/gobreaker"
	"github.com/betvault/betd/internal/core/ports"
	"github.com/betvault/betd/pkg/circuitbreaker"
	"github.com/timshannon/badgerhold/v4"
	"golang.org/x/sync/errgroup"
)

type service struct {
	store      *badgerhold.Store
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
}

// NewService returns a webhook pubsub service persisting its
// subscriptions on the given store.
func NewService(
	store *badgerhold.Store, requestTimeout time.Duration,
) (ports.SecurePubSub, error) {
	if store == nil {
		return nil, fmt.Errorf("missing subscription store")
	}

	return &service{
		store:      store,
		httpClient: &http.Client{Timeout: requestTimeout},
		cb:         circuitbreaker.NewCircuitBreaker("pubsub"),
	}, nil
}

func (ws *service) Subscribe(topic, endpoint, secret string) (string, error) {
	sub, err := NewSubscription(topic, endpoint, secret)
	if err != nil {
		return "", err
	}

	if err := ws.store.Upsert(sub.ID, sub); err != nil {
		return "", err
	}
	return sub.ID, nil
}

func (ws *service) Unsubscribe(_, id string) error {
	var sub Subscription
	if err := ws.store.Get(id, &sub); err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("webhook not found")
		}
		return err
	}
	return ws.store.Delete(id, &sub)
}

func (ws *service) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	return ws.listSubscriptionsForTopic(topic).toPortable()
}

func (ws *service) Publish(topic string, message string) error {
	subs := ws.listSubscriptionsForTopic(topic)

	eg := &errgroup.Group{}
	for i := range subs {
		sub := subs[i]
		eg.Go(func() error { return ws.doRequest(sub, message) })
	}
	return eg.Wait()
}

func (ws *service) Close() error {
	return nil
}

func (ws *service) listSubscriptionsForTopic(topic string) subscriptions {
	var subs subscriptions
	var err error

	switch topic {
	case ports.UnspecifiedTopic:
		err = ws.store.Find(&subs, nil)
	case ports.AnyTopic:
		err = ws.store.Find(&subs, badgerhold.Where("Event").Eq(ports.AnyTopic))
	default:
		err = ws.store.Find(
			&subs,
			badgerhold.Where("Event").Eq(topic).Or(
				badgerhold.Where("Event").Eq(ports.AnyTopic),
			),
		)
	}
	if err != nil {
		return nil
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].ID < subs[j].ID
	})
	return subs
}

func (ws *service) doRequest(sub Subscription, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequest(
			http.MethodPost, sub.Endpoint, strings.NewReader(payload),
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if sub.IsSecured() {
			token := jwt.New(jwt.SigningMethodHS256)
			tokenString, _ := token.SignedString([]byte(sub.Secret))
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", tokenString))
		}

		res, err := ws.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		body, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf(
				"endpoint replied with status %d: %s", res.StatusCode, body,
			)
		}
		return nil, nil
	})

	return err
}
