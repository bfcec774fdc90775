package pubsub

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/require"
	"github.com/timshannon/badgerhold/v4"

	"github.com/betvault/betd/internal/core/ports"
	dbbadger "github.com/betvault/betd/internal/infrastructure/storage/db/badger"
)

func newTestStore(t *testing.T) *badgerhold.Store {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil
	store, err := badgerhold.Open(badgerhold.Options{
		Encoder:          dbbadger.JSONEncode,
		Decoder:          dbbadger.JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	svc, err := NewService(newTestStore(t), 5*time.Second)
	require.NoError(t, err)

	id, err := svc.Subscribe("market_resolved", "http://localhost:8888/hook", "")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	subs := svc.ListSubscriptionsForTopic("market_resolved")
	require.Len(t, subs, 1)
	require.Equal(t, id, subs[0].Id())
	require.False(t, subs[0].IsSecured())

	err = svc.Unsubscribe("", id)
	require.NoError(t, err)

	subs = svc.ListSubscriptionsForTopic("market_resolved")
	require.Len(t, subs, 0)

	err = svc.Unsubscribe("", id)
	require.Error(t, err)
}

func TestFailingSubscribe(t *testing.T) {
	svc, err := NewService(newTestStore(t), 5*time.Second)
	require.NoError(t, err)

	_, err = svc.Subscribe("", "http://localhost:8888/hook", "")
	require.Error(t, err)

	_, err = svc.Subscribe("market_resolved", "not a url", "")
	require.Error(t, err)
}

func TestListSubscriptionsForTopic(t *testing.T) {
	svc, err := NewService(newTestStore(t), 5*time.Second)
	require.NoError(t, err)

	_, err = svc.Subscribe("market_resolved", "http://localhost:8888/a", "")
	require.NoError(t, err)
	_, err = svc.Subscribe("bet_placed", "http://localhost:8888/b", "s3cr3t")
	require.NoError(t, err)
	_, err = svc.Subscribe(ports.AnyTopic, "http://localhost:8888/c", "")
	require.NoError(t, err)

	// A catch-all subscription rides along every topic.
	require.Len(t, svc.ListSubscriptionsForTopic("market_resolved"), 2)
	require.Len(t, svc.ListSubscriptionsForTopic("bet_placed"), 2)
	require.Len(t, svc.ListSubscriptionsForTopic(ports.AnyTopic), 1)
	require.Len(t, svc.ListSubscriptionsForTopic(ports.UnspecifiedTopic), 3)
}
