package ports

const AnyTopic = "*"
const UnspecifiedTopic = ""

// Subscription is the info of a client subscribed for a certain topic.
type Subscription interface {
	Topic() string
	Id() string
	IsSecured() bool
	NotifyAt() string
}

// SecurePubSub defines the methods of the notification service. Events
// published here are fire-and-forget for off-chain observers, no
// operation of the core depends on their delivery.
type SecurePubSub interface {
	// Subscribe adds a new subscription for the requested topic.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes some client defined by its id for a topic.
	Unsubscribe(topic, id string) error
	// ListSubscriptionsForTopic returns the info of all clients
	// subscribed for a certain topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish publishes a message for a certain topic. All clients
	// subscribed for such topic will receive the message.
	Publish(topic string, message string) error
	// Close should be used to gracefully close the connection with the
	// internal store.
	Close() error
}
