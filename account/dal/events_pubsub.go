package dal

import (
	"context"

	"cloud.google.com/go/pubsub"

	"github.com/vinoterra/winery-registry/common"
	"github.com/vinoterra/winery-registry/framework/connection"
)

const accountEventsTopic = "account-lifecycle"

// EventsPubsub publishes account lifecycle events to the lifecycle topic. The
// push subscription on that topic feeds the /events/auth endpoint.
type EventsPubsub struct {
	pubsubClientFun connection.PubsubFromContextFun
	topic           string
}

func NewEventsPubsubWithClient(fun connection.PubsubFromContextFun) *EventsPubsub {
	return &EventsPubsub{
		pubsubClientFun: fun,
		topic:           common.GetEnv("ACCOUNT_EVENTS_TOPIC", accountEventsTopic),
	}
}

// PublishAccountEvent publishes one lifecycle event and waits for the server
// acknowledgment, so the event is on the topic before the caller's request
// completes.
func (d *EventsPubsub) PublishAccountEvent(ctx context.Context, eventType, uid string) error {
	topic := d.pubsubClientFun(ctx).Topic(d.topic)
	defer topic.Stop()

	result := topic.Publish(ctx, &pubsub.Message{
		Attributes: map[string]string{
			"eventType": eventType,
			"uid":       uid,
		},
	})

	_, err := result.Get(ctx)

	return err
}
