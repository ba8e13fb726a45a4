package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/pubsub"

	"github.com/vinoterra/winery-registry/common"
	"github.com/vinoterra/winery-registry/logger"
)

var ErrPubsubInitialization = errors.New("pubsub initialization error")

// PubsubFromContextFun resolves the pubsub client bound to a request.
type PubsubFromContextFun = func(ctx context.Context) *pubsub.Client

func NewPubsubClient(ctx context.Context, log *logger.Logging) (*pubsub.Client, error) {
	l := log.Logger(ctx)

	ps, err := pubsub.NewClient(ctx, common.ProjectID)
	if err != nil {
		l.Errorf("%s: %s", ErrPubsubInitialization, err)
		return nil, ErrPubsubInitialization
	}

	return ps, nil
}
