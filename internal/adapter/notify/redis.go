package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"taskboard/internal/core/ports"
)

const (
	refreshEventType  = "tasks.refresh"
	defaultRetryDelay = 2 * time.Second
)

var errSubscriptionClosed = errors.New("refresh subscription closed")

type refreshEvent struct {
	Type string `json:"type"`
	Time int64  `json:"time"`
}

// RedisSignal publishes refresh signals on a Redis channel so every board
// process subscribed to it reloads.
type RedisSignal struct {
	rc         *redis.Client
	channel    string
	now        func() time.Time
	retryDelay time.Duration
}

var _ ports.RefreshSignal = (*RedisSignal)(nil)

func NewRedisSignal(rc *redis.Client, channel string) *RedisSignal {
	return &RedisSignal{rc: rc, channel: channel, now: time.Now, retryDelay: defaultRetryDelay}
}

// WithRetryDelay sets how long Run waits before subscribing again.
func (s *RedisSignal) WithRetryDelay(d time.Duration) *RedisSignal {
	s.retryDelay = d
	return s
}

func (s *RedisSignal) Signal(ctx context.Context) error {
	payload, err := json.Marshal(refreshEvent{Type: refreshEventType, Time: s.now().UnixMilli()})
	if err != nil {
		return err
	}
	return s.rc.Publish(ctx, s.channel, payload).Err()
}

// Run keeps a subscription alive until ctx is done, subscribing again
// after every failure. ready, if not nil, is closed after the first
// confirmed subscription.
func (s *RedisSignal) Run(ctx context.Context, fn Listener, ready chan<- struct{}) {
	for {
		err := s.Listen(ctx, fn, ready)
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, errSubscriptionClosed) {
			// ready was closed by the subscription that just ended.
			ready = nil
		}
		zap.L().Error("refresh subscription failed",
			zap.String("channel", s.channel),
			zap.Duration("retry_in", s.retryDelay),
			zap.Error(err),
		)

		timer := time.NewTimer(s.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// Listen blocks, calling fn for every refresh event, until ctx is done or
// the subscription channel closes. ready, if not nil, is closed once the
// subscription is confirmed.
func (s *RedisSignal) Listen(ctx context.Context, fn Listener, ready chan<- struct{}) error {
	sub := s.rc.Subscribe(ctx, s.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			zap.L().Debug("failed to close refresh subscription", zap.Error(err))
		}
	}()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	if ready != nil {
		close(ready)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errSubscriptionClosed
			}
			var ev refreshEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				zap.L().Warn("unable to parse refresh event", zap.String("payload", msg.Payload), zap.Error(err))
				continue
			}
			if ev.Type != refreshEventType {
				zap.L().Warn("ignoring unknown event", zap.String("type", ev.Type), zap.String("channel", s.channel))
				continue
			}
			fn(ctx)
		}
	}
}
