package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/barangay-poblacion/console/internal/domain"
)

const invalidationChannel = "console:invalidations"

// SignalService fans collection-changed events out to connected consoles.
// Local subscribers always receive events directly; with a redis client the
// events are additionally mirrored to the other instances via pub/sub.
type SignalService struct {
	rdb    *redis.Client
	origin string

	mu   sync.RWMutex
	subs map[chan domain.Event]struct{}
}

func NewSignalService(rdb *redis.Client) *SignalService {
	return &SignalService{
		rdb:    rdb,
		origin: uuid.NewString(),
		subs:   make(map[chan domain.Event]struct{}),
	}
}

// Publish delivers the event to local subscribers and mirrors it to redis.
// Delivery is best effort: a slow subscriber or unreachable redis never
// blocks the mutation that triggered the event.
func (s *SignalService) Publish(ctx context.Context, event domain.Event) {
	event.Origin = s.origin
	s.fanout(event)

	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.rdb.Publish(ctx, invalidationChannel, payload).Err(); err != nil {
		slog.ErrorContext(
			ctx, "Failed to publish invalidation",
			slog.String("error", err.Error()),
			slog.String("module", "signal"),
		)
	}
}

// Listen bridges events published by other instances into the local
// fan-out. It blocks until ctx is cancelled; run it in its own goroutine.
func (s *SignalService) Listen(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	pubsub := s.rdb.Subscribe(ctx, invalidationChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.ErrorContext(
					ctx, "Malformed invalidation payload",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			if event.Origin == s.origin {
				continue
			}
			s.fanout(event)
		}
	}
}

// Subscribe registers a local listener. The returned cancel func must be
// called when the listener goes away.
func (s *SignalService) Subscribe() (<-chan domain.Event, func()) {
	ch := make(chan domain.Event, 16)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *SignalService) fanout(event domain.Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- event:
		default:
			// subscriber is not keeping up; it will refetch on reconnect
		}
	}
}
