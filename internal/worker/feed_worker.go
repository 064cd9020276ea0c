package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/config"
	ws "github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/websocket"
)

const FeedPollTimeout = 1 * time.Second

// RedisFeed pushes submission events onto a Redis queue so that any
// server instance running a FeedWorker can fan them out to its own
// websocket clients. It satisfies flow.FeedPublisher.
type RedisFeed struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewRedisFeed(rdb *redis.Client, log zerolog.Logger) *RedisFeed {
	return &RedisFeed{
		rdb: rdb,
		log: log.With().Str("component", "redis_feed").Logger(),
	}
}

func (f *RedisFeed) Publish(ctx context.Context, ev ws.SubmissionEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return f.rdb.RPush(ctx, config.WorkerKey.SubmissionFeedQueue, raw).Err()
}

// ----------------------------------------------------------------
// Worker loop
// ----------------------------------------------------------------

// FeedWorker drains the submission feed queue and broadcasts each
// event to the local websocket hub.
type FeedWorker struct {
	rdb *redis.Client
	hub *ws.Hub
	log zerolog.Logger
}

func NewFeedWorker(rdb *redis.Client, hub *ws.Hub, log zerolog.Logger) *FeedWorker {
	return &FeedWorker{
		rdb: rdb,
		hub: hub,
		log: log.With().Str("component", "feed_worker").Logger(),
	}
}

func (w *FeedWorker) Start(ctx context.Context) {
	w.log.Info().Msg("FeedWorker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Stopping feed worker...")
			return

		default:
			item, err := w.rdb.BLPop(ctx, FeedPollTimeout, config.WorkerKey.SubmissionFeedQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var ev ws.SubmissionEvent
			if err := json.Unmarshal([]byte(item[1]), &ev); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			w.hub.Broadcast(ev)
		}
	}
}
