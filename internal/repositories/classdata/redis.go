package classdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	apperr "github.com/KirkDiggler/nexus-classes/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	participantIndexKey = "participants"
	enabledRegionsKey   = "regions:enabled"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// MaxParallelReads bounds the fan-out when listing participants
	MaxParallelReads int
}

type redisRepo struct {
	client           redis.UniversalClient
	maxParallelReads int
}

// NewRedisRepository creates a new Redis-backed class data repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	parallel := cfg.MaxParallelReads
	if parallel <= 0 {
		parallel = 16
	}

	return &redisRepo{
		client:           cfg.Client,
		maxParallelReads: parallel,
	}
}

// participantKey generates the Redis key for a participant
func participantKey(id string) string {
	return fmt.Sprintf("participant:%s", id)
}

// SaveParticipant stores the record and indexes its id
func (r *redisRepo) SaveParticipant(ctx context.Context, record *ParticipantRecord) error {
	if record == nil {
		return apperr.InvalidArgument("participant record cannot be nil")
	}
	if record.ID == "" {
		return apperr.InvalidArgument("participant ID is required")
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, participantKey(record.ID), string(jsonData), 0)
	pipe.SAdd(ctx, participantIndexKey, record.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// ListParticipants reads every indexed participant. Records that vanished
// or no longer decode are skipped with a warning.
func (r *redisRepo) ListParticipants(ctx context.Context) ([]*ParticipantRecord, error) {
	ids, err := r.client.SMembers(ctx, participantIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list participant IDs: %w", err)
	}
	sort.Strings(ids)

	records := make([]*ParticipantRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallelReads)
	for i, id := range ids {
		g.Go(func() error {
			jsonData, err := r.client.Get(gctx, participantKey(id)).Result()
			if errors.Is(err, redis.Nil) {
				log.Printf("ClassData: WARNING: participant %s is indexed but missing", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get participant %s: %w", id, err)
			}

			var record ParticipantRecord
			if err := json.Unmarshal([]byte(jsonData), &record); err != nil {
				log.Printf("ClassData: WARNING: skipping undecodable participant %s: %v", id, err)
				return nil
			}
			records[i] = &record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*ParticipantRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			out = append(out, record)
		}
	}
	return out, nil
}

// SaveEnabledRegions replaces the enabled region set atomically
func (r *redisRepo) SaveEnabledRegions(ctx context.Context, regions []string) error {
	regions = sortedUnique(regions)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, enabledRegionsKey)
	if len(regions) > 0 {
		members := make([]interface{}, len(regions))
		for i, region := range regions {
			members[i] = region
		}
		pipe.SAdd(ctx, enabledRegionsKey, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save enabled regions: %w", err)
	}

	return nil
}

// ListEnabledRegions returns the enabled region set
func (r *redisRepo) ListEnabledRegions(ctx context.Context) ([]string, error) {
	regions, err := r.client.SMembers(ctx, enabledRegionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled regions: %w", err)
	}
	sort.Strings(regions)
	return regions, nil
}
