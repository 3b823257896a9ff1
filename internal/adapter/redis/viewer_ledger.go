// Package redis implements the viewer ledger on Redis. Each record is a
// hash; creation and increments run as Lua scripts so that the existence
// check and the write happen in one step on the server.
package redis

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.ViewerLedger = (*ViewerLedger)(nil)

var createScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1],
  'ip', ARGV[1],
  'campaign_id', ARGV[2],
  'user_agent', ARGV[3],
  'first_seen_at', ARGV[4],
  'last_seen_at', ARGV[5],
  'visit_count', ARGV[6])
return 1
`)

var incrementScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
redis.call('HINCRBY', KEYS[1], 'visit_count', 1)
local last = tonumber(redis.call('HGET', KEYS[1], 'last_seen_at'))
if last == nil or tonumber(ARGV[1]) > last then
  redis.call('HSET', KEYS[1], 'last_seen_at', ARGV[1])
end
return 1
`)

// ViewerLedger stores viewer records under <prefix>viewer:<campaign>:<ip>.
// Timestamps are kept as Unix microseconds so Lua can compare them exactly.
type ViewerLedger struct {
	client goredis.UniversalClient
	prefix string
}

func NewViewerLedger(client goredis.UniversalClient, prefix string) *ViewerLedger {
	return &ViewerLedger{client: client, prefix: prefix}
}

func (l *ViewerLedger) key(k domain.ViewerKey) string {
	return l.prefix + "viewer:" + k.CampaignID + ":" + k.IP
}

func (l *ViewerLedger) CreateIfAbsent(ctx context.Context, rec domain.ViewerRecord) (bool, error) {
	n, err := createScript.Run(ctx, l.client, []string{l.key(rec.ViewerKey)},
		rec.IP,
		rec.CampaignID,
		rec.UserAgent,
		rec.FirstSeenAt.UnixMicro(),
		rec.LastSeenAt.UnixMicro(),
		rec.VisitCount,
	).Int()
	if err != nil {
		return false, storeErr("create viewer", err)
	}
	return n == 1, nil
}

func (l *ViewerLedger) IncrementVisit(ctx context.Context, key domain.ViewerKey, at time.Time) error {
	n, err := incrementScript.Run(ctx, l.client, []string{l.key(key)}, at.UnixMicro()).Int()
	if err != nil {
		return storeErr("increment visit", err)
	}
	if n == 0 {
		return domain.ErrViewerNotFound
	}
	return nil
}

// List walks the keyspace with SCAN, so it does not block the server, but
// records written during the walk may or may not be included.
func (l *ViewerLedger) List(ctx context.Context) ([]domain.ViewerRecord, error) {
	out := make([]domain.ViewerRecord, 0)
	iter := l.client.Scan(ctx, 0, l.prefix+"viewer:*", 256).Iterator()
	for iter.Next(ctx) {
		fields, err := l.client.HGetAll(ctx, iter.Val()).Result()
		if err != nil {
			return nil, storeErr("read viewer", err)
		}
		if len(fields) == 0 {
			continue
		}
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("decode viewer %s: %w", iter.Val(), err)
		}
		out = append(out, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, storeErr("scan viewers", err)
	}
	slices.SortFunc(out, func(a, b domain.ViewerRecord) int {
		return a.ViewerKey.Compare(b.ViewerKey)
	})
	return out, nil
}

func decodeRecord(fields map[string]string) (domain.ViewerRecord, error) {
	first, err := strconv.ParseInt(fields["first_seen_at"], 10, 64)
	if err != nil {
		return domain.ViewerRecord{}, fmt.Errorf("first_seen_at: %w", err)
	}
	last, err := strconv.ParseInt(fields["last_seen_at"], 10, 64)
	if err != nil {
		return domain.ViewerRecord{}, fmt.Errorf("last_seen_at: %w", err)
	}
	count, err := strconv.ParseInt(fields["visit_count"], 10, 64)
	if err != nil {
		return domain.ViewerRecord{}, fmt.Errorf("visit_count: %w", err)
	}
	return domain.ViewerRecord{
		ViewerKey:   domain.ViewerKey{IP: fields["ip"], CampaignID: fields["campaign_id"]},
		UserAgent:   fields["user_agent"],
		FirstSeenAt: time.UnixMicro(first).UTC(),
		LastSeenAt:  time.UnixMicro(last).UTC(),
		VisitCount:  count,
	}, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
}
