package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ManuelReschke/QuestBoard/internal/pkg/calendar"
)

const checkInKeyFormat = "checkins:quest:%d:user:%d"

// storeCheckIns replaces the set at KEYS[1] only while the version at KEYS[2]
// equals ARGV[1]. ARGV[2] is the ttl in milliseconds, the members follow.
var storeCheckIns = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('DEL', KEYS[1])
if #ARGV > 2 then
	redis.call('SADD', KEYS[1], unpack(ARGV, 3))
	if tonumber(ARGV[2]) > 0 then
		redis.call('PEXPIRE', KEYS[1], ARGV[2])
	end
end
return 1
`)

// CheckInCache keeps the check-in days of a user for a quest as a Redis set
// of YYYY-MM-DD members
type CheckInCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCheckInCache creates a check-in cache on top of client
func NewCheckInCache(client redis.Cmdable, ttl time.Duration) *CheckInCache {
	return &CheckInCache{client: client, ttl: ttl}
}

func checkInKey(questID, userID uint) string {
	return fmt.Sprintf(checkInKeyFormat, questID, userID)
}

func checkInVersionKey(questID, userID uint) string {
	return checkInKey(questID, userID) + ":v"
}

// Dates returns the cached days. ok is false on a cache miss.
func (c *CheckInCache) Dates(ctx context.Context, questID, userID uint) ([]calendar.Date, bool, error) {
	members, err := c.client.SMembers(ctx, checkInKey(questID, userID)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(members) == 0 {
		return nil, false, nil
	}

	dates := make([]calendar.Date, 0, len(members))
	for _, m := range members {
		d, err := calendar.ParseISO(m)
		if err != nil {
			// a corrupt member poisons the whole entry
			_ = c.client.Del(ctx, checkInKey(questID, userID)).Err()
			return nil, false, nil
		}
		dates = append(dates, d)
	}
	return dates, true, nil
}

// Version returns the current entry version, 0 if it was never invalidated
func (c *CheckInCache) Version(ctx context.Context, questID, userID uint) (int64, error) {
	v, err := c.client.Get(ctx, checkInVersionKey(questID, userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Store replaces the cached days if the entry is still at version. It reports
// false when an Invalidate happened in between. An empty list only clears the
// entry since Redis has no empty sets.
func (c *CheckInCache) Store(ctx context.Context, questID, userID uint, version int64, dates []calendar.Date) (bool, error) {
	args := make([]interface{}, 0, len(dates)+2)
	args = append(args, strconv.FormatInt(version, 10), c.ttl.Milliseconds())
	for _, d := range dates {
		args = append(args, d.String())
	}

	keys := []string{checkInKey(questID, userID), checkInVersionKey(questID, userID)}
	stored, err := storeCheckIns.Run(ctx, c.client, keys, args...).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// Invalidate drops the cached days and bumps the version so that writes
// prepared against the old version are rejected
func (c *CheckInCache) Invalidate(ctx context.Context, questID, userID uint) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		versionKey := checkInVersionKey(questID, userID)
		pipe.Incr(ctx, versionKey)
		if c.ttl > 0 {
			pipe.Expire(ctx, versionKey, 2*c.ttl)
		}
		pipe.Del(ctx, checkInKey(questID, userID))
		return nil
	})
	return err
}
