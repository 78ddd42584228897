package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ride-service/src/internal/model"
	"ride-service/src/pkg/log"

	"github.com/redis/go-redis/v9"
)

const detailTTL = 10 * time.Minute

// RideCache keeps ride detail responses in redis. It is best effort: any
// redis failure is logged and treated as a miss so the database stays the
// source of truth.
type RideCache struct {
	Client redis.UniversalClient
	Log    log.Log
}

func NewRideCache(client redis.UniversalClient, logger log.Log) *RideCache {
	return &RideCache{
		Client: client,
		Log:    logger,
	}
}

func detailKey(rideID uint64) string {
	return fmt.Sprintf("RIDE:DETAIL:%d", rideID)
}

func (c *RideCache) GetDetail(ctx context.Context, rideID uint64) (*model.RideDetailResponse, bool) {
	data, err := c.Client.Get(ctx, detailKey(rideID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.Log.Error("ride-cache", fmt.Sprintf("error get detail: %v", err), "GetDetail", detailKey(rideID))
		}
		return nil, false
	}

	var detail model.RideDetailResponse
	if err := json.Unmarshal([]byte(data), &detail); err != nil {
		c.Log.Error("ride-cache", fmt.Sprintf("error unmarshal detail: %v", err), "GetDetail", detailKey(rideID))
		return nil, false
	}
	return &detail, true
}

func (c *RideCache) SetDetail(ctx context.Context, rideID uint64, detail *model.RideDetailResponse) {
	data, err := json.Marshal(detail)
	if err != nil {
		c.Log.Error("ride-cache", fmt.Sprintf("error marshal detail: %v", err), "SetDetail", detailKey(rideID))
		return
	}
	if err := c.Client.Set(ctx, detailKey(rideID), data, detailTTL).Err(); err != nil {
		c.Log.Error("ride-cache", fmt.Sprintf("error set detail: %v", err), "SetDetail", detailKey(rideID))
	}
}

func (c *RideCache) Invalidate(ctx context.Context, rideID uint64) {
	if err := c.Client.Del(ctx, detailKey(rideID)).Err(); err != nil {
		c.Log.Error("ride-cache", fmt.Sprintf("error invalidate detail: %v", err), "Invalidate", detailKey(rideID))
	}
}
