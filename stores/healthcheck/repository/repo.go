package repository

import (
	"errors"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
)

const (
	storeMongo = "mongo"
	storeRedis = "redis"
)

var errReadBack = errors.New("redis read back mismatch")

type impl struct {
	q     query.Mongo
	redis redis.Service
}

// New pings the stores that are configured, nil ones are skipped
func New(
	q query.Mongo,
	redis redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		q:     q,
		redis: redis,
	}
}

func (im *impl) PingStores(context ctx.Ctx) []hcdomain.Status {
	res := []hcdomain.Status{}

	if im.q != nil {
		s := hcdomain.Status{Store: storeMongo}
		if err := im.q.Ping(context); err != nil {
			context.WithField("err", err).Error("ping mongo error")
			s.Error = err.Error()
		}
		res = append(res, s)
	}

	if im.redis != nil {
		s := hcdomain.Status{Store: storeRedis}
		c, cancel := ctx.WithTimeout(context, 2*time.Second)
		defer cancel()
		key := keys.RedisKey(keys.PfxHealthCheck, "testset")
		if err := im.redis.Set(c, key, []byte("1"), 30*time.Second); err != nil {
			context.WithField("err", err).Error("test redis set failed")
			s.Error = err.Error()
		} else if val, err := im.redis.Get(c, key); err != nil {
			context.WithField("err", err).Error("test redis get failed")
			s.Error = err.Error()
		} else if string(val) != "1" {
			s.Error = errReadBack.Error()
		}
		res = append(res, s)
	}
	return res
}
