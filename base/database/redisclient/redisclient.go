package redisclient

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/goauction/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	retryCount = 3
)

// Config is the `redis` section of the config file
type Config struct {
	Name           string  `mapstructure:"name"`
	URI            string  `mapstructure:"uri"`
	Password       string  `mapstructure:"password"`
	PoolMultiplier float64 `mapstructure:"poolMultiplier"`
	// Retry dials retryCount more times with a random sleep in between
	Retry bool `mapstructure:"retry"`
}

// MustConnectRedis connects to one redis uri
// NOTE This function panics if the connection fails.
func MustConnectRedis(cfg Config) *redis.Pool {
	p, err := ConnectRedis(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

func newPool(cfg Config) *redis.Pool {
	maxIdle := 200
	maxActive := 1024
	if cfg.PoolMultiplier > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * cfg.PoolMultiplier / 4)
		maxActive = int(cpu * cfg.PoolMultiplier)
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.URI, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// No need to test if it's been recycled less than 1 sec.
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}

// ConnectRedis builds a pool and makes sure the server answers PING
func ConnectRedis(cfg Config) (*redis.Pool, error) {
	p := newPool(cfg)
	logger := log.Log().WithField("redisURI", cfg.URI)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var err error
	for i := 0; i <= retryCount; i++ {
		if i > 0 {
			if !cfg.Retry {
				break
			}
			time.Sleep(time.Second + time.Duration(r.Float32()*1000)*time.Millisecond)
		}
		if err = ping(p); err == nil {
			break
		}
		logger.WithFields(log.Fields{"err": err, "attempt": i}).Error("fail to dial Redis")
	}
	if err != nil {
		return nil, err
	}

	logger.Info("redis connected")
	return p, nil
}
