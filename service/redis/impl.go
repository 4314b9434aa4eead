package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain/keys"
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis service over the given pools
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrNoPool
	}

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// release the connection asap so the pool does not have to grow
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()
	b, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	}
	r.met.BumpHistogram("bytes", float64(len(b)), tags...)
	return b, err
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	args := []interface{}{key, val}
	if expire != Forever {
		args = append(args, "PX", int(expire/time.Millisecond))
	}
	if _, err := r.connDo(context, "SET", args...); err != nil {
		context.WithField("err", err).Error("Set redis failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}
	defer r.met.BumpTime("time", r.tags("del", ks[0])...).End()
	args := make([]interface{}, 0, len(ks))
	for _, k := range ks {
		args = append(args, k)
	}
	n, err := redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithField("err", err).Error("Del redis failed")
	}
	return n, err
}

func (r *redImpl) HGetAll(context ctx.Ctx, key string) (map[string][]byte, error) {
	tags := r.tags("hgetall", key)
	defer r.met.BumpTime("time", tags...).End()
	vals, err := ByteMap(r.connDo(context, "HGETALL", key))
	if err != nil {
		context.WithField("err", err).Error("HGetAll redis failed")
		return nil, err
	}
	size := 0
	for _, v := range vals {
		size += len(v)
	}
	r.met.BumpHistogram("bytes", float64(size), tags...)
	if len(vals) == 0 {
		return vals, ErrNotFound
	}
	return vals, nil
}

func (r *redImpl) ScriptDo(context ctx.Ctx, hdl *ScriptHdl, keysAndArgs ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("time", "func", "scriptdo", "cluster", r.name, "prefix", hdl.prefix(keysAndArgs...)).End()

	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
		}
	}()

	value, err := hdl.Do(conn, keysAndArgs...)
	if err != nil && err != redis.ErrNil {
		context.WithField("err", err).Error("ScriptDo redis failed")
	}
	return value, err
}

func (r *redImpl) GetConn() (redis.Conn, error) {
	return r.getConn()
}

func (r *redImpl) Name() string {
	return r.name
}

// ByteMap is a helper that converts an array of []byte (alternating key, value)
// into a map[string][]byte. The HGETALL and CONFIG GET commands return replies in this format.
// Requires an even number of values in result.
func ByteMap(result interface{}, err error) (map[string][]byte, error) {
	values, err := redis.Values(result, err)
	if err != nil {
		return nil, err
	}
	if len(values)%2 != 0 {
		return nil, errors.New("redigo: ByteMap expects even number of values result")
	}
	m := make(map[string][]byte, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, okKey := values[i].([]byte)
		value, okValue := values[i+1].([]byte)
		if !okKey || !okValue {
			return nil, errors.New("redigo: ByteMap key not a bulk string value")
		}
		m[string(key)] = value
	}
	return m, nil
}
