package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/keys"
)

const (
	// Forever keeps a key without expiry
	Forever time.Duration = -1
)

var (
	// ErrNotFound is returned when a key or hash is missing
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoPool is returned when the service has no pool configured
	ErrNoPool = errors.New("redis: no pool")
)

// Service is the subset of redis commands the engine stores data with
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)

	HGetAll(context ctx.Ctx, key string) (map[string][]byte, error)

	// ScriptDo runs a lua script, loading it on first use
	ScriptDo(context ctx.Ctx, hdl *ScriptHdl, keysAndArgs ...interface{}) (interface{}, error)
	// GetConn hands out a pooled connection for multi command work
	// such as WATCH/MULTI/EXEC. Callers must Close it.
	GetConn() (redis.Conn, error)
	Name() string
}

// ScriptHdl is a lua script with a fixed number of keys
type ScriptHdl struct {
	keyCount int
	script   *redis.Script
}

func NewScript(keyCount int, src string) *ScriptHdl {
	return &ScriptHdl{
		keyCount: keyCount,
		script:   redis.NewScript(keyCount, src),
	}
}

func (h *ScriptHdl) Do(conn redis.Conn, keysAndArgs ...interface{}) (interface{}, error) {
	return h.script.Do(conn, keysAndArgs...)
}

func (h *ScriptHdl) prefix(keysAndArgs ...interface{}) string {
	if h.keyCount == 0 || len(keysAndArgs) == 0 {
		return ""
	}
	if key, ok := keysAndArgs[0].(string); ok {
		return keys.GetPrefix(key)
	}
	return ""
}
