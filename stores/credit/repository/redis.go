package repository

import (
	"math/big"
	"sort"

	redigo "github.com/gomodule/redigo/redis"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/credit"
	"github.com/x-xyz/goauction/domain/keys"
	"github.com/x-xyz/goauction/service/redis"
)

const maxAddAttempts = 10

var (
	// takeScript reads and drops the whole hash in one step
	takeScript = redis.NewScript(1, `
local v = redis.call('HGETALL', KEYS[1])
redis.call('DEL', KEYS[1])
return v
`)

	errAddContended = xerrors.New("credit add kept conflicting")
)

type redisImpl struct {
	redis redis.Service
}

// NewRedisRepo keeps one hash per recipient, field currency, value the
// decimal balance
func NewRedisRepo(r redis.Service) credit.Repo {
	return &redisImpl{redis: r}
}

func creditKey(recipient domain.Address) string {
	return keys.RedisKey(keys.PfxCredit, recipient.ToLowerStr())
}

func (r *redisImpl) Add(c ctx.Ctx, recipient domain.Address, currency domain.Address, amount *big.Int) (*credit.Credit, error) {
	conn, err := r.redis.GetConn()
	if err != nil {
		c.WithField("err", err).Error("redis.GetConn failed")
		return nil, err
	}
	defer conn.Close()

	key := creditKey(recipient)
	field := currency.ToLowerStr()
	for i := 0; i < maxAddAttempts; i++ {
		balance, err := addOnce(conn, key, field, amount)
		if err == redigo.ErrNil {
			// someone else wrote the hash between WATCH and EXEC
			continue
		} else if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"recipient": recipient,
				"currency":  currency,
			}).Error("credit add failed")
			return nil, err
		}
		return &credit.Credit{Recipient: recipient.ToLower(), Currency: currency.ToLower(), Amount: balance}, nil
	}
	c.WithFields(log.Fields{
		"recipient": recipient,
		"currency":  currency,
	}).Error("credit add gave up")
	return nil, errAddContended
}

func addOnce(conn redigo.Conn, key, field string, amount *big.Int) (*big.Int, error) {
	if _, err := conn.Do("WATCH", key); err != nil {
		return nil, err
	}
	balance := new(big.Int)
	raw, err := redigo.String(conn.Do("HGET", key, field))
	if err != nil && err != redigo.ErrNil {
		conn.Do("UNWATCH")
		return nil, err
	} else if err == nil {
		if _, ok := balance.SetString(raw, 10); !ok {
			conn.Do("UNWATCH")
			return nil, xerrors.Errorf("corrupt credit %s/%s: %q", key, field, raw)
		}
	}
	balance.Add(balance, amount)

	if err := conn.Send("MULTI"); err != nil {
		return nil, err
	}
	if err := conn.Send("HSET", key, field, balance.String()); err != nil {
		return nil, err
	}
	reply, err := conn.Do("EXEC")
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, redigo.ErrNil
	}
	return balance, nil
}

func (r *redisImpl) FindAll(c ctx.Ctx, recipient domain.Address) ([]*credit.Credit, error) {
	vals, err := r.redis.HGetAll(c, creditKey(recipient))
	if err == redis.ErrNotFound {
		return []*credit.Credit{}, nil
	} else if err != nil {
		c.WithField("err", err).Error("redis.HGetAll failed")
		return nil, err
	}
	return parseCredits(recipient, vals)
}

func (r *redisImpl) Take(c ctx.Ctx, recipient domain.Address) ([]*credit.Credit, error) {
	vals, err := redis.ByteMap(r.redis.ScriptDo(c, takeScript, creditKey(recipient)))
	if err != nil {
		c.WithField("err", err).Error("take credits failed")
		return nil, err
	}
	return parseCredits(recipient, vals)
}

func parseCredits(recipient domain.Address, vals map[string][]byte) ([]*credit.Credit, error) {
	res := []*credit.Credit{}
	for currency, raw := range vals {
		amount, ok := new(big.Int).SetString(string(raw), 10)
		if !ok {
			return nil, xerrors.Errorf("corrupt credit %s/%s: %q", recipient, currency, raw)
		}
		if amount.Sign() == 0 {
			continue
		}
		res = append(res, &credit.Credit{Recipient: recipient.ToLower(), Currency: domain.Address(currency), Amount: amount})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Currency < res[j].Currency })
	return res, nil
}
