package keeper

import (
	"errors"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/goauction/base/backoff"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/goroutine"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

var met = metrics.New("keeper")

const (
	defaultInterval    = 10 * time.Second
	defaultBatchLimit  = 100
	defaultConcurrency = 8
)

type KeeperCfg struct {
	Auction auction.UseCase
	// Address is the caller recorded on keeper settlements
	Address     domain.Address
	Interval    time.Duration
	BatchLimit  int
	Concurrency int
	Backoff     *backoff.Backoff
}

// Keeper settles auctions whose bid period is over
type Keeper struct {
	auction     auction.UseCase
	address     domain.Address
	interval    time.Duration
	batchLimit  int
	concurrency int
	backoff     *backoff.Backoff
	stoppedCh   chan interface{}
}

func New(cfg *KeeperCfg) *Keeper {
	k := &Keeper{
		auction:     cfg.Auction,
		address:     cfg.Address,
		interval:    cfg.Interval,
		batchLimit:  cfg.BatchLimit,
		concurrency: cfg.Concurrency,
		backoff:     cfg.Backoff,
		stoppedCh:   make(chan interface{}),
	}
	if k.interval <= 0 {
		k.interval = defaultInterval
	}
	if k.batchLimit <= 0 {
		k.batchLimit = defaultBatchLimit
	}
	if k.concurrency <= 0 {
		k.concurrency = defaultConcurrency
	}
	if k.backoff == nil {
		k.backoff = backoff.NewExponential(time.Second, time.Minute)
	}
	return k
}

// Start runs the sweep loop until ctx is done, restarting it after a panic
func (k *Keeper) Start(ctx bCtx.Ctx) {
	go func() {
		defer close(k.stoppedCh)
		for {
			if p := <-goroutine.RecoverableGo(ctx, func() { k.loop(ctx) }); p == nil {
				return
			}
			met.BumpSum("panic", 1)
			if err := k.backoff.Backoff(ctx); err != nil {
				return
			}
		}
	}()
}

func (k *Keeper) Wait() {
	<-k.stoppedCh
}

func (k *Keeper) loop(ctx bCtx.Ctx) {
	nextTick := time.Second * 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(nextTick):
			found, settled, err := k.Sweep(ctx)
			if err != nil {
				if err := k.backoff.Backoff(ctx); err != nil {
					return
				}
				nextTick = 0
				continue
			}
			k.backoff.Reset()
			nextTick = k.nextTick(found, settled)
		}
	}
}

// nextTick sweeps again right away only while full batches keep settling,
// a batch that settled nothing would come back unchanged
func (k *Keeper) nextTick(found, settled int) time.Duration {
	if found >= k.batchLimit && settled > 0 {
		return 0
	}
	return k.interval
}

// Sweep settles one batch of expired auctions, returning how many were found
// and how many got settled
func (k *Keeper) Sweep(ctx bCtx.Ctx) (int, int, error) {
	defer met.BumpTime("sweep.time").End()

	keys, err := k.auction.FindExpired(ctx, k.batchLimit)
	if err != nil {
		ctx.WithField("err", err).Error("auction.FindExpired failed")
		return 0, 0, err
	}
	if len(keys) == 0 {
		return 0, 0, nil
	}

	b := goroutines.NewBatch(k.concurrency, goroutines.WithBatchSize(len(keys)))
	defer b.Close()
	for i := 0; i < len(keys); i++ {
		key := keys[i]
		b.Queue(func() (interface{}, error) {
			return k.auction.SettleAuction(ctx, k.address, key)
		})
	}
	b.QueueComplete()

	settled := 0
	for ret := range b.Results() {
		err := ret.Error()
		switch {
		case err == nil:
			settled++
		case errors.Is(err, auction.ErrAuctionNotFound), errors.Is(err, auction.ErrNotOver):
			// settled by someone else in between
		default:
			ctx.WithFields(log.Fields{
				"err": err,
			}).Warn("auction.SettleAuction failed")
		}
	}

	met.BumpSum("settled", float64(settled))
	met.BumpSum("failed", float64(len(keys)-settled))
	ctx.WithFields(log.Fields{
		"found":   len(keys),
		"settled": settled,
	}).Info("keeper sweep done")
	return len(keys), settled, nil
}
