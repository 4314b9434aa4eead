package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/auction"
)

type memoryImpl struct {
	lock     sync.RWMutex
	auctions map[auction.Key]*auction.Auction
	seq      int64
}

func NewMemoryRepo() auction.Repo {
	return &memoryImpl{auctions: map[auction.Key]*auction.Auction{}}
}

func (m *memoryImpl) FindOne(c ctx.Ctx, key auction.Key) (*auction.Auction, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	a, ok := m.auctions[auction.NewKey(key.Collection, key.TokenId)]
	if !ok {
		return nil, auction.ErrAuctionNotFound
	}
	return a.Clone(), nil
}

func (m *memoryImpl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	m.lock.RLock()
	res := []*auction.Auction{}
	for _, a := range m.auctions {
		if options.Seller != nil && a.Seller.ToLower() != *options.Seller {
			continue
		}
		if options.EndedBefore != nil && (a.EndTime == 0 || a.EndTime > *options.EndedBefore) {
			continue
		}
		if options.SellerHolding != nil && *options.SellerHolding && !a.IsSellerActive() {
			continue
		}
		res = append(res, a.Clone())
	}
	m.lock.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if res[i].Id != res[j].Id {
			return res[i].Id < res[j].Id
		}
		return res[i].Key.String() < res[j].Key.String()
	})

	if options.Offset != nil {
		if *options.Offset >= len(res) {
			return []*auction.Auction{}, nil
		}
		res = res[*options.Offset:]
	}
	if options.Limit != nil && *options.Limit > 0 && *options.Limit < len(res) {
		res = res[:*options.Limit]
	}
	return res, nil
}

func (m *memoryImpl) Upsert(c ctx.Ctx, a *auction.Auction) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	stored := a.Clone()
	stored.Key = auction.NewKey(a.Collection, a.TokenId)
	m.auctions[stored.Key] = stored
	return nil
}

func (m *memoryImpl) Delete(c ctx.Ctx, key auction.Key) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	key = auction.NewKey(key.Collection, key.TokenId)
	if _, ok := m.auctions[key]; !ok {
		return auction.ErrAuctionNotFound
	}
	delete(m.auctions, key)
	return nil
}

func (m *memoryImpl) NextId(c ctx.Ctx) (int64, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.seq++
	return m.seq, nil
}
