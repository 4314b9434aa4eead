package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/erc1155"
)

type holdingMemoryImpl struct {
	lock     sync.RWMutex
	holdings map[erc1155.HoldingId]int64
}

func NewHoldingMemoryRepo() erc1155.HoldingRepo {
	return &holdingMemoryImpl{holdings: map[erc1155.HoldingId]int64{}}
}

func normalize(id erc1155.HoldingId) erc1155.HoldingId {
	return erc1155.NewHoldingId(id.Address, id.TokenId, id.Owner)
}

func (h *holdingMemoryImpl) FindOne(c ctx.Ctx, id erc1155.HoldingId) (*erc1155.Holding, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	id = normalize(id)
	balance, ok := h.holdings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &erc1155.Holding{Address: id.Address, TokenId: id.TokenId, Owner: id.Owner, Balance: balance}, nil
}

func (h *holdingMemoryImpl) FindAll(c ctx.Ctx, opts ...erc1155.FindAllOptionsFunc) ([]*erc1155.Holding, error) {
	options, err := erc1155.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	h.lock.RLock()
	defer h.lock.RUnlock()
	res := []*erc1155.Holding{}
	for id, balance := range h.holdings {
		if options.Owner != nil && !options.Owner.IsEmpty() && id.Owner != *options.Owner {
			continue
		}
		if options.Address != nil && id.Address != *options.Address {
			continue
		}
		if options.TokenId != nil && id.TokenId != *options.TokenId {
			continue
		}
		res = append(res, &erc1155.Holding{Address: id.Address, TokenId: id.TokenId, Owner: id.Owner, Balance: balance})
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Balance != res[j].Balance {
			return res[i].Balance > res[j].Balance
		}
		return res[i].Owner < res[j].Owner
	})
	return res, nil
}

func (h *holdingMemoryImpl) Delete(c ctx.Ctx, id erc1155.HoldingId) error {
	h.lock.Lock()
	defer h.lock.Unlock()
	id = normalize(id)
	if _, ok := h.holdings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(h.holdings, id)
	return nil
}

func (h *holdingMemoryImpl) Increment(c ctx.Ctx, id erc1155.HoldingId, value int64) (*erc1155.Holding, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	id = normalize(id)
	h.holdings[id] += value
	return &erc1155.Holding{Address: id.Address, TokenId: id.TokenId, Owner: id.Owner, Balance: h.holdings[id]}, nil
}
