package repository

import (
	"sort"
	"sync"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type payTokenMemoryRepo struct {
	lock   sync.RWMutex
	tokens map[domain.Address]domain.PayToken
}

// NewPayTokenMemoryRepo serves the paytokens listed in config
func NewPayTokenMemoryRepo(tokens ...domain.PayToken) domain.PayTokenRepo {
	r := &payTokenMemoryRepo{tokens: map[domain.Address]domain.PayToken{}}
	for _, t := range tokens {
		t.Address = t.Address.ToLower()
		r.tokens[t.Address] = t
	}
	return r
}

func (r *payTokenMemoryRepo) FindOne(ctx bCtx.Ctx, tokenAddress domain.Address) (*domain.PayToken, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	t, ok := r.tokens[tokenAddress.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *payTokenMemoryRepo) FindAll(ctx bCtx.Ctx) ([]*domain.PayToken, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	res := make([]*domain.PayToken, 0, len(r.tokens))
	for _, t := range r.tokens {
		t := t
		res = append(res, &t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Symbol < res[j].Symbol })
	return res, nil
}

func (r *payTokenMemoryRepo) Upsert(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	t := *payToken
	t.Address = t.Address.ToLower()
	r.tokens[t.Address] = t
	return nil
}
