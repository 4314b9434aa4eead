package repository

import (
	"math/big"
	"sort"
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/credit"
)

type memoryImpl struct {
	lock    sync.Mutex
	credits map[domain.Address]map[domain.Address]*big.Int
}

func NewMemoryRepo() credit.Repo {
	return &memoryImpl{credits: map[domain.Address]map[domain.Address]*big.Int{}}
}

func (m *memoryImpl) Add(c ctx.Ctx, recipient domain.Address, currency domain.Address, amount *big.Int) (*credit.Credit, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	recipient, currency = recipient.ToLower(), currency.ToLower()
	balances, ok := m.credits[recipient]
	if !ok {
		balances = map[domain.Address]*big.Int{}
		m.credits[recipient] = balances
	}
	balance := domain.CopyAmount(balances[currency])
	balance.Add(balance, amount)
	balances[currency] = balance
	return &credit.Credit{Recipient: recipient, Currency: currency, Amount: domain.CopyAmount(balance)}, nil
}

func (m *memoryImpl) FindAll(c ctx.Ctx, recipient domain.Address) ([]*credit.Credit, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return toCredits(recipient.ToLower(), m.credits[recipient.ToLower()]), nil
}

func (m *memoryImpl) Take(c ctx.Ctx, recipient domain.Address) ([]*credit.Credit, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	recipient = recipient.ToLower()
	res := toCredits(recipient, m.credits[recipient])
	delete(m.credits, recipient)
	return res, nil
}

func toCredits(recipient domain.Address, balances map[domain.Address]*big.Int) []*credit.Credit {
	res := []*credit.Credit{}
	for currency, amount := range balances {
		if amount.Sign() == 0 {
			continue
		}
		res = append(res, &credit.Credit{Recipient: recipient, Currency: currency, Amount: domain.CopyAmount(amount)})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Currency < res[j].Currency })
	return res
}
