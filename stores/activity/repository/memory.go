package repository

import (
	"sync"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/activity"
)

type memoryRepo struct {
	lock sync.RWMutex
	// oldest first
	activities []activity.Activity
}

func NewMemoryRepo() activity.Repo {
	return &memoryRepo{}
}

func (r *memoryRepo) Insert(ctx bCtx.Ctx, a *activity.Activity) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.activities = append(r.activities, *a)
	return nil
}

func (r *memoryRepo) FindAll(c bCtx.Ctx, optFns ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	matched := []*activity.Activity{}
	for i := len(r.activities) - 1; i >= 0; i-- {
		a := r.activities[i]
		if opts.Collection != nil && a.Collection != *opts.Collection {
			continue
		}
		if opts.TokenId != nil && a.TokenId != *opts.TokenId {
			continue
		}
		if opts.Actor != nil && a.Actor != *opts.Actor {
			continue
		}
		if opts.Type != nil && a.Type != *opts.Type {
			continue
		}
		matched = append(matched, &a)
	}

	if opts.Offset != nil {
		if *opts.Offset >= len(matched) {
			return []*activity.Activity{}, nil
		}
		matched = matched[*opts.Offset:]
	}
	if opts.Limit != nil && *opts.Limit > 0 && *opts.Limit < len(matched) {
		matched = matched[:*opts.Limit]
	}
	return matched, nil
}
