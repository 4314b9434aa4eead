package repository

import (
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/service/query"
)

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) activity.Repo {
	return &activityRepo{q: q}
}

func (r *activityRepo) Insert(ctx bCtx.Ctx, a *activity.Activity) error {
	if err := r.q.Insert(ctx, domain.TableActivities, a); err != nil {
		ctx.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindAll(c bCtx.Ctx, optFns ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	opts, err := activity.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("activity.GetFindAllOptions failed")
		return nil, err
	}

	qry, err := mongoclient.MakeBsonM(opts)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = *opts.Offset
	}

	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []*activity.Activity{}

	if err := r.q.Search(c, domain.TableActivities, offset, limit, "-time", qry, &res); err != nil {
		c.WithField("err", err).WithField("query", qry).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}
