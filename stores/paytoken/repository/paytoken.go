package repository

import (
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type payTokenMongoRepo struct {
	q query.Mongo
}

func NewPayTokenRepo(q query.Mongo) domain.PayTokenRepo {
	return &payTokenMongoRepo{
		q: q,
	}
}

func (r *payTokenMongoRepo) FindOne(ctx bCtx.Ctx, tokenAddress domain.Address) (*domain.PayToken, error) {
	payToken := &domain.PayToken{}
	if err := r.q.FindOne(ctx, domain.TablePayTokens, bson.M{"address": tokenAddress.ToLower()}, payToken); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return payToken, nil
}

func (r *payTokenMongoRepo) FindAll(ctx bCtx.Ctx) ([]*domain.PayToken, error) {
	res := []*domain.PayToken{}
	if err := r.q.Search(ctx, domain.TablePayTokens, 0, 0, "symbol", bson.M{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *payTokenMongoRepo) Upsert(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	payToken.Address = payToken.Address.ToLower()
	selector := bson.M{"address": payToken.Address}
	if err := r.q.Upsert(ctx, domain.TablePayTokens, selector, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": payToken.Address,
		}).Error("failed to update")
		return err
	}
	return nil
}
