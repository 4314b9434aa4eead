package repository

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/erc1155"
	"github.com/x-xyz/goauction/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type holdingImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) erc1155.HoldingRepo {
	return &holdingImpl{q}
}

func (h *holdingImpl) FindOne(c ctx.Ctx, id erc1155.HoldingId) (*erc1155.Holding, error) {
	var holding erc1155.Holding
	if err := h.q.FindOne(c, domain.TableERC1155Holdings, id, &holding); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &holding, nil
}

func (h *holdingImpl) FindAll(c ctx.Ctx, opts ...erc1155.FindAllOptionsFunc) ([]*erc1155.Holding, error) {
	options, err := erc1155.GetFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return nil, err
	}
	query := bson.M{}

	if options.Owner != nil && !options.Owner.IsEmpty() {
		query["owner"] = *options.Owner
	}

	if options.Address != nil {
		query["address"] = options.Address.ToLower()
	}

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	res := []*erc1155.Holding{}

	err = h.q.Search(c, domain.TableERC1155Holdings, 0, 0, "-balance", query, &res)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to Search")
		return nil, err
	}

	return res, nil
}

func (h *holdingImpl) Delete(c ctx.Ctx, id erc1155.HoldingId) error {
	if err := h.q.Remove(c, domain.TableERC1155Holdings, id); err != nil && err != query.ErrNotFound {
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}

func (h *holdingImpl) Increment(c ctx.Ctx, id erc1155.HoldingId, value int64) (*erc1155.Holding, error) {
	var res erc1155.Holding
	if err := h.q.Increment(c, domain.TableERC1155Holdings, id, &res, "balance", value); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"id":    id,
			"value": value,
		}).Error("q.Increment failed")
		return nil, err
	}
	return &res, nil
}
