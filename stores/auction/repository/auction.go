package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

const sequenceName = "auction"

// auctionDoc keeps amounts as decimal strings, they overflow every bson number type
type auctionDoc struct {
	Collection       domain.Address   `bson:"collection"`
	TokenId          domain.TokenId   `bson:"tokenId"`
	Id               int64            `bson:"id"`
	Seller           domain.Address   `bson:"seller"`
	Holder           domain.Address   `bson:"holder"`
	Quantity         int64            `bson:"quantity"`
	Currency         domain.Address   `bson:"currency"`
	MinPrice         string           `bson:"minPrice"`
	BuyNowPrice      string           `bson:"buyNowPrice"`
	BidIncreaseBps   int64            `bson:"bidIncreaseBps"`
	BidPeriod        int64            `bson:"bidPeriod"`
	EndTime          int64            `bson:"endTime"`
	HighestBid       string           `bson:"highestBid"`
	HighestBidder    domain.Address   `bson:"highestBidder"`
	Recipient        domain.Address   `bson:"recipient"`
	WhitelistedBuyer domain.Address   `bson:"whitelistedBuyer"`
	IsSale           bool             `bson:"isSale"`
	FeeRecipients    []domain.Address `bson:"feeRecipients"`
	FeeBps           []int64          `bson:"feeBps"`
	CreatedAt        time.Time        `bson:"createdAt"`
	UpdatedAt        time.Time        `bson:"updatedAt"`
}

type sequenceDoc struct {
	Name  string `bson:"name"`
	Value int64  `bson:"value"`
}

func toDoc(a *auction.Auction) *auctionDoc {
	return &auctionDoc{
		Collection:       a.Collection.ToLower(),
		TokenId:          a.TokenId,
		Id:               a.Id,
		Seller:           a.Seller,
		Holder:           a.Holder,
		Quantity:         a.Quantity,
		Currency:         a.Currency,
		MinPrice:         domain.AmountString(a.MinPrice),
		BuyNowPrice:      domain.AmountString(a.BuyNowPrice),
		BidIncreaseBps:   a.BidIncreaseBps,
		BidPeriod:        a.BidPeriod,
		EndTime:          a.EndTime,
		HighestBid:       domain.AmountString(a.HighestBid),
		HighestBidder:    a.HighestBidder,
		Recipient:        a.Recipient,
		WhitelistedBuyer: a.WhitelistedBuyer,
		IsSale:           a.IsSale,
		FeeRecipients:    a.FeeRecipients,
		FeeBps:           a.FeeBps,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (d *auctionDoc) toAuction() (*auction.Auction, error) {
	amounts, err := domain.ToBigInt([]string{d.MinPrice, d.BuyNowPrice, d.HighestBid})
	if err != nil {
		return nil, xerrors.Errorf("auction %s:%s: %w", d.Collection, d.TokenId, err)
	}
	return &auction.Auction{
		Key:              auction.Key{Collection: d.Collection, TokenId: d.TokenId},
		Id:               d.Id,
		Seller:           d.Seller,
		Holder:           d.Holder,
		Quantity:         d.Quantity,
		Currency:         d.Currency,
		MinPrice:         amounts[0],
		BuyNowPrice:      amounts[1],
		BidIncreaseBps:   d.BidIncreaseBps,
		BidPeriod:        d.BidPeriod,
		EndTime:          d.EndTime,
		HighestBid:       amounts[2],
		HighestBidder:    d.HighestBidder,
		Recipient:        d.Recipient,
		WhitelistedBuyer: d.WhitelistedBuyer,
		IsSale:           d.IsSale,
		FeeRecipients:    d.FeeRecipients,
		FeeBps:           d.FeeBps,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

func keySelector(key auction.Key) bson.M {
	return bson.M{"collection": key.Collection.ToLower(), "tokenId": key.TokenId}
}

type mongoImpl struct {
	q query.Mongo
}

func NewMongoRepo(q query.Mongo) auction.Repo {
	return &mongoImpl{q: q}
}

func (r *mongoImpl) FindOne(c ctx.Ctx, key auction.Key) (*auction.Auction, error) {
	doc := &auctionDoc{}
	if err := r.q.FindOne(c, domain.TableAuctions, keySelector(key), doc); err == query.ErrNotFound {
		return nil, auction.ErrAuctionNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return doc.toAuction()
}

func (r *mongoImpl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}
	if options.EndedBefore != nil {
		qry["endTime"] = bson.M{"$gt": 0, "$lte": *options.EndedBefore}
	}
	if options.SellerHolding != nil && *options.SellerHolding {
		qry["$expr"] = bson.M{"$eq": bson.A{"$holder", "$seller"}}
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	docs := []*auctionDoc{}
	if err := r.q.Search(c, domain.TableAuctions, offset, limit, "id", qry, &docs); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}

	res := make([]*auction.Auction, 0, len(docs))
	for _, d := range docs {
		a, err := d.toAuction()
		if err != nil {
			c.WithField("err", err).Error("toAuction failed")
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (r *mongoImpl) Upsert(c ctx.Ctx, a *auction.Auction) error {
	if err := r.q.Upsert(c, domain.TableAuctions, keySelector(a.Key), toDoc(a)); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": a.Key,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *mongoImpl) Delete(c ctx.Ctx, key auction.Key) error {
	if err := r.q.Remove(c, domain.TableAuctions, keySelector(key)); err == query.ErrNotFound {
		return auction.ErrAuctionNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}

func (r *mongoImpl) NextId(c ctx.Ctx) (int64, error) {
	seq := sequenceDoc{}
	if err := r.q.Increment(c, domain.TableAuctionSequence, bson.M{"name": sequenceName}, &seq, "value", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return seq.Value, nil
}

// Indexes backing the queries above
func Indexes() []mongoclient.Index {
	return []mongoclient.Index{
		{Table: string(domain.TableAuctions), Keys: bson.D{{Key: "collection", Value: 1}, {Key: "tokenId", Value: 1}}, Unique: true},
		{Table: string(domain.TableAuctions), Keys: bson.D{{Key: "seller", Value: 1}}},
		{Table: string(domain.TableAuctions), Keys: bson.D{{Key: "endTime", Value: 1}}},
		{Table: string(domain.TableAuctionSequence), Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},
	}
}
