package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

func (im *impl) Get(c ctx.Ctx, key auction.Key) (*auction.Auction, error) {
	return im.repo.FindOne(c, auction.NewKey(key.Collection, key.TokenId))
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	return im.repo.FindAll(c, opts...)
}

// FindExpired skips records whose seller moved the item out, settling them
// can only fail until the seller configures again
func (im *impl) FindExpired(c ctx.Ctx, limit int) ([]auction.Key, error) {
	now := im.clock.Now()
	auctions, err := im.repo.FindAll(c,
		auction.WithEndedBefore(now.Unix()),
		auction.WithSellerHolding(),
		auction.WithPagination(0, limit),
	)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	keys := make([]auction.Key, 0, len(auctions))
	for _, a := range auctions {
		if a.IsSellerActive() && a.HasBid() {
			keys = append(keys, a.Key)
		}
	}
	return keys, nil
}

func (im *impl) OwnerOf(c ctx.Ctx, key auction.Key) (domain.Address, error) {
	owner, err := im.custodian.OwnerOf(c, key.Collection, key.TokenId)
	if err == domain.ErrNotFound {
		return "", auction.ErrItemNotDeposited
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Error("custodian.OwnerOf failed")
		return "", err
	}
	return owner, nil
}
