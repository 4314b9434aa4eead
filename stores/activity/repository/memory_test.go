package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
)

type memorySuite struct {
	suite.Suite
	repo activity.Repo
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (s *memorySuite) SetupTest() {
	s.repo = NewMemoryRepo()
}

func (s *memorySuite) insert(t activity.Type, actor domain.Address, tokenId domain.TokenId, ts int64) {
	a, err := activity.New(t, actor, big.NewInt(ts), domain.NativeCurrency, time.Unix(ts, 0))
	s.Require().NoError(err)
	a.Collection = "0xabc"
	a.TokenId = tokenId
	s.Require().NoError(s.repo.Insert(ctx.Background(), a))
}

func (s *memorySuite) TestFindAll() {
	c := ctx.Background()
	s.insert(activity.TypeAuctionCreated, "0xSeller", "1", 1)
	s.insert(activity.TypeBidMade, "0xbidder", "1", 2)
	s.insert(activity.TypeBidMade, "0xbidder", "2", 3)
	s.insert(activity.TypeSettled, "0xbidder", "1", 4)

	all, err := s.repo.FindAll(c)
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Equal(activity.TypeSettled, all[0].Type)
	s.Equal(domain.Address("0xseller"), all[3].Actor)

	bids, err := s.repo.FindAll(c, activity.WithType(activity.TypeBidMade), activity.WithItem("0xABC", "1"))
	s.Require().NoError(err)
	s.Require().Len(bids, 1)
	s.Equal("2", bids[0].Amount)

	page, err := s.repo.FindAll(c, activity.WithActor("0xBIDDER"), activity.WithPagination(1, 1))
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(activity.TypeBidMade, page[0].Type)
	s.Equal(domain.TokenId("2"), page[0].TokenId)

	empty, err := s.repo.FindAll(c, activity.WithPagination(10, 1))
	s.NoError(err)
	s.Empty(empty)

	_, err = s.repo.FindAll(c, activity.WithPagination(-1, 1))
	s.Equal(domain.ErrBadParamInput, err)
}
