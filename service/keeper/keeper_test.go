package keeper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/backoff"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	mAuction "github.com/x-xyz/goauction/domain/auction/mocks"
)

const (
	collection = domain.Address("0x23c0221b2b66071afdcce502a103f18ec2666a12")
	keeperAddr = domain.Address("0x54a769173d97432a48371b022709117c090298e3")
)

type keeperSuite struct {
	suite.Suite

	uc *mAuction.UseCase
	k  *Keeper
}

func TestKeeperSuite(t *testing.T) {
	suite.Run(t, new(keeperSuite))
}

func (s *keeperSuite) SetupTest() {
	s.uc = mAuction.NewUseCase(s.T())
	s.k = New(&KeeperCfg{
		Auction:     s.uc,
		Address:     keeperAddr,
		Interval:    10 * time.Millisecond,
		BatchLimit:  3,
		Concurrency: 2,
		Backoff:     backoff.NewExponential(time.Millisecond, 10*time.Millisecond),
	})
}

func (s *keeperSuite) TestSweep() {
	c := ctx.Background()
	k1 := auction.NewKey(collection, "1")
	k2 := auction.NewKey(collection, "2")
	k3 := auction.NewKey(collection, "3")

	s.uc.On("FindExpired", mock.Anything, 3).Return([]auction.Key{k1, k2, k3}, nil).Once()
	s.uc.On("SettleAuction", mock.Anything, keeperAddr, k1).Return(&auction.Receipt{Key: k1, Settled: true}, nil).Once()
	s.uc.On("SettleAuction", mock.Anything, keeperAddr, k2).Return(nil, auction.ErrAuctionNotFound).Once()
	s.uc.On("SettleAuction", mock.Anything, keeperAddr, k3).Return(nil, auction.ErrSellerNotHolder).Once()

	found, settled, err := s.k.Sweep(c)
	s.NoError(err)
	s.Equal(3, found)
	s.Equal(1, settled)
}

func (s *keeperSuite) TestNextTick() {
	tests := []struct {
		desc    string
		found   int
		settled int
		want    time.Duration
	}{
		{"partial batch waits", 2, 2, 10 * time.Millisecond},
		{"full batch settling continues", 3, 1, 0},
		{"full batch settling nothing waits", 3, 0, 10 * time.Millisecond},
	}
	for _, t := range tests {
		s.Equal(t.want, s.k.nextTick(t.found, t.settled), t.desc)
	}
}

func (s *keeperSuite) TestSweepNothing() {
	s.uc.On("FindExpired", mock.Anything, 3).Return([]auction.Key{}, nil).Once()
	found, settled, err := s.k.Sweep(ctx.Background())
	s.NoError(err)
	s.Equal(0, found)
	s.Equal(0, settled)
}

func (s *keeperSuite) TestSweepRepoError() {
	errRepo := errors.New("mongo down")
	s.uc.On("FindExpired", mock.Anything, 3).Return(nil, errRepo).Once()
	_, _, err := s.k.Sweep(ctx.Background())
	s.Equal(errRepo, err)
}

func (s *keeperSuite) TestStartStopsOnCancel() {
	c, cancel := ctx.WithCancel(ctx.Background())
	swept := make(chan struct{}, 16)
	s.uc.On("FindExpired", mock.Anything, 3).Return([]auction.Key{}, nil).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})

	s.k.Start(c)
	<-swept
	<-swept
	cancel()

	done := make(chan struct{})
	go func() {
		s.k.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("keeper did not stop")
	}
}

func (s *keeperSuite) TestStartRecoversFromPanic() {
	c, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()
	s.uc.On("FindExpired", mock.Anything, 3).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil, nil).Once()
	swept := make(chan struct{}, 16)
	s.uc.On("FindExpired", mock.Anything, 3).Return([]auction.Key{}, nil).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})

	s.k.Start(c)
	select {
	case <-swept:
	case <-time.After(time.Second):
		s.Fail("keeper did not restart")
	}
	cancel()
	s.k.Wait()
}
