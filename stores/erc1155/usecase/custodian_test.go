package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/erc1155"
	mErc1155 "github.com/x-xyz/goauction/domain/erc1155/mocks"
	"github.com/x-xyz/goauction/stores/erc1155/repository"
)

const (
	mockCollection = domain.Address("0xabc123")
	mockSeller     = domain.Address("0x5566")
	mockBuyer      = domain.Address("0x7788")
)

type custodianSuite struct {
	suite.Suite

	cust erc1155.Custodian
}

func TestCustodianSuite(t *testing.T) {
	suite.Run(t, new(custodianSuite))
}

func (s *custodianSuite) SetupTest() {
	s.cust = NewCustodian(&CustodianCfg{Holding: repository.NewHoldingMemoryRepo()})
}

func (s *custodianSuite) TestOwnerOf() {
	c := ctx.Background()
	_, err := s.cust.OwnerOf(c, mockCollection, "1")
	s.Equal(domain.ErrNotFound, err)

	s.Require().NoError(s.cust.Deposit(c, mockCollection, "1", mockSeller, 5))
	s.Require().NoError(s.cust.Deposit(c, mockCollection, "1", mockBuyer, 2))

	owner, err := s.cust.OwnerOf(c, "0xABC123", "1")
	s.NoError(err)
	s.Equal(mockSeller, owner)
}

func (s *custodianSuite) TestTransfer() {
	c := ctx.Background()
	s.Require().NoError(s.cust.Deposit(c, mockCollection, "1", mockSeller, 3))

	hooked := 0
	s.cust.Subscribe(func(c ctx.Ctx, t erc1155.Transfer) { hooked++ })

	s.Equal(erc1155.ErrInsufficientBalance, s.cust.Transfer(c, erc1155.Transfer{Address: mockCollection, TokenId: "1", From: mockSeller, To: mockBuyer, Value: 4}))
	s.Equal(erc1155.ErrInvalidValue, s.cust.Transfer(c, erc1155.Transfer{Address: mockCollection, TokenId: "1", From: mockSeller, To: mockBuyer, Value: 0}))

	s.NoError(s.cust.Transfer(c, erc1155.Transfer{Address: mockCollection, TokenId: "1", From: mockSeller, To: mockBuyer, Value: 3}))
	s.Equal(0, hooked)

	balance, err := s.cust.BalanceOf(c, mockCollection, "1", mockSeller)
	s.NoError(err)
	s.Equal(int64(0), balance)
	balance, err = s.cust.BalanceOf(c, mockCollection, "1", mockBuyer)
	s.NoError(err)
	s.Equal(int64(3), balance)

	owner, err := s.cust.OwnerOf(c, mockCollection, "1")
	s.NoError(err)
	s.Equal(mockBuyer, owner)
}

func (s *custodianSuite) TestExternalTransferFiresHooks() {
	c := ctx.Background()
	s.Require().NoError(s.cust.Deposit(c, mockCollection, "1", mockSeller, 1))

	var seen []erc1155.Transfer
	s.cust.Subscribe(func(c ctx.Ctx, t erc1155.Transfer) { seen = append(seen, t) })

	s.NoError(s.cust.ExternalTransfer(c, erc1155.Transfer{Address: "0xABC123", TokenId: "1", From: mockSeller, To: mockBuyer, Value: 1}))
	s.Require().Len(seen, 1)
	s.Equal(mockCollection, seen[0].Address)
	s.Equal(mockBuyer, seen[0].To)

	s.Error(s.cust.ExternalTransfer(c, erc1155.Transfer{Address: mockCollection, TokenId: "1", From: mockSeller, To: mockBuyer, Value: 1}))
	s.Len(seen, 1)
}

func (s *custodianSuite) TestRepoFailure() {
	c := ctx.Background()
	holding := &mErc1155.HoldingRepo{}
	defer holding.AssertExpectations(s.T())
	cust := NewCustodian(&CustodianCfg{Holding: holding})

	mockErr := errors.New("mongo down")
	holding.On("FindAll", mock.Anything, mock.Anything).Return(nil, mockErr).Once()
	_, err := cust.OwnerOf(c, mockCollection, "1")
	s.Equal(mockErr, err)

	holding.On("FindOne", mock.Anything, erc1155.NewHoldingId(mockCollection, "1", mockSeller)).Return(&erc1155.Holding{Balance: 2}, nil).Once()
	holding.On("Increment", mock.Anything, erc1155.NewHoldingId(mockCollection, "1", mockSeller), int64(-1)).Return(nil, mockErr).Once()
	err = cust.Transfer(c, erc1155.Transfer{Address: mockCollection, TokenId: "1", From: mockSeller, To: mockBuyer, Value: 1})
	s.True(errors.Is(err, mockErr))
}
