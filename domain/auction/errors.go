package auction

import "github.com/x-xyz/goauction/domain"

var (
	ErrPriceZero          = domain.NewError(domain.ErrValidation, "Price cannot be 0")
	ErrMinPriceTooHigh    = domain.NewError(domain.ErrValidation, "MinPrice > 80% of buyNowPrice")
	ErrBidIncreaseTooLow  = domain.NewError(domain.ErrValidation, "Bid increase percentage too low")
	ErrFeesExceedMaximum  = domain.NewError(domain.ErrValidation, "Fee percentages exceed maximum")
	ErrFeeLengthMismatch  = domain.NewError(domain.ErrValidation, "Recipients != percentages")
	ErrNegativeFee        = domain.NewError(domain.ErrValidation, "Fee percentage cannot be negative")
	ErrQuantityZero       = domain.NewError(domain.ErrValidation, "Quantity must be positive")
	ErrBidPeriodZero      = domain.NewError(domain.ErrValidation, "Bid period must be positive")
	ErrCurrencyNotAllowed = domain.NewError(domain.ErrValidation, "Currency not supported")
	ErrEmptyRecipient     = domain.NewError(domain.ErrValidation, "Recipient cannot be empty")

	ErrNotItemOwner      = domain.NewError(domain.ErrAuthorization, "Sender doesn't own NFT")
	ErrOnlySeller        = domain.NewError(domain.ErrAuthorization, "Only nft seller")
	ErrNotNftOwner       = domain.NewError(domain.ErrAuthorization, "Not NFT owner")
	ErrOnlyWhitelisted   = domain.NewError(domain.ErrAuthorization, "Only the whitelisted buyer")
	ErrAlreadyStarted    = domain.NewError(domain.ErrState, "Auction already started by owner")
	ErrNotOver           = domain.NewError(domain.ErrState, "Auction is not yet over")
	ErrEnded             = domain.NewError(domain.ErrState, "Auction has ended")
	ErrHasBid            = domain.NewError(domain.ErrState, "The auction has a valid bid made")
	ErrNotASale          = domain.NewError(domain.ErrState, "Not a sale")
	ErrNotForSale        = domain.NewError(domain.ErrState, "Not applicable for a sale")
	ErrSellerNotHolder   = domain.NewError(domain.ErrState, "Seller no longer holds NFT")
	ErrCurrencyMismatch  = domain.NewError(domain.ErrCurrencyMismatch, "Bid to be in specified ERC20/Eth")
	ErrNotEnoughFunds    = domain.NewError(domain.ErrInsufficientBid, "Not enough funds to bid on NFT")
	ErrZeroPayout        = domain.NewError(domain.ErrInsufficientBid, "cannot payout 0 bid")
	ErrAuctionNotFound   = domain.NewError(domain.ErrNotFound, "Auction not found")
	ErrItemNotDeposited  = domain.NewError(domain.ErrNotFound, "NFT not deposited")
	ErrBidCollectFailure = domain.NewError(domain.ErrPayment, "Failed to collect bid funds")
)
