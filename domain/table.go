package domain

type Table string

const (
	TableAuctions        Table = "auctions"
	TableAuctionSequence Table = "auction_sequences"
	TableActivities      Table = "auction_activities"
	TableERC1155Holdings Table = "erc1155_holdings"
	TablePayTokens       Table = "paytokens"
)
