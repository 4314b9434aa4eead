package domain

import (
	"github.com/x-xyz/goauction/base/ctx"
)

// PayToken is a currency the engine accepts bids in. The native value is a
// paytoken too, registered under NativeCurrency.
type PayToken struct {
	Name     string  `json:"name" bson:"name" mapstructure:"name"`
	Symbol   string  `json:"symbol" bson:"symbol" mapstructure:"symbol"`
	Decimals int32   `json:"decimals" bson:"decimals" mapstructure:"decimals"`
	Address  Address `json:"address" bson:"address" mapstructure:"address"`
}

type PayTokenRepo interface {
	// FindOne returns ErrNotFound for unknown currencies
	FindOne(ctx.Ctx, Address) (*PayToken, error)
	FindAll(ctx.Ctx) ([]*PayToken, error)
	Upsert(ctx.Ctx, *PayToken) error
}
