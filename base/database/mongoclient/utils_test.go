package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMakeBsonM(t *testing.T) {
	type filter struct {
		Seller  *string `bson:"seller,omitempty"`
		Bidder  *string `bson:"bidder,omitempty"`
		Minimum *int    `bson:"minBid,omitempty"`
		Limit   *int    `bson:"-"`
		Note    string  `bson:"note"`
	}

	seller := ""
	minimum := 10
	limit := 5
	f := &filter{
		Seller:  &seller,
		Minimum: &minimum,
		Limit:   &limit,
		Note:    "early",
	}

	qry, err := MakeBsonM(f)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"seller": "",
			"minBid": 10,
			// nil bidder and skipped limit are left out
			"note": "early",
		},
		qry,
	)
}

func TestMakeBsonMEmpty(t *testing.T) {
	type filter struct {
		Seller *string `bson:"seller,omitempty"`
	}

	qry, err := MakeBsonM(filter{})

	assert.NoError(t, err)
	assert.Equal(t, bson.M{}, qry)
}
