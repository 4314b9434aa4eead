package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
	"github.com/x-xyz/goauction/stores/healthcheck/repository"
)

type stubRepo struct {
	res []hcdomain.Status
}

func (r *stubRepo) PingStores(context ctx.Ctx) []hcdomain.Status {
	return r.res
}

func TestCheck(t *testing.T) {
	req := require.New(t)

	res, err := New(repository.New(nil, nil)).Check(ctx.Background())
	req.NoError(err)
	req.Empty(res)

	res, err = New(&stubRepo{[]hcdomain.Status{{Store: "mongo"}}}).Check(ctx.Background())
	req.NoError(err)
	req.Len(res, 1)

	down := []hcdomain.Status{{Store: "mongo"}, {Store: "redis", Error: "connection refused"}}
	res, err = New(&stubRepo{down}).Check(ctx.Background())
	req.ErrorIs(err, domain.ErrUnhealthy)
	req.Equal(down, res)
}
