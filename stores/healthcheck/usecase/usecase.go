package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) ([]hcdomain.Status, error) {
	res := im.repo.PingStores(context)
	for _, s := range res {
		if !s.Healthy() {
			return res, domain.ErrUnhealthy
		}
	}
	return res, nil
}
