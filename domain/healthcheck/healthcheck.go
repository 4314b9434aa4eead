package healthcheck

import (
	"github.com/x-xyz/goauction/base/ctx"
)

// Status is the outcome of pinging one backing store
type Status struct {
	Store string `json:"store"`
	Error string `json:"error,omitempty"`
}

func (s Status) Healthy() bool {
	return len(s.Error) == 0
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check returns ErrUnhealthy when any store failed its ping
	Check(context ctx.Ctx) ([]Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingStores(context ctx.Ctx) []Status
}
