package healthcheck

import (
	"github.com/core-launch/goapi/base/ctx"
)

type HealthCheckRepo interface {
	PingRPC(c ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}
