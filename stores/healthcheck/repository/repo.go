package repository

import (
	"time"

	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/domain"
	hcdomain "github.com/core-launch/goapi/domain/healthcheck"
	"github.com/core-launch/goapi/service/chain"
)

type impl struct {
	chainClient chain.Client
	chainId     domain.ChainId
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(chainClient chain.Client, chainId domain.ChainId) hcdomain.HealthCheckRepo {
	return &impl{
		chainClient: chainClient,
		chainId:     chainId,
	}
}

func (im *impl) PingRPC(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.chainClient.BlockNumber(ctx, im.chainId); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}
