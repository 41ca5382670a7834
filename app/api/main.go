package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/core-launch/goapi/base/ctx"
	"github.com/core-launch/goapi/base/log"
	bValidator "github.com/core-launch/goapi/base/validator"
	"github.com/core-launch/goapi/domain"
	mmiddleware "github.com/core-launch/goapi/middleware"
	"github.com/core-launch/goapi/service/chain"
	"github.com/core-launch/goapi/service/chain/contract"
	walletService "github.com/core-launch/goapi/service/wallet"
	auction_delivery "github.com/core-launch/goapi/stores/auction/delivery/http"
	auction_repository "github.com/core-launch/goapi/stores/auction/repository"
	auction_usecase "github.com/core-launch/goapi/stores/auction/usecase"
	collection_delivery "github.com/core-launch/goapi/stores/collection/delivery/http"
	collection_repository "github.com/core-launch/goapi/stores/collection/repository"
	collection_usecase "github.com/core-launch/goapi/stores/collection/usecase"
	hc_delivery "github.com/core-launch/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/core-launch/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/core-launch/goapi/stores/healthcheck/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:        rpcs,
		TxWaitTimeout:  viper.GetDuration("chain.txWaitTimeout"),
		MaxConcurrency: viper.GetInt("chain.maxConcurrency"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))

	signer, err := walletService.New(&walletService.Cfg{
		PrivateKey: viper.GetString("wallet.privateKey"),
		ChainId:    domain.ChainId(viper.GetInt32("wallet.chainId")),
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init wallet signer")
	}

	// init contract gateways
	gasLimits := make(map[string]uint64)
	for method := range viper.GetStringMap("contracts.gasLimits") {
		gasLimits[method] = uint64(viper.GetInt64(fmt.Sprintf("contracts.gasLimits.%s", method)))
	}
	biddingService := contract.NewBidding(chainService, &contract.BiddingCfg{
		Addresses: map[domain.ChainId]domain.Address{
			chainId: domain.Address(viper.GetString("contracts.bidding")).ToLower(),
		},
		GasLimits: gasLimits,
	})
	factoryService := contract.NewFactory(chainService, &contract.FactoryCfg{
		Addresses: map[domain.ChainId]domain.Address{
			chainId: domain.Address(viper.GetString("contracts.factory")).ToLower(),
		},
		GasLimits: gasLimits,
	})
	erc721Service := contract.NewErc721(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService, chainId)
	auctionRepo := auction_repository.NewAuctionRepo(biddingService)
	collectionRepo := collection_repository.NewCollectionRepo(factoryService, viper.GetString("contracts.creationFee"))
	tokenRepo := collection_repository.NewTokenRepo(erc721Service)

	hcUsecase := hc_usecase.New(hcRepo)
	auctionUsecase := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Repo:    auctionRepo,
		Signer:  signer,
		ChainId: chainId,
	})
	collectionUsecase := collection_usecase.New(&collection_usecase.CollectionUseCaseCfg{
		Repo:      collectionRepo,
		TokenRepo: tokenRepo,
		Signer:    signer,
		ChainId:   chainId,
	})

	hc_delivery.New(e, hcUsecase)
	auction_delivery.New(e, chainId, auctionUsecase)
	collection_delivery.New(e, chainId, collectionUsecase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
