package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/goauction/base/backoff"
	"github.com/x-xyz/goauction/base/clock"
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/database/redisclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	bValidator "github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/activity"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/credit"
	"github.com/x-xyz/goauction/domain/erc1155"
	mmiddleware "github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/keeper"
	"github.com/x-xyz/goauction/service/query"
	"github.com/x-xyz/goauction/service/redis"
	"github.com/x-xyz/goauction/service/wallet"
	activity_delivery "github.com/x-xyz/goauction/stores/activity/delivery/http"
	activity_repository "github.com/x-xyz/goauction/stores/activity/repository"
	auction_delivery "github.com/x-xyz/goauction/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/goauction/stores/auction/repository"
	auction_usecase "github.com/x-xyz/goauction/stores/auction/usecase"
	auth_delivery "github.com/x-xyz/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/goauction/stores/auth/usecase"
	credit_delivery "github.com/x-xyz/goauction/stores/credit/delivery/http"
	credit_repository "github.com/x-xyz/goauction/stores/credit/repository"
	credit_usecase "github.com/x-xyz/goauction/stores/credit/usecase"
	erc1155_repository "github.com/x-xyz/goauction/stores/erc1155/repository"
	erc1155_usecase "github.com/x-xyz/goauction/stores/erc1155/usecase"
	hc_delivery "github.com/x-xyz/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/goauction/stores/healthcheck/usecase"
	paytoken_repository "github.com/x-xyz/goauction/stores/paytoken/repository"
)

const (
	driverMemory = "memory"
	driverMongo  = "mongo"
	driverRedis  = "redis"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config file")
	pflag.String("addr", ":8080", "http listen address")
	pflag.Parse()
	viper.BindPFlag("server.address", pflag.Lookup("addr"))

	viper.SetConfigType("yaml")
	viper.SetConfigFile(pflag.Lookup("config").Value.String())
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Init(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

type stores struct {
	q          query.Mongo
	redis      redis.Service
	auctions   auction.Repo
	holdings   erc1155.HoldingRepo
	activities activity.Repo
	payTokens  domain.PayTokenRepo
	credits    credit.Repo
}

func mustInitStores(context ctx.Ctx) *stores {
	s := &stores{}

	var tokens []domain.PayToken
	if err := viper.UnmarshalKey("paytokens", &tokens); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey paytokens failed")
	}

	switch driver := viper.GetString("storage.driver"); driver {
	case driverMongo:
		context.Info("init mongo")
		cfg := mongoclient.Config{}
		if err := viper.UnmarshalKey("mongo", &cfg); err != nil {
			context.WithField("err", err).Panic("viper.UnmarshalKey mongo failed")
		}
		mongoClient := mongoclient.MustConnectMongoClient(cfg)
		if err := mongoClient.EnsureIndexes(context, auction_repository.Indexes()); err != nil {
			context.WithField("err", err).Panic("EnsureIndexes failed")
		}
		s.q = query.New(mongoClient, cfg.CheckIndex)
		s.auctions = auction_repository.NewMongoRepo(s.q)
		s.holdings = erc1155_repository.NewHoldingRepo(s.q)
		s.activities = activity_repository.NewActivityRepo(s.q)
		s.payTokens = paytoken_repository.NewPayTokenRepo(s.q)
		for i := range tokens {
			if err := s.payTokens.Upsert(context, &tokens[i]); err != nil {
				context.WithField("err", err).Panic("payTokens.Upsert failed")
			}
		}
	case driverMemory:
		s.auctions = auction_repository.NewMemoryRepo()
		s.holdings = erc1155_repository.NewHoldingMemoryRepo()
		s.activities = activity_repository.NewMemoryRepo()
		s.payTokens = paytoken_repository.NewPayTokenMemoryRepo(tokens...)
	default:
		context.WithField("driver", driver).Panic("unknown storage.driver")
	}

	switch driver := viper.GetString("credit.driver"); driver {
	case driverRedis:
		context.Info("init redis")
		cfg := redisclient.Config{}
		if err := viper.UnmarshalKey("redis", &cfg); err != nil {
			context.WithField("err", err).Panic("viper.UnmarshalKey redis failed")
		}
		pool := redisclient.MustConnectRedis(cfg)
		s.redis = redis.New(cfg.Name, metrics.New(cfg.Name), &redis.Pools{
			Src: pool,
		})
		s.credits = credit_repository.NewRedisRepo(s.redis)
	case driverMemory:
		s.credits = credit_repository.NewMemoryRepo()
	default:
		context.WithField("driver", driver).Panic("unknown credit.driver")
	}
	return s
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
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()
	s := mustInitStores(context)
	clk := clock.New()
	dev := viper.GetBool("dev")

	// reference ledgers, bids and payouts settle against an in-process wallet
	funds := wallet.New()

	custodian := erc1155_usecase.NewCustodian(&erc1155_usecase.CustodianCfg{
		Holding: s.holdings,
	})
	creditUC := credit_usecase.New(&credit_usecase.CreditUseCaseCfg{
		Repo:         s.credits,
		Native:       funds,
		Token:        funds,
		ActivityRepo: s.activities,
		Clock:        clk,
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Repo:                  s.auctions,
		Custodian:             custodian,
		Dispatcher:            creditUC,
		PayTokenRepo:          s.payTokens,
		ActivityRepo:          s.activities,
		Clock:                 clk,
		DefaultBidPeriod:      viper.GetInt64("auction.defaultBidPeriod"),
		DefaultBidIncreaseBps: viper.GetInt64("auction.defaultBidIncreaseBps"),
		MinimumBidIncreaseBps: viper.GetInt64("auction.minimumBidIncreaseBps"),
	})
	authUC := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret: viper.GetString("auth.jwtSecret"),
		TokenTTL:  viper.GetDuration("auth.tokenTTL"),
		Clock:     clk,
	})
	authMiddleware := auth_middleware.New(authUC)

	hcRepo := hc_repo.New(s.q, s.redis)
	hc_delivery.New(e, hc_usecase.New(hcRepo))
	auth_delivery.New(e, authUC, dev)
	auction_delivery.New(e, auctionUC, s.payTokens, authMiddleware)
	credit_delivery.New(e, creditUC, s.payTokens, authMiddleware)
	activity_delivery.New(e, s.activities)
	if dev {
		newDevHandler(e, custodian, funds)
	}

	keeperCtx, stopKeeper := ctx.WithCancel(context)
	k := keeper.New(&keeper.KeeperCfg{
		Auction:     auctionUC,
		Address:     domain.Address(viper.GetString("keeper.address")),
		Interval:    viper.GetDuration("keeper.interval"),
		BatchLimit:  viper.GetInt("keeper.batchLimit"),
		Concurrency: viper.GetInt("keeper.concurrency"),
		Backoff:     backoff.NewExponential(time.Second, time.Minute),
	})
	if viper.GetBool("keeper.enabled") {
		k.Start(keeperCtx)
	}

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

	stopKeeper()
	if viper.GetBool("keeper.enabled") {
		k.Wait()
	}

	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	log.Sync()
}
