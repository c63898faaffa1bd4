package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "loan-ledger/internal/adapter/http"
	mw "loan-ledger/internal/adapter/middleware"
	"loan-ledger/internal/adapter/repository/memory"
	"loan-ledger/internal/adapter/repository/mysql"
	"loan-ledger/internal/config"
	"loan-ledger/internal/domain/loan"
	"loan-ledger/internal/domain/repayment"
	"loan-ledger/internal/domain/user"
	"loan-ledger/internal/infrastructure/cache"
	"loan-ledger/internal/infrastructure/db"
	authuc "loan-ledger/internal/usecase/auth"
	loanuc "loan-ledger/internal/usecase/loan"
	repaymentuc "loan-ledger/internal/usecase/repayment"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	// Backend selection happens once, here. When MySQL is unreachable the
	// service runs on the transient store; nothing above this point can tell
	// the difference.
	var (
		users      user.Repository
		loans      loan.Repository
		repayments repayment.Repository
	)
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Warn("mysql unavailable, falling back to in-memory store")
		store := memory.NewStore()
		users = memory.NewUserRepository(store)
		loans = memory.NewLoanRepository(store)
		repayments = memory.NewRepaymentRepository(store)
	} else {
		if err := db.Migrate(gdb); err != nil {
			log.WithError(err).Fatal("migrate")
		}
		log.Info("mysql connected, tables ensured")
		users = mysql.NewUserRepository(gdb)
		loans = mysql.NewLoanRepository(gdb)
		repayments = mysql.NewRepaymentRepository(gdb)
	}

	authSvc := authuc.NewUsecase(users, log)
	loanSvc := loanuc.NewUsecase(loans, log)
	repaySvc := repaymentuc.NewUsecase(repayments, loans, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()
	e.Use(mw.ResolvePrincipal(authSvc))

	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		log.WithError(err).Warn("redis unavailable, idempotent replay disabled")
	} else {
		e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authSvc)
	loanH := httpadp.NewLoanHandler(loanSvc)
	repayH := httpadp.NewRepaymentHandler(repaySvc)

	e.GET("/health", h.Health)
	api := e.Group("/api")
	api.POST("/register", authH.Register)
	api.POST("/login", authH.Login)
	api.POST("/loans", loanH.Submit)
	api.GET("/loans", loanH.List)
	api.POST("/loans/:id/decision", loanH.Decide)
	api.POST("/loans/:id/repayment", repayH.Record)
	api.GET("/loans/:id/repayments", repayH.ListRepayments)

	addr := ":" + cfg.AppPort
	log.Infof("loan ledger listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
