package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "wattledger/internal/adapter/http"
	appmw "wattledger/internal/adapter/middleware"
	"wattledger/internal/adapter/repository/mysql"
	"wattledger/internal/config"
	"wattledger/internal/infrastructure/cache"
	"wattledger/internal/infrastructure/db"
	"wattledger/internal/usecase/issuance"
	loanuc "wattledger/internal/usecase/loan"
	"wattledger/internal/usecase/market"
	sourceuc "wattledger/internal/usecase/source"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	sources := mysql.NewSourceRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	listings := mysql.NewListingRepository(gdb)
	ledger := mysql.NewLedgerRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	sourceUC := sourceuc.NewUsecase(sources, sourceuc.NewAllowlist(cfg.VerifierWallets), tx)
	issuanceUC := issuance.NewUsecase(tx)
	loanUC := loanuc.NewUsecase(loans, tx)
	marketUC := market.NewUsecase(listings, tx)

	h := httpadp.NewHandler()
	sh := httpadp.NewSourceHandler(sourceUC, issuanceUC)
	lh := httpadp.NewLoanHandler(loanUC)
	mh := httpadp.NewMarketHandler(marketUC)
	ah := httpadp.NewAccountHandler(ledger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idem := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	e.POST("/sources", sh.Register, idem)
	e.GET("/sources/:source_id", sh.Get)
	e.POST("/sources/:source_id/verify", sh.Verify, idem)
	e.POST("/sources/:source_id/readings", sh.SubmitReading, idem)

	e.POST("/loans", lh.CreateLoan, idem)
	e.GET("/loans", lh.ListLoans)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/repayments", lh.Repay, idem)

	e.POST("/listings", mh.CreateListing, idem)
	e.GET("/listings", mh.ListListings)
	e.GET("/listings/:listing_id", mh.GetListing)
	e.POST("/listings/:listing_id/purchases", mh.Purchase, idem)

	e.GET("/accounts/:account_id/balance", ah.Balance)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
