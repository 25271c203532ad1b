package main

import (
	"fmt"
	"os"

	"github.com/trucklink/orderfile/internal/auth"
	"github.com/trucklink/orderfile/internal/config"
	"github.com/trucklink/orderfile/internal/db"
	"github.com/trucklink/orderfile/internal/delivery"
	"github.com/trucklink/orderfile/internal/easyfile"
	"github.com/trucklink/orderfile/internal/excel"
	httphandler "github.com/trucklink/orderfile/internal/http"
	"github.com/trucklink/orderfile/internal/http/middleware"
	"github.com/trucklink/orderfile/internal/logger"
	"github.com/trucklink/orderfile/internal/model"
	"github.com/trucklink/orderfile/internal/parser"
	"github.com/trucklink/orderfile/internal/pdf"
	"github.com/trucklink/orderfile/internal/refdata"
	"github.com/trucklink/orderfile/internal/repository"
	"github.com/trucklink/orderfile/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	referenceRepo := repository.NewReferenceRepository(database)
	documentRepo := repository.NewDocumentRepository(database)

	resolver := refdata.NewResolver(referenceRepo, log)
	dispatcher := parser.NewDispatcher(resolver, orderParty(cfg), log)
	writer := easyfile.NewWriter(cfg.OrderFile.EscapeXML)

	deliverer, err := delivery.NewLocalDeliverer(cfg.OrderFile.OutputDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init delivery")
	}

	orderService := service.NewOrderService(dispatcher, writer, pdf.NewGenerator(), deliverer, documentRepo, log)
	referenceService := service.NewReferenceService(referenceRepo, excel.NewImporter(), log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(orderService, referenceService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting orderfile service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func orderParty(cfg *config.Config) model.Party {
	return model.Party{
		Name:              cfg.Party.Name,
		Address:           cfg.Party.Address,
		Postcode:          cfg.Party.Postcode,
		City:              cfg.Party.City,
		Phone:             cfg.Party.Phone,
		Email:             cfg.Party.Email,
		VATNumber:         cfg.Party.VATNumber,
		ChamberOfCommerce: cfg.Party.ChamberOfCommerce,
	}
}
