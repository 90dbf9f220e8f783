package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Sanjidh090/SmartBuy/pkg/app/config"
	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
	"github.com/Sanjidh090/SmartBuy/pkg/domain/service"
	"github.com/Sanjidh090/SmartBuy/pkg/infrastructure/catalog"
	"github.com/Sanjidh090/SmartBuy/pkg/infrastructure/event"
	"github.com/Sanjidh090/SmartBuy/pkg/infrastructure/receipt"
	"github.com/Sanjidh090/SmartBuy/pkg/transport/console"
)

func main() {
	app := &cli.App{
		Name:  "smartbuy",
		Usage: "terminal point-of-sale for a small fixed product catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "catalog", Usage: "path to the catalog file"},
			&cli.StringFlag{Name: "receipt", Usage: "path to the receipt file"},
			&cli.StringFlag{Name: "transaction-log", Usage: "path to the transaction log"},
			&cli.StringFlag{Name: "pdf", Usage: "path to the PDF receipt"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	if v := c.String("catalog"); v != "" {
		cfg.CatalogFile = v
	}
	if v := c.String("receipt"); v != "" {
		cfg.ReceiptFile = v
	}
	if v := c.String("transaction-log"); v != "" {
		cfg.TransactionLog = v
	}
	if v := c.String("pdf"); v != "" {
		cfg.PDFFile = v
	}

	setupLogging(cfg)

	store := catalog.NewFileStore(cfg.CatalogFile, cfg.CatalogSize)
	products, err := store.Load()
	if err != nil {
		// The catalog is required for every operation; there is no
		// degraded mode without it.
		log.WithError(err).Error("failed to load catalog")
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	cat := model.NewCatalog(products)

	dispatcher := event.NewDispatcher(log.StandardLogger())
	orders := service.NewOrderService(cat, store, dispatcher)
	productSvc := service.NewProductService(cat, store, dispatcher)
	writer := receipt.NewWriter(cfg.ReceiptFile, cfg.TransactionLog)
	pdf := receipt.NewPDFRenderer(cfg.PDFFile, cfg.LogoFile)

	handler := console.NewHandler(os.Stdin, os.Stdout, cat, orders, productSvc,
		writer, pdf, cfg.AdminPassword, dispatcher)

	log.WithFields(log.Fields{
		"catalog": cfg.CatalogFile,
		"size":    cfg.CatalogSize,
	}).Info("smartbuy started")
	return handler.Run()
}

// setupLogging sends structured logs to a side file so the terminal stays
// clean for the interactive menu.
func setupLogging(cfg config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	file, err := os.OpenFile(cfg.AppLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err == nil {
		log.SetOutput(file)
	}
}
