// Package config loads runtime configuration from SMARTBUY_* environment
// variables. Defaults match the reference deployment.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	CatalogFile    string `envconfig:"CATALOG_FILE" default:"products.txt"`
	CatalogSize    int    `envconfig:"CATALOG_SIZE" default:"5"`
	ReceiptFile    string `envconfig:"RECEIPT_FILE" default:"bill.txt"`
	PDFFile        string `envconfig:"PDF_FILE" default:"bill.pdf"`
	TransactionLog string `envconfig:"TRANSACTION_LOG" default:"transactions.log"`
	LogoFile       string `envconfig:"LOGO_FILE" default:"logo.png"`
	AdminPassword  string `envconfig:"ADMIN_PASSWORD" default:"1222"`
	AppLog         string `envconfig:"APP_LOG" default:"smartbuy.log"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

func Parse() (Config, error) {
	var c Config
	if err := envconfig.Process("smartbuy", &c); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	if c.CatalogSize < 1 {
		return Config{}, errors.New("catalog size must be at least 1")
	}
	return c, nil
}
