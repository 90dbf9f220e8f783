package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemAddedToOrder struct {
	ItemNo    int
	Name      string
	Quantity  int
	LineTotal decimal.Decimal
}

func (e ItemAddedToOrder) Type() string { return "ItemAddedToOrder" }

type OrderFinalized struct {
	OrderID    uuid.UUID
	Lines      int
	GrandTotal decimal.Decimal
}

func (e OrderFinalized) Type() string { return "OrderFinalized" }

type ProductUpdated struct {
	ItemNo   int
	Name     string
	OldPrice decimal.Decimal
	NewPrice decimal.Decimal
	OldStock int
	NewStock int
}

func (e ProductUpdated) Type() string { return "ProductUpdated" }

type AdminLoginFailed struct{}

func (e AdminLoginFailed) Type() string { return "AdminLoginFailed" }
