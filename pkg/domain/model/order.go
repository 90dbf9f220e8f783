package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is one accepted (product, quantity) pairing within an order.
// Name and UnitPrice are captured at acceptance time so a later admin edit
// cannot change an already-printed receipt.
type OrderLine struct {
	ItemNo    int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Order is a finalized customer order. Once built it is never modified;
// the transaction log treats it as append-only history.
type Order struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Lines      []OrderLine
	GrandTotal decimal.Decimal
}
