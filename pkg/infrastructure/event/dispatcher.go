// Package event routes domain events into the structured log.
package event

import (
	"github.com/sirupsen/logrus"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
	"github.com/Sanjidh090/SmartBuy/pkg/domain/service"
)

// Dispatcher implements service.EventDispatcher by logging every event with
// its fields. Dispatch never fails.
type Dispatcher struct {
	log *logrus.Logger
}

func NewDispatcher(log *logrus.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

func (d *Dispatcher) Dispatch(e service.Event) error {
	entry := d.log.WithField("event", e.Type())

	switch ev := e.(type) {
	case model.AdminLoginFailed:
		entry.Warn("domain event")
		return nil
	case model.ItemAddedToOrder:
		entry = entry.WithFields(logrus.Fields{
			"item_no":    ev.ItemNo,
			"name":       ev.Name,
			"quantity":   ev.Quantity,
			"line_total": ev.LineTotal.StringFixed(2),
		})
	case model.OrderFinalized:
		entry = entry.WithFields(logrus.Fields{
			"order_id":    ev.OrderID.String(),
			"lines":       ev.Lines,
			"grand_total": ev.GrandTotal.StringFixed(2),
		})
	case model.ProductUpdated:
		entry = entry.WithFields(logrus.Fields{
			"item_no":   ev.ItemNo,
			"name":      ev.Name,
			"old_price": ev.OldPrice.StringFixed(2),
			"new_price": ev.NewPrice.StringFixed(2),
			"old_stock": ev.OldStock,
			"new_stock": ev.NewStock,
		})
	}

	entry.Info("domain event")
	return nil
}
