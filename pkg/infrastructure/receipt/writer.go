// Package receipt renders completed orders: a plain-text receipt file that
// is overwritten per order, an append-only transaction log, and an optional
// PDF variant of the receipt.
package receipt

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

const (
	divider    = "------------------------------------------"
	banner     = "SmartBUY: A Product Order Management System"
	thanks     = " Thank you for choosing SmartBUY!          "
	timeLayout = "2006-01-02 15:04:05"
)

// Writer produces the text receipt and the transaction log. Both are
// best-effort relative to the catalog: a write failure here is reported but
// never rolls back already-committed stock changes.
type Writer struct {
	receiptPath string
	logPath     string
}

func NewWriter(receiptPath, logPath string) *Writer {
	return &Writer{receiptPath: receiptPath, logPath: logPath}
}

func (w *Writer) ReceiptPath() string { return w.receiptPath }

// WriteReceipt overwrites the receipt file with the given order. Only the
// most recent receipt is retained.
func (w *Writer) WriteReceipt(order *model.Order) error {
	var b strings.Builder
	b.WriteString(divider + "\n")
	b.WriteString(banner + "\n")
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format(timeLayout))
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%-15s %-10s %-10s %-10s\n", "Item", "Quantity", "Price", "Total")
	b.WriteString(divider + "\n")
	writeRows(&b, order)
	b.WriteString(thanks + "\n")
	b.WriteString(divider + "\n")

	if err := os.WriteFile(w.receiptPath, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "could not write %s", w.receiptPath)
	}
	return nil
}

// AppendLog appends one timestamped block for the order. The log is never
// truncated or rewritten.
func (w *Writer) AppendLog(order *model.Order) error {
	var b strings.Builder
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format(timeLayout))
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%-15s %-10s %-10s %-10s\n", "Item", "Qty", "Price", "Total")
	b.WriteString(divider + "\n")
	writeRows(&b, order)

	file, err := os.OpenFile(w.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "could not open %s", w.logPath)
	}
	defer file.Close()

	if _, err := file.WriteString(b.String()); err != nil {
		return errors.Wrapf(err, "could not append to %s", w.logPath)
	}
	return nil
}

// writeRows renders the shared tabular body: one row per line plus the
// TOTAL footer.
func writeRows(b *strings.Builder, order *model.Order) {
	for _, line := range order.Lines {
		fmt.Fprintf(b, "%-15s %-10d $%-9s $%-9s\n",
			line.Name, line.Quantity, line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(b, "%-15s %-10s %-10s $%-9s\n", "", "", "TOTAL", order.GrandTotal.StringFixed(2))
	b.WriteString(divider + "\n")
}

// ReadReceipt returns the current receipt contents. The second return is
// false when no receipt has been written yet.
func (w *Writer) ReadReceipt() (string, bool, error) {
	return readAll(w.receiptPath)
}

// ReadLog returns the full transaction history. The second return is false
// when no transaction has ever been logged.
func (w *Writer) ReadLog() (string, bool, error) {
	return readAll(w.logPath)
}

func readAll(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "could not read %s", path)
	}
	return string(data), true, nil
}
