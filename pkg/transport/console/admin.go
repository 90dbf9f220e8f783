package console

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

// adminPanel gates the admin sub-menu behind the configured password. The
// comparison is exact string equality; a failed attempt only produces an
// event in the structured log.
func (h *Handler) adminPanel() {
	password, ok := h.readLine("\nEnter admin password: ")
	if !ok {
		return
	}
	if password != h.adminPassword {
		_ = h.dispatcher.Dispatch(model.AdminLoginFailed{})
		h.println("Error: incorrect password.")
		return
	}

	for {
		h.println("\nAdmin Panel:")
		h.println("1. View Transactions")
		h.println("2. Edit Product")
		h.println("3. Return to Main Menu")

		input, ok := h.readLine("Enter your choice: ")
		if !ok {
			return
		}
		choice, err := strconv.Atoi(input)
		if err != nil {
			h.println("Error: invalid input.")
			continue
		}

		switch choice {
		case 1:
			h.viewTransactions()
		case 2:
			h.editProduct()
		case 3:
			return
		default:
			h.println("Error: invalid choice.")
		}
	}
}

func (h *Handler) viewTransactions() {
	content, found, err := h.receipts.ReadLog()
	if err != nil {
		log.WithError(err).Error("failed to read transaction log")
		h.println("Error opening transaction log file: " + err.Error())
		return
	}
	if !found {
		h.println("No transactions found.")
		return
	}
	h.println("\n----- Transactions -----")
	fmt.Fprint(h.out, content)
	h.println("------------------------\n")
}

// editProduct prompts for an item number, a new price, and a new stock
// count. The first invalid field aborts the edit; on success both fields
// are overwritten and the catalog is persisted.
func (h *Handler) editProduct() {
	h.printProductTable()

	input, ok := h.readLine("Enter the product no. to edit: ")
	if !ok {
		return
	}
	itemNo, err := strconv.Atoi(input)
	if err != nil {
		h.println("Error: invalid input.")
		return
	}
	if _, err := h.products.Get(itemNo); err != nil {
		h.println("Error: invalid Item number.")
		return
	}

	priceInput, ok := h.readLine("Enter the new price (USD): ")
	if !ok {
		return
	}
	newPrice, err := decimal.NewFromString(priceInput)
	if err != nil || newPrice.IsNegative() {
		h.println("Error: invalid price.")
		return
	}

	stockInput, ok := h.readLine("Enter the new stock quantity: ")
	if !ok {
		return
	}
	newStock, err := strconv.Atoi(stockInput)
	if err != nil || newStock < 0 {
		h.println("Error: invalid stock quantity.")
		return
	}

	if err := h.products.UpdateProduct(itemNo, newPrice, newStock); err != nil {
		log.WithError(err).Error("failed to update product")
		h.println("Error: " + err.Error())
		return
	}
	h.println("Product updated successfully.")
}
