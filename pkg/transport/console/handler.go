// Package console is the interactive terminal transport: the main menu
// loop, the ordering flow, and the admin panel.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
	"github.com/Sanjidh090/SmartBuy/pkg/domain/service"
	"github.com/Sanjidh090/SmartBuy/pkg/infrastructure/receipt"
)

// Handler owns the catalog for the lifetime of the process and dispatches
// menu choices to the domain services. All input goes through one
// bufio.Scanner so the whole loop can be scripted in tests.
type Handler struct {
	in            *bufio.Scanner
	out           io.Writer
	catalog       *model.Catalog
	orders        service.OrderService
	products      service.ProductService
	receipts      *receipt.Writer
	pdf           *receipt.PDFRenderer
	adminPassword string
	dispatcher    service.EventDispatcher
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	catalog *model.Catalog,
	orders service.OrderService,
	products service.ProductService,
	receipts *receipt.Writer,
	pdf *receipt.PDFRenderer,
	adminPassword string,
	dispatcher service.EventDispatcher,
) *Handler {
	return &Handler{
		in:            bufio.NewScanner(in),
		out:           out,
		catalog:       catalog,
		orders:        orders,
		products:      products,
		receipts:      receipts,
		pdf:           pdf,
		adminPassword: adminPassword,
		dispatcher:    dispatcher,
	}
}

// Run drives the main menu until the user picks Exit or input ends.
func (h *Handler) Run() error {
	for {
		h.println("\nWelcome to SmartBUY. How may I help you?")
		h.println("1. Order Products")
		h.println("2. Admin Panel")
		h.println("3. Exit")

		input, ok := h.readLine("Enter your choice: ")
		if !ok {
			return nil
		}
		choice, err := strconv.Atoi(input)
		if err != nil {
			h.println("Error: invalid input.")
			continue
		}

		switch choice {
		case 1:
			h.placeOrder()
		case 2:
			h.adminPanel()
		case 3:
			h.println("Thanks for visiting.")
			return nil
		default:
			h.println("Error: invalid choice.")
		}
	}
}

func (h *Handler) placeOrder() {
	h.println("You have selected Order Products.")
	h.printProductTable()

	sess := h.orders.Begin()
	for {
		input, ok := h.readLine("Enter the item no. to order (press Enter to finish): ")
		if !ok || input == "" {
			break
		}
		itemNo, err := strconv.Atoi(input)
		if err != nil {
			h.println("Error: please enter a valid item number or press Enter to finish.")
			continue
		}
		if !service.ValidItemNumber(itemNo, h.catalog.Size()) {
			h.println("Error: invalid item number.")
			continue
		}

		product, err := h.catalog.Get(itemNo)
		if err != nil {
			h.println("Error: " + err.Error())
			continue
		}

		qtyInput, ok := h.readLine(fmt.Sprintf("Enter the quantity for %s: ", product.Name))
		if !ok {
			break
		}
		quantity, err := strconv.Atoi(qtyInput)
		if err != nil {
			h.println("Error: please enter a valid quantity.")
			continue
		}

		line, err := sess.AddLine(itemNo, quantity)
		switch {
		case err == nil:
			h.printf("You have ordered %d %s. Total cost so far: $%s\n",
				line.Quantity, line.Name, sess.RunningTotal().StringFixed(2))
		case errors.Is(err, service.ErrInvalidQuantity):
			h.println("Error: invalid quantity.")
		case errors.Is(err, model.ErrInsufficientStock):
			h.printf("Error: insufficient stock for %s. Available: %d\n", product.Name, product.Stock)
		default:
			h.println("Error: " + err.Error())
		}
	}

	if sess.Empty() {
		h.println("No items ordered.")
		return
	}

	order, err := sess.Finalize()
	if err != nil {
		log.WithError(err).Error("failed to finalize order")
		h.println("Error: could not save the catalog: " + err.Error())
		return
	}

	if err := h.receipts.WriteReceipt(order); err != nil {
		log.WithError(err).Error("failed to write receipt")
		h.println("Error creating bill file: " + err.Error())
	} else {
		h.println("Bill has been saved to " + h.receipts.ReceiptPath())
	}

	if err := h.receipts.AppendLog(order); err != nil {
		log.WithError(err).Error("failed to append transaction log")
		h.println("Error creating transaction log file: " + err.Error())
	}

	h.displayReceipt()
	h.offerPDF(order)
}

func (h *Handler) displayReceipt() {
	content, found, err := h.receipts.ReadReceipt()
	if err != nil {
		log.WithError(err).Error("failed to read receipt")
		h.println("Error reading bill file: " + err.Error())
		return
	}
	if !found {
		h.println("No receipt found.")
		return
	}
	h.println("\n----- Receipt -----")
	fmt.Fprint(h.out, content)
	h.println("-------------------\n")
}

func (h *Handler) offerPDF(order *model.Order) {
	for {
		input, ok := h.readLine("Do you want a PDF receipt? (1 = Yes, 2 = No): ")
		if !ok {
			return
		}
		switch strings.ToLower(input) {
		case "1", "yes":
			if err := h.pdf.Render(order); err != nil {
				log.WithError(err).Error("failed to render pdf receipt")
				h.println("Error creating PDF: " + err.Error())
				return
			}
			h.println("PDF receipt has been saved to " + h.pdf.Path())
			return
		case "2", "no", "":
			h.println("No PDF receipt will be created.")
			return
		default:
			h.println("Invalid input. Please enter 1 for Yes or 2 for No.")
		}
	}
}

func (h *Handler) printProductTable() {
	h.println("______________________________________________________")
	h.println("|  Item No.  |  Item Name   |  Price    |  In Stock   |")
	h.println("------------------------------------------------------")
	products := h.catalog.Products()
	for i, p := range products {
		h.printf("|    %2d      | %-12s | %6s    |     %3d     |\n",
			i+1, p.Name, p.Price.StringFixed(2), p.Stock)
		if i != len(products)-1 {
			h.println("+----------------------------------------------------+")
		}
	}
	h.println("+-----------------------------------------------------+")
}

func (h *Handler) readLine(prompt string) (string, bool) {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) println(s string) {
	fmt.Fprintln(h.out, s)
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}
