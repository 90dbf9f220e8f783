// Package catalog persists the product catalog as a line-oriented text
// file: exactly one "name,price,stock" line per product.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Sanjidh090/SmartBuy/pkg/domain/model"
)

// FileStore reads and writes the catalog file. The format is strict: Load
// fails on a missing file, fewer than size well-formed lines, a wrong field
// count, or an unparsable number. Save rewrites the file in place with no
// temp-file step, so a crash mid-write can leave it truncated.
type FileStore struct {
	path string
	size int
}

func NewFileStore(path string, size int) *FileStore {
	return &FileStore{path: path, size: size}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() ([]model.Product, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", s.path)
	}
	defer file.Close()

	products := make([]model.Product, 0, s.size)
	scanner := bufio.NewScanner(file)
	for i := 1; i <= s.size; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "could not read %s", s.path)
			}
			return nil, errors.Errorf("insufficient data in %s: want %d lines, got %d", s.path, s.size, i-1)
		}
		product, err := parseLine(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid format in %s on line %d", s.path, i)
		}
		products = append(products, product)
	}
	// Lines beyond the configured size are ignored.
	return products, nil
}

func parseLine(line string) (model.Product, error) {
	parts := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(parts) != 3 {
		return model.Product{}, errors.Errorf("want 3 comma-separated fields, got %d", len(parts))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "invalid price %q", parts[1])
	}
	if price.IsNegative() {
		return model.Product{}, errors.Errorf("negative price %q", parts[1])
	}

	stock, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return model.Product{}, errors.Wrapf(err, "invalid stock %q", parts[2])
	}
	if stock < 0 {
		return model.Product{}, errors.Errorf("negative stock %q", parts[2])
	}

	return model.Product{Name: parts[0], Price: price, Stock: stock}, nil
}

func (s *FileStore) Save(products []model.Product) error {
	if len(products) != s.size {
		return errors.Errorf("catalog has %d products, want %d", len(products), s.size)
	}

	var b strings.Builder
	for _, p := range products {
		fmt.Fprintf(&b, "%s,%s,%d\n", p.Name, p.Price.StringFixed(2), p.Stock)
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return errors.Wrapf(err, "could not write %s", s.path)
	}
	return nil
}
