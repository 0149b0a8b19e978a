package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"aurora-store/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products by SKU.
// Expected header: sku,name_en,name_ar,price_cents,image,category_en,
// category_ar,badge_en,badge_ar,description_en,description_ar.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts products. Rows without a SKU or with an
// unparsable price are skipped rather than failing the whole import.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, ok := parseRow(record, index)
		if !ok {
			continue
		}
		if _, err := i.productRepo.Upsert(ctx, product); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", product.SKU, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, bool) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	sku := field("sku")
	if sku == "" {
		return domain.Product{}, false
	}
	cents, err := strconv.ParseInt(field("price_cents"), 10, 64)
	if err != nil {
		return domain.Product{}, false
	}

	return domain.Product{
		SKU:           sku,
		NameEN:        field("name_en"),
		NameAR:        field("name_ar"),
		PriceCents:    cents,
		Image:         field("image"),
		CategoryEN:    field("category_en"),
		CategoryAR:    field("category_ar"),
		BadgeEN:       field("badge_en"),
		BadgeAR:       field("badge_ar"),
		DescriptionEN: field("description_en"),
		DescriptionAR: field("description_ar"),
	}, true
}
