package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aurora-store/internal/domain"
)

type stubWriter struct {
	upserted []domain.Product
	err      error
}

func (s *stubWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.upserted = append(s.upserted, p)
	return &p, nil
}

const sampleCSV = `sku,name_en,name_ar,price_cents,image,category_en,category_ar
AUR-PRD-01,Desk Lamp,مصباح مكتب,2500,lamp.jpg,Home,المنزل
AUR-PRD-02,Pulse Watch,ساعة نبض,9900,watch.jpg,Wearables,أجهزة قابلة للارتداء
`

func TestRunImportsRows(t *testing.T) {
	writer := &stubWriter{}
	imp := NewCSVImporter(strings.NewReader(sampleCSV), writer)

	imported, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 imported, got %d", imported)
	}

	p := writer.upserted[1]
	if p.SKU != "AUR-PRD-02" || p.NameEN != "Pulse Watch" || p.PriceCents != 9900 {
		t.Fatalf("unexpected product %+v", p)
	}
	if p.NameAR != "ساعة نبض" || p.CategoryAR != "أجهزة قابلة للارتداء" {
		t.Fatalf("expected arabic fields preserved, got %+v", p)
	}
}

func TestRunSkipsBadRows(t *testing.T) {
	csv := `sku,name_en,price_cents
,No SKU,1000
AUR-PRD-03,Bad Price,oops
AUR-PRD-04,Good,1500
`
	writer := &stubWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), writer)

	imported, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 1 {
		t.Fatalf("expected 1 imported, got %d", imported)
	}
	if writer.upserted[0].SKU != "AUR-PRD-04" {
		t.Fatalf("expected only the valid row, got %+v", writer.upserted)
	}
}

func TestRunHeaderCaseInsensitive(t *testing.T) {
	csv := `SKU, Name_EN ,Price_Cents
AUR-PRD-05,Cased,2000
`
	writer := &stubWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), writer)

	imported, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imported != 1 || writer.upserted[0].NameEN != "Cased" {
		t.Fatalf("expected cased headers matched, got %+v", writer.upserted)
	}
}

func TestRunStopsOnWriterError(t *testing.T) {
	boom := errors.New("db down")
	imp := NewCSVImporter(strings.NewReader(sampleCSV), &stubWriter{err: boom})

	imported, err := imp.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected writer error, got %v", err)
	}
	if imported != 0 {
		t.Fatalf("expected 0 imported, got %d", imported)
	}
}

func TestRunEmptyInput(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader(""), &stubWriter{})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing header")
	}
}
