package valueobject_test

import (
	"testing"

	"github.com/pixelhunt/design-backend/internal/domain/valueobject"
)

func TestComputeQuote_AllSurcharges(t *testing.T) {
	quote := valueobject.ComputeQuote(500, true, 2, 1)

	if quote.BasePrice != 500 {
		t.Errorf("expected base price 500, got %f", quote.BasePrice)
	}
	if quote.RushFee != 250 {
		t.Errorf("expected rush fee 250, got %f", quote.RushFee)
	}
	if quote.ConceptFee != 100 {
		t.Errorf("expected concept fee 100, got %f", quote.ConceptFee)
	}
	if quote.RevisionFee != 25 {
		t.Errorf("expected revision fee 25, got %f", quote.RevisionFee)
	}
	if quote.Total != 875 {
		t.Errorf("expected total 875, got %f", quote.Total)
	}
}

func TestComputeQuote_NoSurcharges(t *testing.T) {
	quote := valueobject.ComputeQuote(500, false, 0, 0)

	if quote.Total != 500 {
		t.Errorf("expected total to equal base price, got %f", quote.Total)
	}
	if quote.RushFee != 0 || quote.ConceptFee != 0 || quote.RevisionFee != 0 {
		t.Error("expected all fees to be zero")
	}
}

func TestComputeQuote_ClampsCounts(t *testing.T) {
	quote := valueobject.ComputeQuote(100, false, 99, -5)

	if quote.ConceptFee != 500 {
		t.Errorf("expected concept fee clamped to 10 units (500), got %f", quote.ConceptFee)
	}
	if quote.RevisionFee != 0 {
		t.Errorf("expected negative revisions to count as zero, got %f", quote.RevisionFee)
	}
}

func TestComputeQuote_NegativeBase(t *testing.T) {
	quote := valueobject.ComputeQuote(-100, true, 0, 0)

	if quote.BasePrice != 0 || quote.Total != 0 {
		t.Errorf("expected negative base to be treated as zero, got %+v", quote)
	}
}

func TestComputeQuote_Deterministic(t *testing.T) {
	first := valueobject.ComputeQuote(350, true, 3, 2)
	second := valueobject.ComputeQuote(350, true, 3, 2)

	if first != second {
		t.Fatalf("expected identical quotes, got %+v and %+v", first, second)
	}
}
