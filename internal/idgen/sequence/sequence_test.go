package sequence_test

import (
	"context"
	"testing"

	"github.com/avstrong/hotel/internal/idgen/sequence"
)

func TestNextIDStartsAtOneAndIncreases(t *testing.T) {
	gen := sequence.New()

	for want := 1; want <= 5; want++ {
		got, err := gen.NextID(context.Background())
		if err != nil {
			t.Fatalf("next id: %v", err)
		}

		if got != want {
			t.Fatalf("want %d, got %d", want, got)
		}
	}
}

func TestGeneratorsAreIndependent(t *testing.T) {
	first := sequence.New()
	second := sequence.New()

	if _, err := first.NextID(context.Background()); err != nil {
		t.Fatalf("next id: %v", err)
	}

	got, err := second.NextID(context.Background())
	if err != nil {
		t.Fatalf("next id: %v", err)
	}

	if got != 1 {
		t.Fatalf("a fresh generator must start at 1, got %d", got)
	}
}
