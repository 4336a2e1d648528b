package area

import (
	"math"
	"testing"
)

func TestExact(t *testing.T) {
	want := 0.9445171858994637
	got := Exact()
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Exact() = %.16f, want %.16f", got, want)
	}
	if Exact() != got {
		t.Error("Exact() is not deterministic")
	}
}
