package scenario

import "testing"

func TestAll_TenDistinctProducts(t *testing.T) {
	scenarios := All()
	if len(scenarios) != 10 {
		t.Fatalf("expected 10 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		name := s.ProductName()
		if name == "" {
			t.Fatalf("scenario %T returned empty product name", s)
		}
		if seen[name] {
			t.Fatalf("duplicate product name %q", name)
		}
		seen[name] = true
	}
}
