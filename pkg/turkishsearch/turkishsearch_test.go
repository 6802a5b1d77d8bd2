package turkishsearch

import "testing"

func TestToLowerTurkishCasing(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"İSTANBUL", "istanbul"},
		{"IĞDIR", "ığdır"},
		{"Saç Kesimi", "saç kesimi"},
		{"ÇĞİÖŞÜ", "çğiöşü"},
	}
	for _, tc := range cases {
		if got := ToLower(tc.in); got != tc.want {
			t.Errorf("ToLower(%q) = %q, beklenen %q", tc.in, got, tc.want)
		}
	}
}

func TestSQLFilter(t *testing.T) {
	fragment, args := SQLFilter("services.name", "  Diş ")

	if fragment != "LOWER(services.name) LIKE ?" {
		t.Errorf("beklenmeyen fragment: %q", fragment)
	}
	if len(args) != 1 {
		t.Fatalf("tek argüman bekleniyordu, %d geldi", len(args))
	}
	if args[0] != "%diş%" {
		t.Errorf("argüman %q olmalı, %v geldi", "%diş%", args[0])
	}
}
