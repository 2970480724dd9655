package domain

import "testing"

func TestProductLowOnStock(t *testing.T) {
	cases := []struct {
		name      string
		stock     int64
		threshold int64
		want      bool
	}{
		{"well above threshold", 40, 10, false},
		{"one above threshold", 11, 10, false},
		{"at threshold", 10, 10, true},
		{"below threshold", 3, 10, true},
		{"zero stock", 0, 10, true},
		{"zero threshold zero stock", 0, 0, true},
	}
	for _, tc := range cases {
		p := &Product{CurrentStock: tc.stock, CriticalStockLevel: tc.threshold}
		if got := p.LowOnStock(); got != tc.want {
			t.Errorf("%s: LowOnStock() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
