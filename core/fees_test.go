package core

import "testing"

func TestRemainingFee(t *testing.T) {
	tests := []struct {
		name                                     string
		fee, paid, discount, surcharge, penalty  int64
		want                                     int64
	}{
		{name: "typical semester", fee: 10000, paid: 4000, discount: 500, surcharge: 200, penalty: 0, want: 5700},
		{name: "fully paid", fee: 10000, paid: 10000, want: 0},
		{name: "nothing paid", fee: 8000, want: 8000},
		{name: "penalties only", fee: 5000, paid: 5000, penalty: 150, want: 150},
		{name: "overpaid goes negative", fee: 5000, paid: 6000, want: -1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingFee(tt.fee, tt.paid, tt.discount, tt.surcharge, tt.penalty)
			if got != tt.want {
				t.Errorf("RemainingFee() = %d, want %d", got, tt.want)
			}
		})
	}
}
