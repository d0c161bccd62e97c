package receipt

import "testing"

func TestInferKind(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Hotel_Roma_invoice.pdf", "stay"},
		{"airbnb-confirmation.pdf", "stay"},
		{"flight-FCO-CDG.pdf", "flight"},
		{"boarding_pass.png", "flight"},
		{"taxi_receipt.jpg", "transport"},
		{"dinner-trastevere.jpg", "food"},
		{"IMG_2041.jpg", ""},
	}
	for _, tt := range tests {
		if got := inferKind(tt.filename); got != tt.want {
			t.Errorf("inferKind(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}
