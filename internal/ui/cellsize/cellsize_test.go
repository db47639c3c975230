package cellsize

import "testing"

func TestWidth_Configured(t *testing.T) {
	if got := Width(10); got != 10 {
		t.Errorf("Width(10) = %d, want 10", got)
	}
}

func TestWidth_Detected(t *testing.T) {
	// Under go test stdout is not a terminal with pixel size, but whatever
	// is reported must be usable as a divisor.
	if got := Width(0); got <= 0 {
		t.Errorf("Width(0) = %d, want > 0", got)
	}
}
