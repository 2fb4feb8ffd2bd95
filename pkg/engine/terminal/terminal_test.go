package terminal

import "testing"

func TestGetSize_FallsBack(t *testing.T) {
	width, height := GetSize()
	if width <= 0 || height <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive", width, height)
	}
	if !IsTerminal() && (width != DefaultWidth || height != DefaultHeight) {
		t.Errorf("GetSize() off a terminal = %d, %d, want %d, %d", width, height, DefaultWidth, DefaultHeight)
	}
}
