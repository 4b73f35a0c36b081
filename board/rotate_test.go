package board

import "testing"

func sampleBoard() Board {
	// A simple 5x5 board cycling through seven colors (cell i gets color
	// i mod 7) so rotation can be checked cell by cell.
	var b Board
	colors := []Color{Red, Green, Blue, White, Orange, Yellow, Empty}
	for i := range b {
		b[i] = colors[i%len(colors)]
	}
	return b
}

func TestRotateCW_FourTimesIsIdentity(t *testing.T) {
	b := sampleBoard()
	got := b
	for i := 0; i < 4; i++ {
		got = RotateCW(&got)
	}
	if got != b {
		t.Errorf("four 90° rotations changed the board:\nwant:\n%s\ngot:\n%s", b.String(), got.String())
	}
}

func TestRotateCW_KnownPattern(t *testing.T) {
	// 3x3 corner check generalized to 5x5: rotating CW moves the
	// top-left corner to the top-right corner.
	var b Board
	b[PosOf(0, 0)] = Red
	b[PosOf(0, 4)] = Green
	b[PosOf(4, 4)] = Blue
	b[PosOf(4, 0)] = White
	got := RotateCW(&b)
	if got[PosOf(0, 4)] != Red {
		t.Errorf("top-left did not rotate to top-right: got %v", got[PosOf(0, 4)])
	}
	if got[PosOf(4, 4)] != Green {
		t.Errorf("top-right did not rotate to bottom-right: got %v", got[PosOf(4, 4)])
	}
	if got[PosOf(4, 0)] != Blue {
		t.Errorf("bottom-right did not rotate to bottom-left: got %v", got[PosOf(4, 0)])
	}
	if got[PosOf(0, 0)] != White {
		t.Errorf("bottom-left did not rotate to top-left: got %v", got[PosOf(0, 0)])
	}
}

func TestRotate_ZeroIsIdentity(t *testing.T) {
	b := sampleBoard()
	if got := Rotate(&b, 0); got != b {
		t.Errorf("Rotate(b, 0) changed the board")
	}
}

func TestRotate_NegativeTurns(t *testing.T) {
	b := sampleBoard()
	// Rotating -1 (i.e. 270° CW) followed by one more 90° CW turn should
	// return to start.
	once := Rotate(&b, -1)
	back := Rotate(&once, 1)
	if back != b {
		t.Errorf("Rotate(-1) composed with Rotate(1) did not return to start")
	}
}
