package board

import "testing"

func TestFingerprintRoundTrip(t *testing.T) {
	b := sampleBoard()
	fp := ToFingerprint(&b)
	got := FromFingerprint(fp)
	if got != b {
		t.Errorf("fingerprint round trip mismatch:\nwant:\n%s\ngot:\n%s", b.String(), got.String())
	}
}

func TestRowsRoundTrip(t *testing.T) {
	b := sampleBoard()
	rows := RowsOf(&b)
	got := FromRows(rows)
	if got != b {
		t.Errorf("row round trip mismatch:\nwant:\n%s\ngot:\n%s", b.String(), got.String())
	}
}

func TestRowFingerprintPacksColumnZeroLow(t *testing.T) {
	var b Board
	b[PosOf(2, 0)] = Yellow // column 0 of row 2
	fp := RowFingerprint(&b, 2)
	if fp&ColorMask != uint16(Yellow) {
		t.Errorf("column 0 not packed in low bits: fingerprint=%015b", fp)
	}
}

func TestFingerprintDistinguishesBoards(t *testing.T) {
	a := sampleBoard()
	b := sampleBoard()
	b[0], b[1] = b[1], b[0]
	if ToFingerprint(&a) == ToFingerprint(&b) {
		t.Errorf("distinct boards produced equal fingerprints")
	}
}
