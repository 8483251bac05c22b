package panel

import "testing"

func TestModeCycleClosure(t *testing.T) {
	m := ModeLive
	for i := 0; i < int(modeCount); i++ {
		m = m.next()
		if m >= modeCount {
			t.Fatalf("advance %d left an invalid mode %d", i, m)
		}
	}
	if m != ModeLive {
		t.Fatalf("full cycle ended at %s, want live", m)
	}
}
