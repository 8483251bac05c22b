package panel

import (
	"testing"

	"hygropanel-go/types"
)

func TestFirstSampleSeedsExtrema(t *testing.T) {
	var tr Tracker
	r := types.Reading{TempC: 21, Humidity: 68}
	tr.Observe(r)

	if tr.Live != r || tr.Min != r || tr.Max != r {
		t.Fatalf("first sample: live=%+v min=%+v max=%+v, want all %+v", tr.Live, tr.Min, tr.Max, r)
	}
	if !tr.Seeded() {
		t.Fatal("tracker not seeded after first sample")
	}
}

func TestExtremaMonotonic(t *testing.T) {
	var tr Tracker
	seq := []types.Reading{
		{TempC: 20, Humidity: 70},
		{TempC: 25, Humidity: 60},
		{TempC: 18, Humidity: 80},
		{TempC: 18, Humidity: 80}, // repeat: extrema must not move
		{TempC: 22, Humidity: 75},
	}
	for i, r := range seq {
		tr.Observe(r)
		if tr.Min.TempC > tr.Live.TempC || tr.Live.TempC > tr.Max.TempC {
			t.Fatalf("step %d: temperature ordering violated: %d/%d/%d", i, tr.Min.TempC, tr.Live.TempC, tr.Max.TempC)
		}
		if tr.Min.Humidity > tr.Live.Humidity || tr.Live.Humidity > tr.Max.Humidity {
			t.Fatalf("step %d: humidity ordering violated: %d/%d/%d", i, tr.Min.Humidity, tr.Live.Humidity, tr.Max.Humidity)
		}
	}
	if tr.Min != (types.Reading{TempC: 18, Humidity: 60}) {
		t.Fatalf("min = %+v", tr.Min)
	}
	if tr.Max != (types.Reading{TempC: 25, Humidity: 80}) {
		t.Fatalf("max = %+v", tr.Max)
	}
}

func TestResetsCopyLive(t *testing.T) {
	var tr Tracker
	tr.Observe(types.Reading{TempC: 10, Humidity: 40})
	tr.Observe(types.Reading{TempC: 30, Humidity: 90})
	tr.Observe(types.Reading{TempC: 20, Humidity: 65})

	tr.ResetMin()
	if tr.Min != tr.Live {
		t.Fatalf("ResetMin: min=%+v live=%+v", tr.Min, tr.Live)
	}
	tr.ResetMax()
	if tr.Max != tr.Live {
		t.Fatalf("ResetMax: max=%+v live=%+v", tr.Max, tr.Live)
	}
}
