package odid_test

import (
	"math"
	"testing"

	"github.com/openflightid/godid/internal/odid"
)

func TestDirectionRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		degrees float64
		want    float64
	}{
		{"zero", 0, 0},
		{"due east", 90, 90},
		{"due south", 179, 179},
		{"due west boundary", 180, 180},
		{"past west", 270, 270},
		{"max", 359, 359},
		{"unknown sentinel", odid.DirectionUnknown, odid.DirectionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			enc, ew := odid.EncodeDirection(tt.degrees)
			got := odid.DecodeDirection(enc, ew)
			if got != tt.want {
				t.Errorf("round trip %v -> (%d,%v) -> %v, want %v", tt.degrees, enc, ew, got, tt.want)
			}
		})
	}
}

func TestDirectionClamp(t *testing.T) {
	t.Parallel()

	enc, ew := odid.EncodeDirection(-5)
	got := odid.DecodeDirection(enc, ew)
	if got != 0 {
		t.Errorf("negative direction clamped to %v, want 0", got)
	}

	enc, ew = odid.EncodeDirection(400)
	got = odid.DecodeDirection(enc, ew)
	if got != odid.DirectionUnknown {
		t.Errorf("over-range direction clamped to %v, want %v", got, odid.DirectionUnknown)
	}
}

func TestSpeedHorizontalTwoSlope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mps  float64
		want float64
	}{
		{"zero", 0, 0},
		{"low slope mid", 10, 10},
		{"low slope boundary", 63.75, 63.75},
		{"high slope start", 64.5, 64.5},
		{"high slope mid", 100, 99.75},
		{"max", 254.75, 254.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			enc, mult := odid.EncodeSpeedHorizontal(tt.mps)
			got := odid.DecodeSpeedHorizontal(enc, mult)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("round trip %v -> (%d,%v) -> %v, want %v", tt.mps, enc, mult, got, tt.want)
			}
		})
	}
}

func TestSpeedHorizontalClampOverRange(t *testing.T) {
	t.Parallel()

	enc, mult := odid.EncodeSpeedHorizontal(1e6)
	got := odid.DecodeSpeedHorizontal(enc, mult)
	if math.Abs(got-odid.SpeedHorizontalUnknown) > 0.01 {
		t.Errorf("huge speed clamped to %v, want ~%v", got, odid.SpeedHorizontalUnknown)
	}
}

func TestSpeedVerticalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, mps := range []float64{0, 0.5, -0.5, 62.5, -63} {
		enc := odid.EncodeSpeedVertical(mps)
		got := odid.DecodeSpeedVertical(enc)
		if math.Abs(got-mps) > 0.01 {
			t.Errorf("speed vertical round trip %v -> %d -> %v", mps, enc, got)
		}
	}
}

func TestLatLonRoundTrip(t *testing.T) {
	t.Parallel()

	for _, deg := range []float64{0, 45.1234567, -45.1234567, 179.9999999, -179.9999999} {
		enc := odid.EncodeLatLon(deg)
		got := odid.DecodeLatLon(enc)
		if math.Abs(got-deg) > 1e-6 {
			t.Errorf("lat/lon round trip %v -> %d -> %v", deg, enc, got)
		}
	}
}

func TestLatLonClamp(t *testing.T) {
	t.Parallel()

	enc := odid.EncodeLatLon(200)
	got := odid.DecodeLatLon(enc)
	if got != 180 {
		t.Errorf("latitude 200 clamped to %v, want 180", got)
	}
}

func TestAltitudeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []float64{-1000, 0, 100.5, 31767.5} {
		enc := odid.EncodeAltitude(m)
		got := odid.DecodeAltitude(enc)
		if math.Abs(got-m) > 0.5 {
			t.Errorf("altitude round trip %v -> %d -> %v", m, enc, got)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []float64{0, 1800.5, 3600} {
		enc := odid.EncodeTimestamp(s)
		got := odid.DecodeTimestamp(enc)
		if math.Abs(got-s) > 0.05 {
			t.Errorf("timestamp round trip %v -> %d -> %v", s, enc, got)
		}
	}
}

func TestAreaRadiusRoundTrip(t *testing.T) {
	t.Parallel()

	enc := odid.EncodeAreaRadius(1234)
	got := odid.DecodeAreaRadius(enc)
	if got != 1230 {
		t.Errorf("area radius 1234 -> %d -> %d, want 1230", enc, got)
	}
}

func TestHorizontalAccuracyLadder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meters float64
		want   odid.HorizontalAccuracy
	}{
		{0.5, odid.HorizAcc1m},
		{2, odid.HorizAcc3m},
		{9, odid.HorizAcc10m},
		{20000, odid.HorizAccUnknown},
	}
	for _, tt := range tests {
		got := odid.EncodeHorizontalAccuracy(tt.meters)
		if got != tt.want {
			t.Errorf("EncodeHorizontalAccuracy(%v) = %v, want %v", tt.meters, got, tt.want)
		}
	}
}

func TestAccuracyMaxBoundMonotonic(t *testing.T) {
	t.Parallel()

	if odid.HorizAcc1m.MaxMeters() >= odid.HorizAcc3m.MaxMeters() {
		t.Errorf("tighter grade must have a smaller max bound")
	}
	if odid.VertAcc1m.MaxMeters() >= odid.VertAcc3m.MaxMeters() {
		t.Errorf("tighter grade must have a smaller max bound")
	}
	if odid.SpeedAcc03mps.MaxMPS() >= odid.SpeedAcc1mps.MaxMPS() {
		t.Errorf("tighter grade must have a smaller max bound")
	}
}

func TestTimestampAccuracyLadder(t *testing.T) {
	t.Parallel()

	got := odid.EncodeTimestampAccuracy(0.05)
	if got != odid.TimestampAccuracy(1) {
		t.Errorf("EncodeTimestampAccuracy(0.05) = %v, want grade 1", got)
	}
	got = odid.EncodeTimestampAccuracy(1.5)
	if got != odid.TimestampAccuracy(15) {
		t.Errorf("EncodeTimestampAccuracy(1.5) = %v, want grade 15", got)
	}
	got = odid.EncodeTimestampAccuracy(2)
	if got != odid.TimestampAccUnknown {
		t.Errorf("EncodeTimestampAccuracy(2) = %v, want unknown", got)
	}
}
