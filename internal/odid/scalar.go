package odid

import "math"

// Quantiser constants (spec.md §4.1).
const (
	speedLow    = 0.25 // m/s per LSB below the slope break
	speedHigh   = 0.75 // m/s per LSB above the slope break
	vspeedScale = 0.5  // m/s per LSB, vertical speed
	latLonMult  = 10_000_000
	altScale    = 0.5  // m per LSB
	altOffset   = 1000 // m, altitude zero-point offset
)

// Sentinel values for "unknown / not provided" on decoded output
// (spec.md §6).
const (
	DirectionUnknown             = 361
	SpeedHorizontalUnknown       = 255.0
	SpeedVerticalUnknown         = 63.0
	AltitudeUnknown              = -1000.0
	AreaRadiusMax          uint8 = 255
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EncodeDirection quantises a track direction in degrees (0 <= d < 360, or
// 361 for unknown) into a single byte plus an East/West sign bit.
func EncodeDirection(degrees float64) (encoded uint8, ewBit bool) {
	d := clampF(degrees, 0, 361)
	di := int64(math.Round(d))
	if di >= 180 {
		return uint8(di - 180), true
	}
	return uint8(di), false
}

// DecodeDirection reverses EncodeDirection. The East/West bit selects
// whether 180 degrees is added back; no further reduction is applied, so
// the 361-degree unknown sentinel round-trips exactly (361 = 181 + 180).
func DecodeDirection(encoded uint8, ewBit bool) float64 {
	d := float64(encoded)
	if ewBit {
		d += 180
	}
	return d
}

// EncodeSpeedHorizontal quantises a non-negative horizontal speed in m/s
// using the two-slope scheme: SpeedLow (0.25 m/s) resolution up to 63.75
// m/s, SpeedHigh (0.75 m/s) resolution above that, up to 255 m/s.
func EncodeSpeedHorizontal(mps float64) (encoded uint8, multBit bool) {
	s := clampF(mps, 0, 255)
	breakpoint := 255 * speedLow
	if s <= breakpoint {
		return uint8(math.Floor(s / speedLow)), false
	}
	big := int64(math.Floor((s - breakpoint) / speedHigh))
	return uint8(clampI(big, 0, 255)), true
}

// DecodeSpeedHorizontal reverses EncodeSpeedHorizontal.
func DecodeSpeedHorizontal(encoded uint8, multBit bool) float64 {
	if multBit {
		return float64(encoded)*speedHigh + 255*speedLow
	}
	return float64(encoded) * speedLow
}

// EncodeSpeedVertical quantises a signed vertical speed in m/s, clamped to
// [-63, 63], at 0.5 m/s resolution.
func EncodeSpeedVertical(mps float64) int8 {
	v := clampF(mps, -63, 63)
	enc := clampI(int64(v/vspeedScale), math.MinInt8, math.MaxInt8)
	return int8(enc)
}

// DecodeSpeedVertical reverses EncodeSpeedVertical.
func DecodeSpeedVertical(encoded int8) float64 {
	return float64(encoded) * vspeedScale
}

// EncodeLatLon quantises a latitude or longitude in degrees, clamped to
// [-180, 180], at 1e-7 degree resolution (roughly 1 cm).
func EncodeLatLon(degrees float64) int32 {
	clamped := clampF(degrees, -180, 180)
	return int32(clampI(int64(math.Round(clamped*latLonMult)), -180*latLonMult, 180*latLonMult))
}

// DecodeLatLon reverses EncodeLatLon.
func DecodeLatLon(encoded int32) float64 {
	return float64(encoded) / latLonMult
}

// EncodeAltitude quantises an altitude in meters, clamped to
// [-1000, 31767.5], as an offset+scale uint16.
func EncodeAltitude(meters float64) uint16 {
	m := clampF(meters, -1000, 31767.5)
	enc := clampI(int64(math.Floor((m+altOffset)/altScale)), 0, math.MaxUint16)
	return uint16(enc)
}

// DecodeAltitude reverses EncodeAltitude.
func DecodeAltitude(encoded uint16) float64 {
	return float64(encoded)*altScale - altOffset
}

// EncodeTimestamp quantises seconds-after-the-hour into tenths of a
// second, clamped to a full hour (36000 tenths).
func EncodeTimestamp(seconds float64) uint16 {
	enc := clampI(int64(math.Round(seconds*10)), 0, 36000)
	return uint16(enc)
}

// DecodeTimestamp reverses EncodeTimestamp.
func DecodeTimestamp(encoded uint16) float64 {
	return float64(encoded) / 10
}

// EncodeAreaRadius quantises an area radius in meters into 10-metre units.
func EncodeAreaRadius(meters uint16) uint8 {
	enc := clampI(int64(meters/10), 0, 255)
	return uint8(enc)
}

// DecodeAreaRadius reverses EncodeAreaRadius.
func DecodeAreaRadius(encoded uint8) uint16 {
	return uint16(encoded) * 10
}

// -------------------------------------------------------------------------
// Accuracy ladders
//
// Each ladder maps a continuous metre-or-second quantity to an enum grade.
// The ladders are walked from the loosest bound inward; the first bound
// whose threshold the value is strictly greater than gives the grade,
// falling back to the type's Unknown grade.
// -------------------------------------------------------------------------

// HorizontalAccuracy is the 4-bit horizontal accuracy enum (spec.md §4.1).
type HorizontalAccuracy uint8

const (
	HorizAccUnknown HorizontalAccuracy = 0
	HorizAcc10NM    HorizontalAccuracy = 1
	HorizAcc4NM     HorizontalAccuracy = 2
	HorizAcc2NM     HorizontalAccuracy = 3
	HorizAcc1NM     HorizontalAccuracy = 4
	HorizAcc05NM    HorizontalAccuracy = 5
	HorizAcc03NM    HorizontalAccuracy = 6
	HorizAcc01NM    HorizontalAccuracy = 7
	HorizAcc005NM   HorizontalAccuracy = 8
	HorizAcc30m     HorizontalAccuracy = 9
	HorizAcc10m     HorizontalAccuracy = 10
	HorizAcc3m      HorizontalAccuracy = 11
	HorizAcc1m      HorizontalAccuracy = 12
)

type accuracyBound struct {
	grade   uint8
	greater float64
	bound   float64
}

var horizontalAccuracyLadder = []accuracyBound{
	{uint8(HorizAcc10NM), 7408, 18520},
	{uint8(HorizAcc4NM), 3704, 7408},
	{uint8(HorizAcc2NM), 1852, 3704},
	{uint8(HorizAcc1NM), 926, 1852},
	{uint8(HorizAcc05NM), 555.6, 926},
	{uint8(HorizAcc03NM), 185.2, 555.6},
	{uint8(HorizAcc01NM), 92.6, 185.2},
	{uint8(HorizAcc005NM), 30, 92.6},
	{uint8(HorizAcc30m), 10, 30},
	{uint8(HorizAcc10m), 3, 10},
	{uint8(HorizAcc3m), 1, 3},
	{uint8(HorizAcc1m), 0, 1},
}

// EncodeHorizontalAccuracy buckets a horizontal accuracy in meters into
// its enum grade.
func EncodeHorizontalAccuracy(meters float64) HorizontalAccuracy {
	if meters >= 18520 {
		return HorizAccUnknown
	}
	for _, b := range horizontalAccuracyLadder {
		if meters > b.greater {
			return HorizontalAccuracy(b.grade)
		}
	}
	return HorizAccUnknown
}

// MaxMeters returns the grade's maximum-bound accuracy in meters.
func (a HorizontalAccuracy) MaxMeters() float64 {
	for _, b := range horizontalAccuracyLadder {
		if uint8(a) == b.grade {
			return b.bound
		}
	}
	return 18520
}

// VerticalAccuracy is the 4-bit vertical accuracy enum (spec.md §4.1).
type VerticalAccuracy uint8

const (
	VertAccUnknown VerticalAccuracy = 0
	VertAcc150m    VerticalAccuracy = 1
	VertAcc45m     VerticalAccuracy = 2
	VertAcc25m     VerticalAccuracy = 3
	VertAcc10m     VerticalAccuracy = 4
	VertAcc3m      VerticalAccuracy = 5
	VertAcc1m      VerticalAccuracy = 6
)

var verticalAccuracyLadder = []accuracyBound{
	{uint8(VertAcc150m), 45, 150},
	{uint8(VertAcc45m), 25, 45},
	{uint8(VertAcc25m), 10, 25},
	{uint8(VertAcc10m), 3, 10},
	{uint8(VertAcc3m), 1, 3},
	{uint8(VertAcc1m), 0, 1},
}

// EncodeVerticalAccuracy buckets a vertical accuracy in meters into its
// enum grade.
func EncodeVerticalAccuracy(meters float64) VerticalAccuracy {
	if meters >= 150 {
		return VertAccUnknown
	}
	for _, b := range verticalAccuracyLadder {
		if meters > b.greater {
			return VerticalAccuracy(b.grade)
		}
	}
	return VertAccUnknown
}

// MaxMeters returns the grade's maximum-bound accuracy in meters.
func (a VerticalAccuracy) MaxMeters() float64 {
	for _, b := range verticalAccuracyLadder {
		if uint8(a) == b.grade {
			return b.bound
		}
	}
	return 150
}

// SpeedAccuracy is the 4-bit speed accuracy enum (spec.md §4.1).
type SpeedAccuracy uint8

const (
	SpeedAccUnknown SpeedAccuracy = 0
	SpeedAcc10mps   SpeedAccuracy = 1
	SpeedAcc3mps    SpeedAccuracy = 2
	SpeedAcc1mps    SpeedAccuracy = 3
	SpeedAcc03mps   SpeedAccuracy = 4
)

var speedAccuracyLadder = []accuracyBound{
	{uint8(SpeedAcc10mps), 3, 10},
	{uint8(SpeedAcc3mps), 1, 3},
	{uint8(SpeedAcc1mps), 0.3, 1},
	{uint8(SpeedAcc03mps), 0, 0.3},
}

// EncodeSpeedAccuracy buckets a speed accuracy in m/s into its enum grade.
func EncodeSpeedAccuracy(mps float64) SpeedAccuracy {
	if mps >= 10 {
		return SpeedAccUnknown
	}
	for _, b := range speedAccuracyLadder {
		if mps > b.greater {
			return SpeedAccuracy(b.grade)
		}
	}
	return SpeedAccUnknown
}

// MaxMPS returns the grade's maximum-bound accuracy in m/s.
func (a SpeedAccuracy) MaxMPS() float64 {
	for _, b := range speedAccuracyLadder {
		if uint8(a) == b.grade {
			return b.bound
		}
	}
	return 10
}

// TimestampAccuracy is the 4-bit timestamp accuracy enum (spec.md §4.1):
// 15 grades at 0.1s increments, plus Unknown.
type TimestampAccuracy uint8

const TimestampAccUnknown TimestampAccuracy = 0

var timestampAccuracyLadder = buildTimestampLadder()

func buildTimestampLadder() []accuracyBound {
	ladder := make([]accuracyBound, 0, 15)
	for grade := 15; grade >= 1; grade-- {
		bound := float64(grade) * 0.1
		greater := bound - 0.1
		ladder = append(ladder, accuracyBound{grade: uint8(grade), greater: greater, bound: bound})
	}
	return ladder
}

// EncodeTimestampAccuracy buckets a timestamp accuracy in seconds into its
// enum grade.
func EncodeTimestampAccuracy(seconds float64) TimestampAccuracy {
	if seconds > 1.5 || seconds <= 0 {
		return TimestampAccUnknown
	}
	for _, b := range timestampAccuracyLadder {
		if seconds > b.greater {
			return TimestampAccuracy(b.grade)
		}
	}
	return TimestampAccUnknown
}

// MaxSeconds returns the grade's maximum-bound accuracy in seconds.
func (a TimestampAccuracy) MaxSeconds() float64 {
	for _, b := range timestampAccuracyLadder {
		if uint8(a) == b.grade {
			return b.bound
		}
	}
	return 0
}
