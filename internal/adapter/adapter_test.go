package adapter_test

import (
	"testing"

	"github.com/openflightid/godid/internal/adapter"
	"github.com/openflightid/godid/internal/odid"
)

func TestBasicIDRoundTrip(t *testing.T) {
	t.Parallel()

	f := adapter.FramedBasicID{IDType: uint8(odid.IDTypeSerialNumber), UAType: uint8(odid.UATypeRotorcraft), UASID: "1584070150AB1234"}
	d := adapter.ToBasicID(f)
	if d.IDType != odid.IDTypeSerialNumber || d.UAType != odid.UATypeRotorcraft || d.UASID != f.UASID {
		t.Fatalf("ToBasicID(%+v) = %+v", f, d)
	}

	back := adapter.FromBasicID(d)
	if back != f {
		t.Errorf("FromBasicID(ToBasicID(f)) = %+v, want %+v", back, f)
	}
}

func TestLocationUnitConversion(t *testing.T) {
	t.Parallel()

	// libmav2odid divides direction/speed by 100 and lat/lon by 1E7.
	f := adapter.FramedLocation{
		Direction:       21570, // centidegrees -> 215.70
		SpeedHorizontal: 540,   // cm/s -> 5.40
		SpeedVertical:   -150,  // cm/s -> -1.50
		Latitude:        473377000,
		Longitude:       85540000,
		AltitudeBaro:    100.5,
		AltitudeGeo:     100.5,
		Height:          50,
		Timestamp:       36050, // centiseconds -> 360.50
	}

	d := adapter.ToLocation(f)

	if got, want := d.Direction, 215.70; abs(got-want) > 1e-9 {
		t.Errorf("Direction = %v, want %v", got, want)
	}
	if got, want := d.SpeedHorizontal, 5.40; abs(got-want) > 1e-9 {
		t.Errorf("SpeedHorizontal = %v, want %v", got, want)
	}
	if got, want := d.SpeedVertical, -1.50; abs(got-want) > 1e-9 {
		t.Errorf("SpeedVertical = %v, want %v", got, want)
	}
	if got, want := d.Latitude, 47.3377; abs(got-want) > 1e-7 {
		t.Errorf("Latitude = %v, want %v", got, want)
	}
	if got, want := d.Longitude, 8.554; abs(got-want) > 1e-7 {
		t.Errorf("Longitude = %v, want %v", got, want)
	}
	if got, want := d.Timestamp, 360.50; abs(got-want) > 1e-9 {
		t.Errorf("Timestamp = %v, want %v", got, want)
	}

	back := adapter.FromLocation(d)
	if back.Direction != f.Direction || back.SpeedHorizontal != f.SpeedHorizontal ||
		back.SpeedVertical != f.SpeedVertical || back.Latitude != f.Latitude ||
		back.Longitude != f.Longitude || back.Timestamp != f.Timestamp {
		t.Errorf("FromLocation(ToLocation(f)) = %+v, want %+v", back, f)
	}
}

func TestAuthenticationPageZeroFields(t *testing.T) {
	t.Parallel()

	f := adapter.FramedAuthentication{
		AuthType:      uint8(odid.AuthTypeUASIDSignature),
		DataPage:      0,
		LastPageIndex: 2,
		Length:        40,
		Timestamp:     123456,
		Data:          []byte{0x01, 0x02, 0x03},
	}
	d := adapter.ToAuthentication(f)

	if d.DataPage != 0 || d.LastPageIndex != 2 || d.Length != 40 || d.Timestamp != 123456 {
		t.Fatalf("ToAuthentication page 0 = %+v", d)
	}
	if len(d.Data) != 3 {
		t.Fatalf("Data len = %d, want 3", len(d.Data))
	}

	back := adapter.FromAuthentication(d)
	if back.DataPage != f.DataPage || back.LastPageIndex != f.LastPageIndex ||
		back.Length != f.Length || back.Timestamp != f.Timestamp {
		t.Errorf("FromAuthentication(ToAuthentication(f)) = %+v, want %+v", back, f)
	}
}

func TestAuthenticationDataIsCopied(t *testing.T) {
	t.Parallel()

	src := []byte{0xAA, 0xBB}
	f := adapter.FramedAuthentication{Data: src}
	d := adapter.ToAuthentication(f)

	d.Data[0] = 0xFF
	if src[0] != 0xAA {
		t.Error("ToAuthentication aliased the source slice")
	}
}

func TestSystemUnitConversion(t *testing.T) {
	t.Parallel()

	f := adapter.FramedSystem{
		OperatorLatitude:  473377000,
		OperatorLongitude: 85540000,
		AreaRadius:        150,
	}
	d := adapter.ToSystem(f)

	if got, want := d.OperatorLatitude, 47.3377; abs(got-want) > 1e-7 {
		t.Errorf("OperatorLatitude = %v, want %v", got, want)
	}
	if got, want := d.OperatorLongitude, 8.554; abs(got-want) > 1e-7 {
		t.Errorf("OperatorLongitude = %v, want %v", got, want)
	}
	if d.AreaRadius != 150 {
		t.Errorf("AreaRadius = %v, want 150", d.AreaRadius)
	}

	back := adapter.FromSystem(d)
	if back.OperatorLatitude != f.OperatorLatitude || back.OperatorLongitude != f.OperatorLongitude {
		t.Errorf("FromSystem(ToSystem(f)) = %+v, want %+v", back, f)
	}
}

func TestSelfIDAndOperatorIDRoundTrip(t *testing.T) {
	t.Parallel()

	sf := adapter.FramedSelfID{DescType: uint8(odid.DescTypeText), Description: "Pizza delivery"}
	sd := adapter.ToSelfID(sf)
	if back := adapter.FromSelfID(sd); back != sf {
		t.Errorf("FromSelfID(ToSelfID(f)) = %+v, want %+v", back, sf)
	}

	of := adapter.FramedOperatorID{OperatorIDType: uint8(odid.OperatorIDTypeCAARegistration), OperatorID: "FIN87astrdge12k8"}
	od := adapter.ToOperatorID(of)
	if back := adapter.FromOperatorID(od); back != of {
		t.Errorf("FromOperatorID(ToOperatorID(f)) = %+v, want %+v", back, of)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
