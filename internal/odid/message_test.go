package odid_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/openflightid/godid/internal/odid"
)

func TestBasicIDRoundTrip(t *testing.T) {
	t.Parallel()

	in := odid.BasicIDData{
		IDType: odid.IDTypeSerialNumber,
		UAType: odid.UATypeRotorcraft,
		UASID:  "12345678901234567890",
	}
	buf, err := odid.EncodeBasicID(in)
	if err != nil {
		t.Fatalf("EncodeBasicID: %v", err)
	}

	// Byte 1 is (id_type<<4)|ua_type per the prose formula and the
	// original packed-struct layout (see DESIGN.md's noted spec
	// worked-example inconsistency).
	if buf[1] != 0x12 {
		t.Errorf("byte 1 = 0x%02X, want 0x12", buf[1])
	}

	got, err := odid.DecodeBasicID(buf)
	if err != nil {
		t.Fatalf("DecodeBasicID: %v", err)
	}
	if got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestBasicIDInvalidEnum(t *testing.T) {
	t.Parallel()

	var buf [odid.MessageSize]byte
	buf[1] = 0xF0 // id_type nibble 0xF is out of range
	if _, err := odid.DecodeBasicID(buf); !errors.Is(err, odid.ErrInvalidEnum) {
		t.Errorf("DecodeBasicID error = %v, want ErrInvalidEnum", err)
	}
}

func TestLocationScenario(t *testing.T) {
	t.Parallel()

	in := odid.LocationData{
		Status:          odid.StatusAirborne,
		HeightType:      odid.HeightAboveGround,
		Direction:       215.7,
		SpeedHorizontal: 5.4,
		SpeedVertical:   5.25,
		Latitude:        45.539309,
		Longitude:       -122.966389,
		AltitudeBaro:    100,
		AltitudeGeo:     110,
		Height:          80,
		HorizAcc:        odid.HorizAcc3m,
		VertAcc:         odid.VertAcc1m,
		BaroAcc:         odid.VertAcc3m,
		SpeedAcc:        odid.SpeedAcc1mps,
		TSAcc:           odid.TimestampAccuracy(2), // 0.2s
		Timestamp:       360.52,
	}

	buf, err := odid.EncodeLocation(in)
	if err != nil {
		t.Fatalf("EncodeLocation: %v", err)
	}
	got, err := odid.DecodeLocation(buf)
	if err != nil {
		t.Fatalf("DecodeLocation: %v", err)
	}

	if got.Direction != 215 && got.Direction != 216 {
		t.Errorf("direction = %v, want 215 or 216", got.Direction)
	}
	if math.Abs(got.SpeedHorizontal-5.4) > 0.75 {
		t.Errorf("speed_h = %v, want within 0.75 of 5.4", got.SpeedHorizontal)
	}
	if math.Abs(got.Latitude-45.539309) > 1e-6 {
		t.Errorf("latitude = %v, want ~45.539309", got.Latitude)
	}
	if math.Abs(got.Longitude+122.966389) > 1e-6 {
		t.Errorf("longitude = %v, want ~-122.966389", got.Longitude)
	}
	if got.Timestamp != 360.5 {
		t.Errorf("timestamp = %v, want 360.5", got.Timestamp)
	}
	if got.Status != odid.StatusAirborne || got.HeightType != odid.HeightAboveGround {
		t.Errorf("status/height_type not preserved: %+v", got)
	}
}

func TestLocationReservedByteZero(t *testing.T) {
	t.Parallel()

	buf, err := odid.EncodeLocation(odid.LocationData{Status: odid.StatusGround})
	if err != nil {
		t.Fatalf("EncodeLocation: %v", err)
	}
	if buf[24] != 0 {
		t.Errorf("reserved byte 24 = 0x%02X, want 0", buf[24])
	}
}

func TestAuthenticationMultiPage(t *testing.T) {
	t.Parallel()

	page0 := odid.AuthenticationData{
		AuthType:      odid.AuthTypeUASIDSignature,
		DataPage:      0,
		LastPageIndex: 1,
		Length:        40,
		Timestamp:     28_000_000,
		Data:          []byte("12345678901234567"),
	}
	buf0, err := odid.EncodeAuthentication(page0)
	if err != nil {
		t.Fatalf("EncodeAuthentication page0: %v", err)
	}
	if buf0[1] != 0x10 {
		t.Errorf("page0 byte 1 = 0x%02X, want 0x10", buf0[1])
	}

	page1 := odid.AuthenticationData{
		AuthType: odid.AuthTypeUASIDSignature,
		DataPage: 1,
		Data:     []byte("12345678901234567890123"),
	}
	buf1, err := odid.EncodeAuthentication(page1)
	if err != nil {
		t.Fatalf("EncodeAuthentication page1: %v", err)
	}
	if buf1[1] != 0x11 {
		t.Errorf("page1 byte 1 = 0x%02X, want 0x11", buf1[1])
	}

	got0, err := odid.DecodeAuthentication(buf0)
	if err != nil {
		t.Fatalf("DecodeAuthentication page0: %v", err)
	}
	if got0.LastPageIndex != 1 || got0.Length != 40 || got0.Timestamp != 28_000_000 {
		t.Errorf("page0 header fields = %+v", got0)
	}
	if !bytes.Equal(got0.Data, []byte("12345678901234567")) {
		t.Errorf("page0 data = %q", got0.Data)
	}

	got1, err := odid.DecodeAuthentication(buf1)
	if err != nil {
		t.Fatalf("DecodeAuthentication page1: %v", err)
	}
	if !bytes.Equal(got1.Data, []byte("12345678901234567890123")) {
		t.Errorf("page1 data = %q", got1.Data)
	}
}

func TestAuthenticationInvalidPage(t *testing.T) {
	t.Parallel()

	_, err := odid.EncodeAuthentication(odid.AuthenticationData{DataPage: odid.MaxAuthPages})
	if !errors.Is(err, odid.ErrInvalidPage) {
		t.Errorf("EncodeAuthentication error = %v, want ErrInvalidPage", err)
	}
}

func TestAuthenticationDataNotNullTrimmed(t *testing.T) {
	t.Parallel()

	// Opaque binary data legitimately ending in zero bytes must survive
	// round-trip without truncation.
	in := odid.AuthenticationData{
		DataPage: 1,
		Data:     []byte{1, 2, 3, 0, 0, 0},
	}
	buf, err := odid.EncodeAuthentication(in)
	if err != nil {
		t.Fatalf("EncodeAuthentication: %v", err)
	}
	got, err := odid.DecodeAuthentication(buf)
	if err != nil {
		t.Fatalf("DecodeAuthentication: %v", err)
	}
	if len(got.Data) != 23 {
		t.Fatalf("page data length = %d, want 23 (full fixed width)", len(got.Data))
	}
	if got.Data[0] != 1 || got.Data[1] != 2 || got.Data[2] != 3 {
		t.Errorf("leading data bytes not preserved: %v", got.Data[:3])
	}
}

func TestSelfIDRoundTrip(t *testing.T) {
	t.Parallel()

	in := odid.SelfIDData{DescType: odid.DescTypeText, Description: "Operating in visual LOS"}
	buf, err := odid.EncodeSelfID(in)
	if err != nil {
		t.Fatalf("EncodeSelfID: %v", err)
	}
	got, err := odid.DecodeSelfID(buf)
	if err != nil {
		t.Fatalf("DecodeSelfID: %v", err)
	}
	if got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestSystemRoundTrip(t *testing.T) {
	t.Parallel()

	in := odid.SystemData{
		OperatorLocationType: odid.OperatorLocationLiveGNSS,
		ClassificationType:   odid.ClassificationEU,
		OperatorLatitude:     45.0,
		OperatorLongitude:    -122.0,
		AreaCount:            1,
		AreaRadius:           500,
		AreaCeiling:          400,
		AreaFloor:            0,
		CategoryEU:           odid.CategoryEUOpen,
		ClassEU:              odid.ClassEU2,
		OperatorAltitudeGeo:  50,
		Timestamp:            123456,
	}
	buf, err := odid.EncodeSystem(in)
	if err != nil {
		t.Fatalf("EncodeSystem: %v", err)
	}
	got, err := odid.DecodeSystem(buf)
	if err != nil {
		t.Fatalf("DecodeSystem: %v", err)
	}
	if got.OperatorLocationType != in.OperatorLocationType || got.ClassificationType != in.ClassificationType {
		t.Errorf("enums not preserved: %+v", got)
	}
	if got.AreaRadius != 500 {
		t.Errorf("area radius = %d, want 500", got.AreaRadius)
	}
	if got.Timestamp != in.Timestamp {
		t.Errorf("timestamp = %d, want %d", got.Timestamp, in.Timestamp)
	}
}

func TestOperatorIDRoundTrip(t *testing.T) {
	t.Parallel()

	in := odid.OperatorIDData{OperatorIDType: odid.OperatorIDTypeCAARegistration, OperatorID: "FIN87astrdge12k8"}
	buf, err := odid.EncodeOperatorID(in)
	if err != nil {
		t.Fatalf("EncodeOperatorID: %v", err)
	}
	got, err := odid.DecodeOperatorID(buf)
	if err != nil {
		t.Fatalf("DecodeOperatorID: %v", err)
	}
	if got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestMessageTypeOf(t *testing.T) {
	t.Parallel()

	buf, err := odid.EncodeSelfID(odid.SelfIDData{})
	if err != nil {
		t.Fatalf("EncodeSelfID: %v", err)
	}
	if got := odid.MessageTypeOf(buf); got != odid.MessageTypeSelfID {
		t.Errorf("MessageTypeOf = %v, want SelfID", got)
	}

	var garbage [odid.MessageSize]byte
	garbage[0] = 0x90 // nibble 9 is unassigned
	if got := odid.MessageTypeOf(garbage); got != odid.MessageTypeInvalid {
		t.Errorf("MessageTypeOf(garbage) = %v, want Invalid", got)
	}
}

func TestMessageTypeString(t *testing.T) {
	t.Parallel()

	if odid.MessageTypeLocation.String() != "Location" {
		t.Errorf("String() = %q, want Location", odid.MessageTypeLocation.String())
	}
	if got := odid.MessageType(0x9).String(); got == "" {
		t.Errorf("String() for unknown type returned empty")
	}
}
