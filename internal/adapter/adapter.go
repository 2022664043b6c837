// Package adapter translates an external framed-telemetry protocol's
// native units (centidegrees, centimeters-per-second, 1e7 fixed-point
// coordinates) into the internal/odid logical records and back, the way
// libmav2odid's m2o_* functions sit between a Mavlink decoder and the
// Open Drone ID encoder.
package adapter

import "github.com/openflightid/godid/internal/odid"

// FramedBasicID mirrors an external Basic ID telemetry frame's native
// field widths.
type FramedBasicID struct {
	IDType uint8
	UAType uint8
	UASID  string
}

// ToBasicID converts a framed Basic ID into its logical record.
func ToBasicID(f FramedBasicID) odid.BasicIDData {
	return odid.BasicIDData{
		IDType: odid.IDType(f.IDType),
		UAType: odid.UAType(f.UAType),
		UASID:  f.UASID,
	}
}

// FromBasicID converts a logical Basic ID record back into frame units.
func FromBasicID(d odid.BasicIDData) FramedBasicID {
	return FramedBasicID{IDType: uint8(d.IDType), UAType: uint8(d.UAType), UASID: d.UASID}
}

// FramedLocation mirrors an external Location telemetry frame: direction
// in centidegrees, speeds in centimeters per second, lat/lon as 1e7
// fixed-point integers, altitudes and height in meters, timestamp in
// centiseconds (matching libmav2odid's division-by-100/1E7 conversions).
type FramedLocation struct {
	Status          uint8
	HeightType      uint8
	Direction       int32 // centidegrees
	SpeedHorizontal int32 // cm/s
	SpeedVertical   int32 // cm/s
	Latitude        int32 // 1e7 fixed point
	Longitude       int32 // 1e7 fixed point
	AltitudeBaro    float64
	AltitudeGeo     float64
	Height          float64
	HorizAcc        uint8
	VertAcc         uint8
	BaroAcc         uint8
	SpeedAcc        uint8
	TSAcc           uint8
	Timestamp       int32 // centiseconds
}

// ToLocation converts a framed Location into its logical record.
func ToLocation(f FramedLocation) odid.LocationData {
	return odid.LocationData{
		Status:          odid.LocationStatus(f.Status),
		HeightType:      odid.HeightType(f.HeightType),
		Direction:       float64(f.Direction) / 100,
		SpeedHorizontal: float64(f.SpeedHorizontal) / 100,
		SpeedVertical:   float64(f.SpeedVertical) / 100,
		Latitude:        float64(f.Latitude) / 1e7,
		Longitude:       float64(f.Longitude) / 1e7,
		AltitudeBaro:    f.AltitudeBaro,
		AltitudeGeo:     f.AltitudeGeo,
		Height:          f.Height,
		HorizAcc:        odid.HorizontalAccuracy(f.HorizAcc),
		VertAcc:         odid.VerticalAccuracy(f.VertAcc),
		BaroAcc:         odid.VerticalAccuracy(f.BaroAcc),
		SpeedAcc:        odid.SpeedAccuracy(f.SpeedAcc),
		TSAcc:           odid.TimestampAccuracy(f.TSAcc),
		Timestamp:       float64(f.Timestamp) / 100,
	}
}

// FromLocation converts a logical Location record back into frame units.
func FromLocation(d odid.LocationData) FramedLocation {
	return FramedLocation{
		Status:          uint8(d.Status),
		HeightType:      uint8(d.HeightType),
		Direction:       int32(d.Direction * 100),
		SpeedHorizontal: int32(d.SpeedHorizontal * 100),
		SpeedVertical:   int32(d.SpeedVertical * 100),
		Latitude:        int32(d.Latitude * 1e7),
		Longitude:       int32(d.Longitude * 1e7),
		AltitudeBaro:    d.AltitudeBaro,
		AltitudeGeo:     d.AltitudeGeo,
		Height:          d.Height,
		HorizAcc:        uint8(d.HorizAcc),
		VertAcc:         uint8(d.VertAcc),
		BaroAcc:         uint8(d.BaroAcc),
		SpeedAcc:        uint8(d.SpeedAcc),
		TSAcc:           uint8(d.TSAcc),
		Timestamp:       int32(d.Timestamp * 100),
	}
}

// FramedAuthentication mirrors an external Authentication telemetry
// frame. LastPageIndex, Length, and Timestamp apply only to data_page 0
// (spec.md §9's non-overlaid layout).
type FramedAuthentication struct {
	AuthType      uint8
	DataPage      uint8
	LastPageIndex uint8
	Length        uint8
	Timestamp     uint32
	Data          []byte
}

// ToAuthentication converts a framed Authentication page into its
// logical record.
func ToAuthentication(f FramedAuthentication) odid.AuthenticationData {
	return odid.AuthenticationData{
		AuthType:      odid.AuthType(f.AuthType),
		DataPage:      f.DataPage,
		LastPageIndex: f.LastPageIndex,
		Length:        f.Length,
		Timestamp:     f.Timestamp,
		Data:          append([]byte(nil), f.Data...),
	}
}

// FromAuthentication converts a logical Authentication record back into
// frame units.
func FromAuthentication(d odid.AuthenticationData) FramedAuthentication {
	return FramedAuthentication{
		AuthType:      uint8(d.AuthType),
		DataPage:      d.DataPage,
		LastPageIndex: d.LastPageIndex,
		Length:        d.Length,
		Timestamp:     d.Timestamp,
		Data:          append([]byte(nil), d.Data...),
	}
}

// FramedSelfID mirrors an external Self ID telemetry frame.
type FramedSelfID struct {
	DescType    uint8
	Description string
}

// ToSelfID converts a framed Self ID into its logical record.
func ToSelfID(f FramedSelfID) odid.SelfIDData {
	return odid.SelfIDData{DescType: odid.DescType(f.DescType), Description: f.Description}
}

// FromSelfID converts a logical Self ID record back into frame units.
func FromSelfID(d odid.SelfIDData) FramedSelfID {
	return FramedSelfID{DescType: uint8(d.DescType), Description: d.Description}
}

// FramedSystem mirrors an external System telemetry frame: operator
// lat/lon as 1e7 fixed-point integers, areas in native meter units.
type FramedSystem struct {
	OperatorLocationType uint8
	ClassificationType   uint8
	OperatorLatitude     int32
	OperatorLongitude    int32
	AreaCount            uint16
	AreaRadius           uint16
	AreaCeiling          float64
	AreaFloor            float64
	CategoryEU           uint8
	ClassEU              uint8
	OperatorAltitudeGeo  float64
	Timestamp            uint32
}

// ToSystem converts a framed System into its logical record.
func ToSystem(f FramedSystem) odid.SystemData {
	return odid.SystemData{
		OperatorLocationType: odid.OperatorLocationType(f.OperatorLocationType),
		ClassificationType:   odid.ClassificationType(f.ClassificationType),
		OperatorLatitude:     float64(f.OperatorLatitude) / 1e7,
		OperatorLongitude:    float64(f.OperatorLongitude) / 1e7,
		AreaCount:            f.AreaCount,
		AreaRadius:           f.AreaRadius,
		AreaCeiling:          f.AreaCeiling,
		AreaFloor:            f.AreaFloor,
		CategoryEU:           odid.CategoryEU(f.CategoryEU),
		ClassEU:              odid.ClassEU(f.ClassEU),
		OperatorAltitudeGeo:  f.OperatorAltitudeGeo,
		Timestamp:            f.Timestamp,
	}
}

// FromSystem converts a logical System record back into frame units.
func FromSystem(d odid.SystemData) FramedSystem {
	return FramedSystem{
		OperatorLocationType: uint8(d.OperatorLocationType),
		ClassificationType:   uint8(d.ClassificationType),
		OperatorLatitude:     int32(d.OperatorLatitude * 1e7),
		OperatorLongitude:    int32(d.OperatorLongitude * 1e7),
		AreaCount:            d.AreaCount,
		AreaRadius:           d.AreaRadius,
		AreaCeiling:          d.AreaCeiling,
		AreaFloor:            d.AreaFloor,
		CategoryEU:           uint8(d.CategoryEU),
		ClassEU:              uint8(d.ClassEU),
		OperatorAltitudeGeo:  d.OperatorAltitudeGeo,
		Timestamp:            d.Timestamp,
	}
}

// FramedOperatorID mirrors an external Operator ID telemetry frame.
type FramedOperatorID struct {
	OperatorIDType uint8
	OperatorID     string
}

// ToOperatorID converts a framed Operator ID into its logical record.
func ToOperatorID(f FramedOperatorID) odid.OperatorIDData {
	return odid.OperatorIDData{OperatorIDType: odid.OperatorIDType(f.OperatorIDType), OperatorID: f.OperatorID}
}

// FromOperatorID converts a logical Operator ID record back into frame
// units.
func FromOperatorID(d odid.OperatorIDData) FramedOperatorID {
	return FramedOperatorID{OperatorIDType: uint8(d.OperatorIDType), OperatorID: d.OperatorID}
}
