package odid

import (
	"encoding/binary"
	"fmt"
)

// -------------------------------------------------------------------------
// Wire Constants
// -------------------------------------------------------------------------

// MessageSize is the fixed wire size, in bytes, of every ODID message
// (spec.md §3).
const MessageSize = 25

// ProtocolVersion is the protocol version written into every prefix byte.
// The encoder writes it unconditionally; the decoder reads but does not
// validate it (spec.md §6: forward compatibility). Zero matches the
// concrete scenarios in spec.md §8 (e.g. a Basic ID prefix byte of
// 0x00, a pack prefix byte of 0xF0).
const ProtocolVersion uint8 = 0

// Slot and field-width limits.
const (
	MaxBasicIDSlots   = 2 // distinct id_type values an aggregate tracks at once
	MaxAuthPages      = 5 // spec.md §4.5's "2·(4 + MAX_AUTH_PAGES)" ring variant
	idFieldSize       = 20
	strFieldSize      = 23
	authPage0DataSize = 17
	authPageNDataSize = 23
)

// MessageType is the 4-bit message-type nibble (spec.md §3).
type MessageType uint8

const (
	MessageTypeBasicID        MessageType = 0
	MessageTypeLocation       MessageType = 1
	MessageTypeAuthentication MessageType = 2
	MessageTypeSelfID         MessageType = 3
	MessageTypeSystem         MessageType = 4
	MessageTypeOperatorID     MessageType = 5
	MessageTypeMessagePack    MessageType = 0xF
	MessageTypeInvalid        MessageType = 0xFF
)

var messageTypeNames = map[MessageType]string{
	MessageTypeBasicID:        "BasicID",
	MessageTypeLocation:       "Location",
	MessageTypeAuthentication: "Authentication",
	MessageTypeSelfID:         "SelfID",
	MessageTypeSystem:         "System",
	MessageTypeOperatorID:     "OperatorID",
	MessageTypeMessagePack:    "MessagePack",
	MessageTypeInvalid:        "Invalid",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

// -------------------------------------------------------------------------
// Enumerations
// -------------------------------------------------------------------------

// IDType is the Basic ID id_type field.
type IDType uint8

const (
	IDTypeNone            IDType = 0
	IDTypeSerialNumber    IDType = 1
	IDTypeCAARegistration IDType = 2
	IDTypeUTMUUID         IDType = 3
)

func (t IDType) valid() bool { return t <= IDTypeUTMUUID }

// UAType is the Basic ID ua_type field.
type UAType uint8

const (
	UATypeNone             UAType = 0
	UATypeFixedWingPowered UAType = 1
	UATypeRotorcraft       UAType = 2
	UATypeLTAPowered       UAType = 3
	UATypeLTAUnpowered     UAType = 4
	UATypeVTOL             UAType = 5
	UATypeFreeFall         UAType = 6
	UATypeRocket           UAType = 7
	UATypeGlider           UAType = 8
	UATypeOther            UAType = 9
)

func (t UAType) valid() bool { return t <= UATypeOther }

// LocationStatus is the Location status field.
type LocationStatus uint8

const (
	StatusUndeclared LocationStatus = 0
	StatusGround     LocationStatus = 1
	StatusAirborne   LocationStatus = 2
)

func (s LocationStatus) valid() bool { return s <= StatusAirborne }

// HeightType selects whether Height is above takeoff or above ground.
type HeightType uint8

const (
	HeightAboveTakeoff HeightType = 0
	HeightAboveGround  HeightType = 1
)

func (h HeightType) valid() bool { return h <= HeightAboveGround }

// AuthType is the Authentication auth_type field.
type AuthType uint8

const (
	AuthTypeNone                   AuthType = 0
	AuthTypeUASIDSignature         AuthType = 1
	AuthTypeOperatorIDSignature    AuthType = 2
	AuthTypeMessageSetSignature    AuthType = 3
	AuthTypeNetworkRemoteID        AuthType = 4
	AuthTypeSpecificAuthentication AuthType = 5
)

func (a AuthType) valid() bool { return a <= AuthTypeSpecificAuthentication || a >= 0xA }

// DescType is the Self ID desc_type field.
type DescType uint8

const DescTypeText DescType = 0

// OperatorLocationType is the System message's loc_type field. The wire
// layout reserves a single bit for it (spec.md §4.2), so only two values
// are representable.
type OperatorLocationType uint8

const (
	OperatorLocationTakeoff  OperatorLocationType = 0
	OperatorLocationLiveGNSS OperatorLocationType = 1
)

func (o OperatorLocationType) valid() bool { return o <= OperatorLocationLiveGNSS }

// ClassificationType is the System message's classification_type field.
type ClassificationType uint8

const (
	ClassificationUndeclared ClassificationType = 0
	ClassificationEU         ClassificationType = 1
)

func (c ClassificationType) valid() bool { return c <= ClassificationEU }

// CategoryEU is the EU UAS operational category.
type CategoryEU uint8

const (
	CategoryEUUndefined CategoryEU = 0
	CategoryEUOpen      CategoryEU = 1
	CategoryEUSpecific  CategoryEU = 2
	CategoryEUCertified CategoryEU = 3
)

// ClassEU is the EU UAS class marking.
type ClassEU uint8

const (
	ClassEUUndefined ClassEU = 0
	ClassEU0         ClassEU = 1
	ClassEU1         ClassEU = 2
	ClassEU2         ClassEU = 3
	ClassEU3         ClassEU = 4
	ClassEU4         ClassEU = 5
	ClassEU5         ClassEU = 6
	ClassEU6         ClassEU = 7
)

// OperatorIDType is the Operator ID message's operator_id_type field.
type OperatorIDType uint8

const OperatorIDTypeCAARegistration OperatorIDType = 0

// -------------------------------------------------------------------------
// Logical Records
// -------------------------------------------------------------------------

// BasicIDData is the logical Basic ID record.
type BasicIDData struct {
	IDType IDType
	UAType UAType
	UASID  string
}

// LocationData is the logical Location record.
type LocationData struct {
	Status          LocationStatus
	HeightType      HeightType
	Direction       float64 // degrees, 0<=d<360, or 361 unknown
	SpeedHorizontal float64 // m/s, or 255 unknown
	SpeedVertical   float64 // m/s signed, or 63 unknown
	Latitude        float64
	Longitude       float64
	AltitudeBaro    float64
	AltitudeGeo     float64
	Height          float64
	HorizAcc        HorizontalAccuracy
	VertAcc         VerticalAccuracy
	BaroAcc         VerticalAccuracy
	SpeedAcc        SpeedAccuracy
	TSAcc           TimestampAccuracy
	Timestamp       float64
}

// AuthenticationData is one page of the logical Authentication record.
// LastPageIndex, Length, and Timestamp are defined only for DataPage == 0
// (spec.md §3, non-overlaid layout — spec.md §9).
type AuthenticationData struct {
	AuthType      AuthType
	DataPage      uint8
	LastPageIndex uint8
	Length        uint8
	Timestamp     uint32
	Data          []byte
}

// SelfIDData is the logical Self ID record.
type SelfIDData struct {
	DescType    DescType
	Description string
}

// SystemData is the logical System record.
type SystemData struct {
	OperatorLocationType OperatorLocationType
	ClassificationType   ClassificationType
	OperatorLatitude     float64
	OperatorLongitude    float64
	AreaCount            uint16
	AreaRadius           uint16 // meters
	AreaCeiling          float64
	AreaFloor            float64
	CategoryEU           CategoryEU
	ClassEU              ClassEU
	OperatorAltitudeGeo  float64
	Timestamp            uint32
}

// OperatorIDData is the logical Operator ID record.
type OperatorIDData struct {
	OperatorIDType OperatorIDType
	OperatorID     string
}

// -------------------------------------------------------------------------
// String Field Helpers (spec.md §9: bounded byte ranges, null-padded)
// -------------------------------------------------------------------------

func putString(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func putBytes(dst, src []byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func getString(src []byte) string {
	n := 0
	for n < len(src) && src[n] != 0 {
		n++
	}
	return string(src[:n])
}

// -------------------------------------------------------------------------
// Basic ID
// -------------------------------------------------------------------------

// EncodeBasicID encodes a Basic ID record to its 25-byte wire form.
func EncodeBasicID(d BasicIDData) ([MessageSize]byte, error) {
	var buf [MessageSize]byte
	if !d.IDType.valid() || !d.UAType.valid() {
		return buf, fmt.Errorf("encode basic id: %w", ErrInvalidEnum)
	}
	buf[0] = prefixByte(MessageTypeBasicID)
	buf[1] = uint8(d.IDType)<<4 | uint8(d.UAType)
	putString(buf[2:2+idFieldSize], d.UASID)
	return buf, nil
}

// DecodeBasicID decodes a 25-byte Basic ID buffer.
func DecodeBasicID(buf [MessageSize]byte) (BasicIDData, error) {
	idType := IDType(buf[1] >> 4)
	uaType := UAType(buf[1] & 0x0F)
	if !idType.valid() || !uaType.valid() {
		return BasicIDData{}, fmt.Errorf("decode basic id: %w", ErrInvalidEnum)
	}
	return BasicIDData{
		IDType: idType,
		UAType: uaType,
		UASID:  getString(buf[2 : 2+idFieldSize]),
	}, nil
}

// -------------------------------------------------------------------------
// Location
// -------------------------------------------------------------------------

// EncodeLocation encodes a Location record to its 25-byte wire form.
func EncodeLocation(d LocationData) ([MessageSize]byte, error) {
	var buf [MessageSize]byte
	if !d.Status.valid() || !d.HeightType.valid() {
		return buf, fmt.Errorf("encode location: %w", ErrInvalidEnum)
	}

	dirByte, ewBit := EncodeDirection(d.Direction)
	speedByte, multBit := EncodeSpeedHorizontal(d.SpeedHorizontal)

	var b1 uint8
	if multBit {
		b1 |= 1 << 0
	}
	if ewBit {
		b1 |= 1 << 1
	}
	if d.HeightType == HeightAboveGround {
		b1 |= 1 << 2
	}
	b1 |= uint8(d.Status) << 4

	buf[0] = prefixByte(MessageTypeLocation)
	buf[1] = b1
	buf[2] = dirByte
	buf[3] = speedByte
	buf[4] = byte(EncodeSpeedVertical(d.SpeedVertical))
	binary.LittleEndian.PutUint32(buf[5:9], uint32(EncodeLatLon(d.Latitude)))
	binary.LittleEndian.PutUint32(buf[9:13], uint32(EncodeLatLon(d.Longitude)))
	binary.LittleEndian.PutUint16(buf[13:15], EncodeAltitude(d.AltitudeBaro))
	binary.LittleEndian.PutUint16(buf[15:17], EncodeAltitude(d.AltitudeGeo))
	binary.LittleEndian.PutUint16(buf[17:19], EncodeAltitude(d.Height))
	buf[19] = uint8(d.VertAcc)<<4 | uint8(d.HorizAcc)
	buf[20] = uint8(d.BaroAcc)<<4 | uint8(d.SpeedAcc)
	binary.LittleEndian.PutUint16(buf[21:23], EncodeTimestamp(d.Timestamp))
	buf[23] = uint8(d.TSAcc) & 0x0F
	buf[24] = 0
	return buf, nil
}

// DecodeLocation decodes a 25-byte Location buffer.
func DecodeLocation(buf [MessageSize]byte) (LocationData, error) {
	status := LocationStatus(buf[1] >> 4)
	if !status.valid() {
		return LocationData{}, fmt.Errorf("decode location: %w", ErrInvalidEnum)
	}
	multBit := buf[1]&(1<<0) != 0
	ewBit := buf[1]&(1<<1) != 0
	heightType := HeightAboveTakeoff
	if buf[1]&(1<<2) != 0 {
		heightType = HeightAboveGround
	}

	lat := int32(binary.LittleEndian.Uint32(buf[5:9]))
	lon := int32(binary.LittleEndian.Uint32(buf[9:13]))

	return LocationData{
		Status:          status,
		HeightType:      heightType,
		Direction:       DecodeDirection(buf[2], ewBit),
		SpeedHorizontal: DecodeSpeedHorizontal(buf[3], multBit),
		SpeedVertical:   DecodeSpeedVertical(int8(buf[4])),
		Latitude:        DecodeLatLon(lat),
		Longitude:       DecodeLatLon(lon),
		AltitudeBaro:    DecodeAltitude(binary.LittleEndian.Uint16(buf[13:15])),
		AltitudeGeo:     DecodeAltitude(binary.LittleEndian.Uint16(buf[15:17])),
		Height:          DecodeAltitude(binary.LittleEndian.Uint16(buf[17:19])),
		HorizAcc:        HorizontalAccuracy(buf[19] & 0x0F),
		VertAcc:         VerticalAccuracy(buf[19] >> 4),
		SpeedAcc:        SpeedAccuracy(buf[20] & 0x0F),
		BaroAcc:         VerticalAccuracy(buf[20] >> 4),
		TSAcc:           TimestampAccuracy(buf[23] & 0x0F),
		Timestamp:       DecodeTimestamp(binary.LittleEndian.Uint16(buf[21:23])),
	}, nil
}

// -------------------------------------------------------------------------
// Authentication
// -------------------------------------------------------------------------

// EncodeAuthentication encodes one Authentication page to its 25-byte wire
// form. Fails with ErrInvalidPage if DataPage >= MaxAuthPages.
func EncodeAuthentication(d AuthenticationData) ([MessageSize]byte, error) {
	var buf [MessageSize]byte
	if d.DataPage >= MaxAuthPages {
		return buf, fmt.Errorf("encode authentication: %w", ErrInvalidPage)
	}
	if !d.AuthType.valid() {
		return buf, fmt.Errorf("encode authentication: %w", ErrInvalidEnum)
	}

	buf[0] = prefixByte(MessageTypeAuthentication)
	buf[1] = uint8(d.AuthType)<<4 | d.DataPage&0x0F

	if d.DataPage == 0 {
		buf[2] = d.LastPageIndex
		buf[3] = d.Length
		binary.LittleEndian.PutUint32(buf[4:8], d.Timestamp)
		putBytes(buf[8:8+authPage0DataSize], d.Data)
	} else {
		putBytes(buf[2:2+authPageNDataSize], d.Data)
	}
	return buf, nil
}

// DecodeAuthentication decodes a 25-byte Authentication page buffer.
func DecodeAuthentication(buf [MessageSize]byte) (AuthenticationData, error) {
	authType := AuthType(buf[1] >> 4)
	dataPage := buf[1] & 0x0F
	if !authType.valid() {
		return AuthenticationData{}, fmt.Errorf("decode authentication: %w", ErrInvalidEnum)
	}
	if dataPage >= MaxAuthPages {
		return AuthenticationData{}, fmt.Errorf("decode authentication: %w", ErrInvalidPage)
	}

	d := AuthenticationData{AuthType: authType, DataPage: dataPage}
	if dataPage == 0 {
		d.LastPageIndex = buf[2]
		d.Length = buf[3]
		d.Timestamp = binary.LittleEndian.Uint32(buf[4:8])
		d.Data = append([]byte(nil), buf[8:8+authPage0DataSize]...)
	} else {
		d.Data = append([]byte(nil), buf[2:2+authPageNDataSize]...)
	}
	return d, nil
}

// -------------------------------------------------------------------------
// Self ID
// -------------------------------------------------------------------------

// EncodeSelfID encodes a Self ID record to its 25-byte wire form.
func EncodeSelfID(d SelfIDData) ([MessageSize]byte, error) {
	var buf [MessageSize]byte
	buf[0] = prefixByte(MessageTypeSelfID)
	buf[1] = uint8(d.DescType)
	putString(buf[2:2+strFieldSize], d.Description)
	return buf, nil
}

// DecodeSelfID decodes a 25-byte Self ID buffer.
func DecodeSelfID(buf [MessageSize]byte) (SelfIDData, error) {
	return SelfIDData{
		DescType:    DescType(buf[1]),
		Description: getString(buf[2 : 2+strFieldSize]),
	}, nil
}

// -------------------------------------------------------------------------
// System
// -------------------------------------------------------------------------

// EncodeSystem encodes a System record to its 25-byte wire form.
func EncodeSystem(d SystemData) ([MessageSize]byte, error) {
	var buf [MessageSize]byte
	if !d.OperatorLocationType.valid() || !d.ClassificationType.valid() {
		return buf, fmt.Errorf("encode system: %w", ErrInvalidEnum)
	}

	buf[0] = prefixByte(MessageTypeSystem)
	// Byte 1: bit 0 operator location type, bits 2..4 classification type;
	// the remaining bits are reserved and written as zero.
	buf[1] = uint8(d.OperatorLocationType)&0x01 | (uint8(d.ClassificationType)&0x07)<<2
	binary.LittleEndian.PutUint32(buf[2:6], uint32(EncodeLatLon(d.OperatorLatitude)))
	binary.LittleEndian.PutUint32(buf[6:10], uint32(EncodeLatLon(d.OperatorLongitude)))
	binary.LittleEndian.PutUint16(buf[10:12], d.AreaCount)
	buf[12] = EncodeAreaRadius(d.AreaRadius)
	binary.LittleEndian.PutUint16(buf[13:15], EncodeAltitude(d.AreaCeiling))
	binary.LittleEndian.PutUint16(buf[15:17], EncodeAltitude(d.AreaFloor))
	buf[17] = uint8(d.ClassEU)<<4 | uint8(d.CategoryEU)
	binary.LittleEndian.PutUint16(buf[18:20], EncodeAltitude(d.OperatorAltitudeGeo))
	binary.LittleEndian.PutUint32(buf[20:24], d.Timestamp)
	return buf, nil
}

// DecodeSystem decodes a 25-byte System buffer.
func DecodeSystem(buf [MessageSize]byte) (SystemData, error) {
	locType := OperatorLocationType(buf[1] & 0x01)
	classType := ClassificationType((buf[1] >> 2) & 0x07)
	if !classType.valid() {
		return SystemData{}, fmt.Errorf("decode system: %w", ErrInvalidEnum)
	}

	lat := int32(binary.LittleEndian.Uint32(buf[2:6]))
	lon := int32(binary.LittleEndian.Uint32(buf[6:10]))

	return SystemData{
		OperatorLocationType: locType,
		ClassificationType:   classType,
		OperatorLatitude:     DecodeLatLon(lat),
		OperatorLongitude:    DecodeLatLon(lon),
		AreaCount:            binary.LittleEndian.Uint16(buf[10:12]),
		AreaRadius:           DecodeAreaRadius(buf[12]),
		AreaCeiling:          DecodeAltitude(binary.LittleEndian.Uint16(buf[13:15])),
		AreaFloor:            DecodeAltitude(binary.LittleEndian.Uint16(buf[15:17])),
		CategoryEU:           CategoryEU(buf[17] & 0x0F),
		ClassEU:              ClassEU(buf[17] >> 4),
		OperatorAltitudeGeo:  DecodeAltitude(binary.LittleEndian.Uint16(buf[18:20])),
		Timestamp:            binary.LittleEndian.Uint32(buf[20:24]),
	}, nil
}

// -------------------------------------------------------------------------
// Operator ID
// -------------------------------------------------------------------------

// EncodeOperatorID encodes an Operator ID record to its 25-byte wire form.
func EncodeOperatorID(d OperatorIDData) ([MessageSize]byte, error) {
	var buf [MessageSize]byte
	buf[0] = prefixByte(MessageTypeOperatorID)
	buf[1] = uint8(d.OperatorIDType)
	putString(buf[2:2+idFieldSize], d.OperatorID)
	return buf, nil
}

// DecodeOperatorID decodes a 25-byte Operator ID buffer.
func DecodeOperatorID(buf [MessageSize]byte) (OperatorIDData, error) {
	return OperatorIDData{
		OperatorIDType: OperatorIDType(buf[1]),
		OperatorID:     getString(buf[2 : 2+idFieldSize]),
	}, nil
}

// -------------------------------------------------------------------------
// Shared Helpers
// -------------------------------------------------------------------------

func prefixByte(t MessageType) byte {
	return uint8(t)<<4 | ProtocolVersion&0x0F
}

// MessageTypeOf reads the dispatch nibble from an encoded message buffer's
// first byte.
func MessageTypeOf(buf [MessageSize]byte) MessageType {
	t := MessageType(buf[0] >> 4)
	if _, ok := messageTypeNames[t]; !ok {
		return MessageTypeInvalid
	}
	return t
}
