package odid

import "fmt"

// UASData is the aggregate entity holding the currently known set of
// messages for one aircraft, with per-slot validity flags (spec.md §3,
// §4.4). It is a plain owned record: no dynamic memory is allocated in
// the steady state beyond the logical records themselves, and no slot is
// ever destroyed independently of the aggregate (spec.md §5).
type UASData struct {
	BasicID      [MaxBasicIDSlots]BasicIDData
	BasicIDValid [MaxBasicIDSlots]bool

	Location      LocationData
	LocationValid bool

	Auth      [MaxAuthPages]AuthenticationData
	AuthValid [MaxAuthPages]bool

	SelfID      SelfIDData
	SelfIDValid bool

	System      SystemData
	SystemValid bool

	OperatorID      OperatorIDData
	OperatorIDValid bool

	onChange ValidityCallback
}

// NewUASData returns a zero-initialised aggregate with all validity bits
// clear (spec.md §3 lifecycle).
func NewUASData() *UASData {
	return &UASData{}
}

// OnValidityChange registers a callback invoked synchronously whenever
// IngestMessage stores a record into a slot and sets its validity bit,
// including when the slot was already valid. A nil callback disables
// notification.
func (u *UASData) OnValidityChange(cb ValidityCallback) {
	u.onChange = cb
}

func (u *UASData) notify(t MessageType, index int, valid bool) {
	if u.onChange != nil {
		u.onChange(SlotChange{MessageType: t, Index: index, Valid: valid})
	}
}

// IngestMessage dispatches a raw 25-byte buffer through DecodeByType and
// stores the decoded record into the matching slot, setting that slot's
// validity bit. Returns the message type on success, MessageTypeInvalid
// on failure (spec.md §4.4).
func (u *UASData) IngestMessage(buf [MessageSize]byte) (MessageType, error) {
	t := MessageTypeOf(buf)

	record, err := DecodeByType(t, buf)
	if err != nil {
		return MessageTypeInvalid, fmt.Errorf("ingest message: %w", err)
	}

	switch d := record.(type) {
	case BasicIDData:
		idx, err := u.basicIDSlot(d.IDType)
		if err != nil {
			return MessageTypeInvalid, fmt.Errorf("ingest basic id: %w", err)
		}
		u.BasicID[idx] = d
		u.BasicIDValid[idx] = true
		u.notify(MessageTypeBasicID, idx, true)
		return MessageTypeBasicID, nil

	case LocationData:
		u.Location = d
		u.LocationValid = true
		u.notify(MessageTypeLocation, 0, true)
		return MessageTypeLocation, nil

	case AuthenticationData:
		u.Auth[d.DataPage] = d
		u.AuthValid[d.DataPage] = true
		u.notify(MessageTypeAuthentication, int(d.DataPage), true)
		return MessageTypeAuthentication, nil

	case SelfIDData:
		u.SelfID = d
		u.SelfIDValid = true
		u.notify(MessageTypeSelfID, 0, true)
		return MessageTypeSelfID, nil

	case SystemData:
		u.System = d
		u.SystemValid = true
		u.notify(MessageTypeSystem, 0, true)
		return MessageTypeSystem, nil

	case OperatorIDData:
		u.OperatorID = d
		u.OperatorIDValid = true
		u.notify(MessageTypeOperatorID, 0, true)
		return MessageTypeOperatorID, nil

	default:
		return MessageTypeInvalid, fmt.Errorf("ingest message: %w", ErrUnknownMessageType)
	}
}

// IngestPack decodes a message pack and ingests each of its slots in
// order, returning the count of slots that ingested successfully. A
// slot-level failure does not abort the remaining slots.
func (u *UASData) IngestPack(buf PackBuffer) (int, error) {
	slots, err := DecodePack(buf)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, slot := range slots {
		if _, err := u.IngestMessage(slot); err == nil {
			count++
		}
	}
	return count, nil
}

// basicIDSlot selects the slot a Basic ID with the given id_type belongs
// in: the first slot already carrying that id_type, else the first free
// slot. Returns ErrNoFreeSlot if neither exists (spec.md §4.4).
func (u *UASData) basicIDSlot(idType IDType) (int, error) {
	free := -1
	for i := 0; i < MaxBasicIDSlots; i++ {
		if u.BasicIDValid[i] {
			if u.BasicID[i].IDType == idType {
				return i, nil
			}
			continue
		}
		if free == -1 {
			free = i
		}
	}
	if free != -1 {
		return free, nil
	}
	return 0, ErrNoFreeSlot
}

// SlotTag identifies one slot of an aggregate for encoding purposes.
// Index selects the sub-slot for BasicID and Authentication and is
// ignored for the single-valued message types.
type SlotTag struct {
	Type  MessageType
	Index int
}

// EncodedSlot re-encodes the named slot's current logical record. The
// second return value is false if the slot's validity bit is clear.
func (u *UASData) EncodedSlot(tag SlotTag) (buf [MessageSize]byte, valid bool, err error) {
	switch tag.Type {
	case MessageTypeBasicID:
		if !u.BasicIDValid[tag.Index] {
			return buf, false, nil
		}
		buf, err = EncodeBasicID(u.BasicID[tag.Index])
		return buf, true, err

	case MessageTypeLocation:
		if !u.LocationValid {
			return buf, false, nil
		}
		buf, err = EncodeLocation(u.Location)
		return buf, true, err

	case MessageTypeAuthentication:
		if !u.AuthValid[tag.Index] {
			return buf, false, nil
		}
		buf, err = EncodeAuthentication(u.Auth[tag.Index])
		return buf, true, err

	case MessageTypeSelfID:
		if !u.SelfIDValid {
			return buf, false, nil
		}
		buf, err = EncodeSelfID(u.SelfID)
		return buf, true, err

	case MessageTypeSystem:
		if !u.SystemValid {
			return buf, false, nil
		}
		buf, err = EncodeSystem(u.System)
		return buf, true, err

	case MessageTypeOperatorID:
		if !u.OperatorIDValid {
			return buf, false, nil
		}
		buf, err = EncodeOperatorID(u.OperatorID)
		return buf, true, err

	default:
		return buf, false, fmt.Errorf("encoded slot: %w", ErrUnknownMessageType)
	}
}

// EncodedMessages returns the encoded wire form of every currently-valid
// slot, in BasicID, Location, Authentication, SelfID, System, OperatorID
// order -- suitable as input to EncodePack.
func (u *UASData) EncodedMessages() ([][MessageSize]byte, error) {
	var out [][MessageSize]byte

	tags := make([]SlotTag, 0, MaxBasicIDSlots+1+MaxAuthPages+3)
	for i := 0; i < MaxBasicIDSlots; i++ {
		tags = append(tags, SlotTag{Type: MessageTypeBasicID, Index: i})
	}
	tags = append(tags, SlotTag{Type: MessageTypeLocation})
	for i := 0; i < MaxAuthPages; i++ {
		tags = append(tags, SlotTag{Type: MessageTypeAuthentication, Index: i})
	}
	tags = append(tags,
		SlotTag{Type: MessageTypeSelfID},
		SlotTag{Type: MessageTypeSystem},
		SlotTag{Type: MessageTypeOperatorID},
	)

	for _, tag := range tags {
		buf, valid, err := u.EncodedSlot(tag)
		if err != nil {
			return nil, err
		}
		if valid {
			out = append(out, buf)
		}
	}
	return out, nil
}
