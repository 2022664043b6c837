package odid

import (
	"fmt"
	"time"
)

// BCMinStaticRefreshRate is the specification-defined minimum refresh
// rate for the dynamic Location message (spec.md §4.5, §GLOSSARY).
const BCMinStaticRefreshRate = 3 * time.Second

// Sequence8, Sequence10, and DefaultSequence are the non-Location
// message-type sequences for the three ring-size variants spec.md §4.5
// notes the source ships ("8 slots, 10 slots, and 2·(4 + MAX_AUTH_PAGES)
// slots"). BuildRing interleaves each sequence with Location to produce
// the final ring.
var (
	Sequence8 = []MessageType{
		MessageTypeBasicID, MessageTypeAuthentication,
		MessageTypeSelfID, MessageTypeSystem,
	}
	Sequence10 = []MessageType{
		MessageTypeBasicID, MessageTypeAuthentication,
		MessageTypeSelfID, MessageTypeSystem, MessageTypeOperatorID,
	}
	DefaultSequence = buildDefaultSequence()
)

// buildDefaultSequence mirrors libmav2odid's droneidSchedule layout: one
// BasicID, one Auth occurrence per MaxAuthPages page, one SelfID, one
// System, one OperatorID -- 4 + MaxAuthPages entries, interleaved with
// Location to give the "2·(4 + MAX_AUTH_PAGES)" ring.
func buildDefaultSequence() []MessageType {
	seq := make([]MessageType, 0, 4+MaxAuthPages)
	seq = append(seq, MessageTypeBasicID)
	for i := 0; i < MaxAuthPages; i++ {
		seq = append(seq, MessageTypeAuthentication)
	}
	seq = append(seq, MessageTypeSelfID, MessageTypeSystem, MessageTypeOperatorID)
	return seq
}

// BuildRing interleaves a non-Location sequence with Location at every
// other slot (spec.md §4.5: "Location messages occupy every second
// slot").
func BuildRing(sequence []MessageType) []MessageType {
	ring := make([]MessageType, 2*len(sequence))
	for i, t := range sequence {
		ring[2*i] = t
		ring[2*i+1] = MessageTypeLocation
	}
	return ring
}

// ValidateTickInterval checks a proposed tick interval against the
// refresh-rate floor for a ring of the given size: callers must invoke
// Tick at an interval strictly less than BCMinStaticRefreshRate /
// ringSize to keep the Location refresh rate within spec (spec.md §4.5).
func ValidateTickInterval(ringSize int, interval time.Duration) error {
	if ringSize <= 0 || interval <= 0 {
		return fmt.Errorf("validate tick interval: %w", ErrInvalidArgument)
	}
	floor := BCMinStaticRefreshRate / time.Duration(ringSize)
	if interval >= floor {
		return fmt.Errorf(
			"tick interval %s does not keep Location refresh within %s for a %d-slot ring (need < %s): %w",
			interval, BCMinStaticRefreshRate, ringSize, floor, ErrInvalidArgument,
		)
	}
	return nil
}

// Scheduler is a fixed-length ring of message-type tags that cycles
// through the set of message types a broadcaster must emit periodically
// (spec.md §4.5). The cursor is an explicit field, not package-level
// mutable state (spec.md §9), so multiple independent broadcasters can
// coexist.
type Scheduler struct {
	ring   []MessageType
	cursor int

	data *UASData

	basicIDCursor int
	authCursor    int
}

// NewScheduler builds a Scheduler over the given ring and aggregate. The
// ring is copied; mutating the slice passed in has no effect afterward.
func NewScheduler(ring []MessageType, data *UASData) (*Scheduler, error) {
	if len(ring) == 0 || data == nil {
		return nil, fmt.Errorf("new scheduler: %w", ErrInvalidArgument)
	}
	return &Scheduler{
		ring: append([]MessageType(nil), ring...),
		data: data,
	}, nil
}

// RingSize returns the number of slots in the scheduler's ring.
func (s *Scheduler) RingSize() int {
	return len(s.ring)
}

// Tick copies the currently scheduled message type's latest encoded
// buffer into out and advances the cursor modulo the ring size. If the
// selected slot's validity bit is clear, the copy is skipped -- out is
// left unchanged -- but the cursor still advances (spec.md §4.5).
func (s *Scheduler) Tick(out *[MessageSize]byte) error {
	tag := s.currentSlot()

	buf, valid, err := s.data.EncodedSlot(tag)
	s.cursor = (s.cursor + 1) % len(s.ring)
	if err != nil {
		return fmt.Errorf("scheduler tick: %w", err)
	}
	if !valid {
		return nil
	}
	*out = buf
	return nil
}

// currentSlot resolves the ring position under the cursor to a concrete
// SlotTag, stepping the BasicID/Authentication sub-cursors so that
// multi-valued message types round-robin across full ring revolutions
// (spec.md §4.5).
func (s *Scheduler) currentSlot() SlotTag {
	switch t := s.ring[s.cursor]; t {
	case MessageTypeBasicID:
		idx := s.basicIDCursor
		s.basicIDCursor = (s.basicIDCursor + 1) % MaxBasicIDSlots
		return SlotTag{Type: MessageTypeBasicID, Index: idx}
	case MessageTypeAuthentication:
		idx := s.authCursor
		s.authCursor = (s.authCursor + 1) % MaxAuthPages
		return SlotTag{Type: MessageTypeAuthentication, Index: idx}
	default:
		return SlotTag{Type: t}
	}
}
