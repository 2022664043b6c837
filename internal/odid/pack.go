package odid

import "fmt"

// Message-pack framing constants (spec.md §4.3).
const (
	// MaxPackMessages is the maximum number of 25-byte slots a pack can
	// carry (spec.md §4.5's "2·(4 + MAX_AUTH_PAGES)" scheduler variant
	// implies at most one of every message kind plus every auth page,
	// rounded up to a convenient slot count).
	MaxPackMessages = 10

	packHeaderSize       = 3 // prefix, single_message_size, msg_pack_size
	packReservedTailSize = 3
	singleMessageSize    = MessageSize

	// PackBufferSize is the total wire size of a fully-populated pack
	// buffer (spec.md §4.3: "3 + MAX_PACK_MESSAGES·25 + 3 reserved tail").
	PackBufferSize = packHeaderSize + MaxPackMessages*MessageSize + packReservedTailSize
)

// PackBuffer is the fixed-size wire buffer for a message pack.
type PackBuffer [PackBufferSize]byte

// EncodePack builds a message pack from pre-encoded 25-byte message slots.
// Fails with ErrTooManyMessages if len(messages) exceeds MaxPackMessages.
func EncodePack(messages [][MessageSize]byte) (PackBuffer, error) {
	var buf PackBuffer
	if len(messages) > MaxPackMessages {
		return buf, fmt.Errorf("encode pack: %w", ErrTooManyMessages)
	}

	buf[0] = prefixByte(MessageTypeMessagePack)
	buf[1] = singleMessageSize
	buf[2] = uint8(len(messages))

	for i, m := range messages {
		off := packHeaderSize + i*MessageSize
		copy(buf[off:off+MessageSize], m[:])
	}
	return buf, nil
}

// DecodePack parses a message pack's header and returns its message
// slots. Fails with ErrInvalidSize if single_message_size != 25, or
// ErrTooManyMessages if msg_pack_size exceeds MaxPackMessages.
func DecodePack(buf PackBuffer) ([][MessageSize]byte, error) {
	if buf[1] != singleMessageSize {
		return nil, fmt.Errorf("decode pack: %w", ErrInvalidSize)
	}
	n := int(buf[2])
	if n > MaxPackMessages {
		return nil, fmt.Errorf("decode pack: %w", ErrTooManyMessages)
	}

	out := make([][MessageSize]byte, n)
	for i := range out {
		off := packHeaderSize + i*MessageSize
		copy(out[i][:], buf[off:off+MessageSize])
	}
	return out, nil
}
