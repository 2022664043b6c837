package odid

import "errors"

// Sentinel errors for codec validation failures.
var (
	// ErrInvalidArgument indicates a required buffer or length argument
	// is absent or zero.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidEnum indicates a 4-bit-wide enum field is outside its
	// named values.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrInvalidPage indicates an Authentication data_page index is
	// greater than or equal to MaxAuthPages.
	ErrInvalidPage = errors.New("invalid authentication page")

	// ErrInvalidSize indicates a message pack header's
	// single_message_size is not 25.
	ErrInvalidSize = errors.New("invalid single message size")

	// ErrTooManyMessages indicates a message pack's msg_pack_size
	// exceeds MaxPackMessages.
	ErrTooManyMessages = errors.New("too many messages for pack")

	// ErrNoFreeSlot indicates Basic ID ingest found no slot whose
	// id_type matches or is free.
	ErrNoFreeSlot = errors.New("no free basic id slot")

	// ErrUnknownMessageType indicates the dispatch nibble did not match
	// any known message type.
	ErrUnknownMessageType = errors.New("unknown message type")
)
