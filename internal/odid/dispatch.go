package odid

// This file implements the message-type dispatch table (spec.md §4.2
// "Message-type dispatch", §4.4 "ingest_message"). Like the teacher's FSM
// transition table, dispatch is a pure lookup keyed by an enum -- no
// hidden state, no side effects beyond the decode call itself.

// decodeFunc decodes a 25-byte buffer into a logical record, returned as
// an untyped value for storage into the matching Aggregate slot.
type decodeFunc func(buf [MessageSize]byte) (any, error)

var decodeTable = map[MessageType]decodeFunc{
	MessageTypeBasicID: func(buf [MessageSize]byte) (any, error) {
		return DecodeBasicID(buf)
	},
	MessageTypeLocation: func(buf [MessageSize]byte) (any, error) {
		return DecodeLocation(buf)
	},
	MessageTypeAuthentication: func(buf [MessageSize]byte) (any, error) {
		return DecodeAuthentication(buf)
	},
	MessageTypeSelfID: func(buf [MessageSize]byte) (any, error) {
		return DecodeSelfID(buf)
	},
	MessageTypeSystem: func(buf [MessageSize]byte) (any, error) {
		return DecodeSystem(buf)
	},
	MessageTypeOperatorID: func(buf [MessageSize]byte) (any, error) {
		return DecodeOperatorID(buf)
	},
}

// DecodeByType dispatches to the decoder matching t, returning the
// decoded logical record as an untyped value. Used by both
// UASData.IngestMessage (which then places the record into its
// aggregate slot) and callers that only need the decoded record itself,
// such as a CLI's decode command. Returns ErrUnknownMessageType for an
// unrecognised type.
func DecodeByType(t MessageType, buf [MessageSize]byte) (any, error) {
	fn, ok := decodeTable[t]
	if !ok {
		return nil, ErrUnknownMessageType
	}
	return fn(buf)
}
