package odid

// ValidityCallback is a function invoked each time a UASData slot is
// stored and marked valid.
//
// External consumers (e.g., a monitor CLI, the fleet tracker) register a
// callback to react to a slot becoming valid for the first time or being
// overwritten by a fresh ingest. Callbacks are invoked synchronously by
// whichever goroutine calls IngestMessage; a long-running callback blocks
// that caller.
type ValidityCallback func(change SlotChange)

// SlotChange describes one slot update on a UASData.
type SlotChange struct {
	MessageType MessageType
	// Index selects the sub-slot for Basic ID and Authentication, and is
	// zero for the single-valued message types.
	Index int
	Valid bool
}
