package syntax

// Event is one step of the linear event stream the parser produces,
// grounded on the original prototype's parser/event.rs. Ignoring
// Tombstones, the stream is a well-formed pre-order traversal of a tree
// rooted at SOURCE_FILE (spec.md §3 "Event").
type Event struct {
	kind eventKind

	// Start fields.
	startKind     SyntaxKind
	forwardParent int // index delta to an outer Start event, 0 if none

	// Token fields.
	tokenKind SyntaxKind
	rawCount  int

	// Error fields.
	message string
}

type eventKind uint8

const (
	evTombstone eventKind = iota
	evStart
	evFinish
	evToken
	evError
)

func tombstoneEvent() Event { return Event{kind: evTombstone} }

// Tombstone reports whether e is an abandoned Start that must be skipped
// during materialization.
func (e Event) Tombstone() bool { return e.kind == evTombstone }
