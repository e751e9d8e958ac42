package stream

import "fmt"

// UnexpectedMessageType is returned when a node receives a message of a
// type its edge doesn't carry (e.g. a KeyedCollection on an EventEdge
// node) — a wiring defect in the constructed graph, not a recoverable
// per-event condition.
type UnexpectedMessageType struct {
	Want string
	Got  interface{}
}

func (e *UnexpectedMessageType) Error() string {
	return fmt.Sprintf("stream: expected message of type %s, got %T", e.Want, e.Got)
}
