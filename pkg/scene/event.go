package scene

// Event names a pointer interaction.
type Event string

const (
	EventPointerEnter Event = "pointerenter"
	EventPointerMove  Event = "pointermove"
	EventPointerLeave Event = "pointerleave"
)

// PointerEvent carries the pointer position in surface coordinates.
type PointerEvent struct {
	X, Y   float64
	Target *Node
}

// Handler reacts to a pointer event.
type Handler func(PointerEvent)

// On binds h to ev, replacing any previous handler.
func (n *Node) On(ev Event, h Handler) *Node {
	if n.handlers == nil {
		n.handlers = make(map[Event]Handler)
	}
	n.handlers[ev] = h
	return n
}

// Handles reports whether a handler is bound for ev.
func (n *Node) Handles(ev Event) bool {
	_, ok := n.handlers[ev]
	return ok
}

// Events returns the bound events in a fixed order.
func (n *Node) Events() []Event {
	var out []Event
	for _, ev := range []Event{EventPointerEnter, EventPointerMove, EventPointerLeave} {
		if n.Handles(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Dispatch invokes the handler for ev, if any, and reports whether one ran.
func (n *Node) Dispatch(ev Event, e PointerEvent) bool {
	h, ok := n.handlers[ev]
	if !ok {
		return false
	}
	if e.Target == nil {
		e.Target = n
	}
	h(e)
	return true
}
