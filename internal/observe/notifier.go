// Package observe implements field-change notification for game state.
// A stateful object declares its observable fields as typed constants,
// mutates them through Set, and subscribers receive an event only when the
// value actually changed. This replaces string-keyed property events with
// compile-time field references.
package observe

// Field names an observable field of a state object.
type Field string

// Change describes a single field mutation.
type Change struct {
	Field Field
	Old   any
	New   any
}

// Handler receives change events.
type Handler func(Change)

// Notifier dispatches change events to subscribers. It is not safe for
// concurrent use; all mutation happens on the platform's update loop.
type Notifier struct {
	handlers map[Field][]Handler
	all      []Handler
	after    func(Field)
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		handlers: make(map[Field][]Handler),
	}
}

// Subscribe registers a handler for changes to a single field.
func (n *Notifier) Subscribe(f Field, h Handler) {
	n.handlers[f] = append(n.handlers[f], h)
}

// SubscribeAll registers a handler for changes to every field.
func (n *Notifier) SubscribeAll(h Handler) {
	n.all = append(n.all, h)
}

// SetAfterChange registers a hook invoked after all handlers for a change
// have run. At most one hook is kept; nil removes it.
func (n *Notifier) SetAfterChange(fn func(Field)) {
	n.after = fn
}

func (n *Notifier) publish(c Change) {
	for _, h := range n.handlers[c.Field] {
		h(c)
	}
	for _, h := range n.all {
		h(c)
	}
	if n.after != nil {
		n.after(c.Field)
	}
}

// Set assigns v to *dst and notifies subscribers of field f. The
// notification is suppressed when the new value equals the current one, so
// redundant writes are free for observers. Returns whether the value
// changed. A nil notifier still performs the assignment.
func Set[T comparable](n *Notifier, f Field, dst *T, v T) bool {
	if *dst == v {
		return false
	}
	old := *dst
	*dst = v
	if n != nil {
		n.publish(Change{Field: f, Old: old, New: v})
	}
	return true
}
