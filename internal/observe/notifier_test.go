package observe

import "testing"

const (
	fieldScore Field = "score"
	fieldPhase Field = "phase"
)

func TestSetNotifiesOnChange(t *testing.T) {
	n := NewNotifier()

	var got []Change
	n.Subscribe(fieldScore, func(c Change) {
		got = append(got, c)
	})

	score := 0
	if !Set(n, fieldScore, &score, 5) {
		t.Error("Set should report a change")
	}
	if score != 5 {
		t.Errorf("score = %d, expected 5", score)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Field != fieldScore || got[0].Old != 0 || got[0].New != 5 {
		t.Errorf("unexpected event: %+v", got[0])
	}
}

func TestSetSuppressesRedundantWrites(t *testing.T) {
	n := NewNotifier()

	events := 0
	n.Subscribe(fieldScore, func(Change) { events++ })

	score := 7
	if Set(n, fieldScore, &score, 7) {
		t.Error("Set with an equal value should report no change")
	}
	if events != 0 {
		t.Errorf("expected no events for a redundant write, got %d", events)
	}
}

func TestSetFromZeroValue(t *testing.T) {
	// The old value being the zero value must not suppress the event.
	n := NewNotifier()

	events := 0
	n.Subscribe(fieldPhase, func(Change) { events++ })

	var phase string
	Set(n, fieldPhase, &phase, "running")
	if events != 1 {
		t.Errorf("expected 1 event when leaving the zero value, got %d", events)
	}
}

func TestSubscribeAllAndAfterHook(t *testing.T) {
	n := NewNotifier()

	var order []string
	n.Subscribe(fieldScore, func(Change) { order = append(order, "field") })
	n.SubscribeAll(func(c Change) { order = append(order, "all:"+string(c.Field)) })
	n.SetAfterChange(func(f Field) { order = append(order, "after:"+string(f)) })

	score := 0
	Set(n, fieldScore, &score, 1)

	want := []string{"field", "all:score", "after:score"}
	if len(order) != len(want) {
		t.Fatalf("expected %d callbacks, got %d (%v)", len(want), len(order), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("callback %d = %q, expected %q", i, order[i], want[i])
		}
	}
}

func TestSetWithNilNotifier(t *testing.T) {
	score := 1
	if !Set[int](nil, fieldScore, &score, 2) {
		t.Error("Set with nil notifier should still assign and report the change")
	}
	if score != 2 {
		t.Errorf("score = %d, expected 2", score)
	}
}

func TestMultipleSubscribers(t *testing.T) {
	n := NewNotifier()

	a, b := 0, 0
	n.Subscribe(fieldScore, func(Change) { a++ })
	n.Subscribe(fieldScore, func(Change) { b++ })

	score := 0
	Set(n, fieldScore, &score, 1)
	Set(n, fieldScore, &score, 2)
	Set(n, fieldScore, &score, 2) // suppressed

	if a != 2 || b != 2 {
		t.Errorf("expected both subscribers to see 2 events, got %d and %d", a, b)
	}
}
