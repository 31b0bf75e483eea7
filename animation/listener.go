package animation

import "reflect"

// Listener is told when an animation starts and ends.
type Listener interface {
	OnStart()
	OnEnd()
}

// ListenerFuncs adapts a pair of closures to a Listener. Either may be
// nil. Register it by pointer so it can be passed to RemoveListener.
type ListenerFuncs struct {
	Start func()
	End   func()
}

// OnStart calls Start if set.
func (l *ListenerFuncs) OnStart() {
	if l.Start != nil {
		l.Start()
	}
}

// OnEnd calls End if set.
func (l *ListenerFuncs) OnEnd() {
	if l.End != nil {
		l.End()
	}
}

type listenerEntry struct {
	id       int
	listener Listener
}

// AddListener registers l for start and end events. Listeners are
// notified in registration order. The returned func removes this
// registration; calling it more than once is harmless.
func (a *Animation) AddListener(l Listener) (remove func()) {
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners = append(a.listeners, listenerEntry{id: id, listener: l})
	return func() {
		a.removeWhere(func(e listenerEntry) bool { return e.id == id })
	}
}

// RemoveListener unregisters the first registration of l. Removing a
// listener that was never added does nothing. A listener whose type is not
// comparable, such as a func type, can only be removed with the func
// returned by AddListener; RemoveListener ignores it.
func (a *Animation) RemoveListener(l Listener) {
	if l != nil && !reflect.TypeOf(l).Comparable() {
		return
	}
	a.removeWhere(func(e listenerEntry) bool { return e.listener == l })
}

func (a *Animation) removeWhere(match func(listenerEntry) bool) {
	for i, e := range a.listeners {
		if match(e) {
			a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
			return
		}
	}
}

// snapshot lets listeners add or remove listeners while being notified.
func (a *Animation) snapshot() []Listener {
	out := make([]Listener, len(a.listeners))
	for i, e := range a.listeners {
		out[i] = e.listener
	}
	return out
}
