//go:build js && wasm

package dom

import "syscall/js"

// eventListener binds one js.Func to one event on one target. Remove
// detaches the listener and releases the function; it is safe to call more
// than once.
type eventListener struct {
	target  js.Value
	event   string
	fn      js.Func
	removed bool
}

func listen(target js.Value, event string, fn func(ev js.Value)) *eventListener {
	l := &eventListener{target: target, event: event}
	l.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", event, l.fn)
	return l
}

func (l *eventListener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	l.target.Call("removeEventListener", l.event, l.fn)
	l.fn.Release()
}

// listenActive registers a non-passive listener. Browsers treat wheel and
// touch listeners as passive by default, which makes preventDefault a no-op;
// passing {passive: false} restores it.
func listenActive(target js.Value, event string, fn func(ev js.Value)) *eventListener {
	l := &eventListener{target: target, event: event}
	l.fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", event, l.fn, map[string]any{"passive": false})
	return l
}

// listenerGroup bundles several listeners behind one handle.
type listenerGroup []*eventListener

func (g listenerGroup) Remove() {
	for _, l := range g {
		l.Remove()
	}
}
