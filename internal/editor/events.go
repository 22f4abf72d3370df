package editor

// EventType identifies editor events the host can subscribe to.
type EventType int

const (
	// EventDecorationsChanged fires after any store mutation.
	EventDecorationsChanged EventType = iota
	// EventModeChanged fires when the interaction mode toggles. Data is the
	// new interaction.Mode.
	EventModeChanged
	// EventRender fires after every pointer event. Data is the fresh
	// []render.Group primitive list.
	EventRender
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// On registers an event listener for the specified event type. Listeners run
// synchronously on the editor's goroutine.
func (e *Editor) On(event EventType, listener EventListener) {
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (e *Editor) Emit(event EventType, data interface{}) {
	for _, listener := range e.listeners[event] {
		listener(data)
	}
}
