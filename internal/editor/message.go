package editor

// Message is an optional status message.
// The zero value is the absent message. Messages are values over an
// immutable string, so any number of sources can set one without sharing
// a mutable buffer.
type Message struct {
	text  string
	valid bool
}

// NewMessage returns a present message with the given text.
func NewMessage(text string) Message {
	return Message{text: text, valid: true}
}

// Get returns the text and whether a message is present.
func (m Message) Get() (string, bool) {
	return m.text, m.valid
}

// IsSet reports whether a message is present.
func (m Message) IsSet() bool {
	return m.valid
}

// String returns the text, or "" when absent.
func (m Message) String() string {
	return m.text
}
