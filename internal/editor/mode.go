package editor

// Mode is the editor's keystroke-interpretation context.
type Mode uint8

const (
	// Normal is the initial mode. Keys are commands.
	Normal Mode = iota

	// Insert is reserved for text insertion into a Buffer.
	Insert

	// Select is reserved for region selection in a Buffer.
	Select

	// Command edits the ':' command line.
	Command
)

// String returns the 3-character mnemonic shown in the status bar.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "NOR"
	case Insert:
		return "INS"
	case Select:
		return "SEL"
	case Command:
		return "CMD"
	default:
		return "???"
	}
}

// Name returns the lower-case mode identifier used in logs.
func (m Mode) Name() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Select:
		return "select"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}
