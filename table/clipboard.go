package table

// Clipboard provides host clipboard integration for copying and pasting the
// active cell.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
