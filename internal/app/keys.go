package app

import "unicode"

// KeyCode identifies a key independently of any terminal library.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyDelete
)

// Key is a single key press. Rune is set only when Code is KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// Char builds a printable key press.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Code builds a non-printable key press.
func Code(c KeyCode) Key {
	return Key{Code: c}
}

func (k Key) printable() (rune, bool) {
	if k.Code != KeyRune || unicode.IsControl(k.Rune) {
		return 0, false
	}
	return k.Rune, true
}

func (k Key) erases() bool {
	return k.Code == KeyBackspace || k.Code == KeyDelete
}

// Event is anything fed to State.Update.
type Event interface {
	event()
}

// Tick is emitted by the event loop at a fixed interval.
type Tick struct{}

// KeyPress carries one key press.
type KeyPress struct {
	Key Key
}

func (Tick) event()     {}
func (KeyPress) event() {}

// Mode describes where key input is routed.
type Mode int

const (
	ModeContent Mode = iota
	ModeTabBar
	ModeProjectSearch
	ModeEditTickr
	ModeNewCategory
	ModeNewTickr
	ModeConfirm
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeContent:
		return "content"
	case ModeTabBar:
		return "tabs"
	case ModeProjectSearch:
		return "search"
	case ModeEditTickr:
		return "edit"
	case ModeNewCategory:
		return "new category"
	case ModeNewTickr:
		return "new task"
	case ModeConfirm:
		return "confirm"
	case ModeQuit:
		return "quit"
	}
	return "unknown"
}
