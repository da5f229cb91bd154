// Package disclosure tracks which collapsible parts of a page are open: the
// application modal and the FAQ accordion. The types are plain values so they
// can travel in a visitor cookie.
package disclosure

import "strings"

// Target is the part of an open modal that received a click.
type Target string

const (
	TargetOverlay      Target = "overlay"
	TargetContent      Target = "content"
	TargetCloseControl Target = "close"
)

// ParseTarget maps a posted value to a Target. Anything unrecognised is
// treated as a click on the content, which never closes the modal.
func ParseTarget(v string) Target {
	switch Target(strings.ToLower(strings.TrimSpace(v))) {
	case TargetOverlay:
		return TargetOverlay
	case TargetCloseControl:
		return TargetCloseControl
	}
	return TargetContent
}

type Modal struct {
	IsOpen bool
}

func (m *Modal) Open() {
	m.IsOpen = true
}

func (m *Modal) Close() {
	m.IsOpen = false
}

// Click closes the modal when the overlay or the close control was hit and
// reports whether it did.
func (m *Modal) Click(target Target) bool {
	if !m.IsOpen {
		return false
	}

	switch target {
	case TargetOverlay, TargetCloseControl:
		m.Close()
		return true
	}
	return false
}
