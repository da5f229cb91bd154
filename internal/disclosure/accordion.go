package disclosure

// None is the open index of an accordion with every panel collapsed.
const None = -1

// Accordion allows at most one open panel. The zero value has the first
// panel open.
type Accordion struct {
	// Open is the open panel index, or None.
	Open int
}

func NewAccordion() Accordion {
	return Accordion{}
}

// OpenIndex returns the open panel or None.
func (a Accordion) OpenIndex() int {
	if a.Open < 0 {
		return None
	}
	return a.Open
}

func (a Accordion) IsOpen(i int) bool {
	return i >= 0 && a.OpenIndex() == i
}

// Toggle closes panel i if it is the open one, otherwise opens exactly i.
func (a *Accordion) Toggle(i int) {
	if i < 0 {
		return
	}

	if a.IsOpen(i) {
		a.Open = None
		return
	}
	a.Open = i
}
