package ui

// Label is a text readout. It counts writes so callers can observe how often
// the displayed value actually changes.
type Label struct {
	Title  string
	text   string
	writes int
}

// NewLabel returns an empty label with the given caption.
func NewLabel(title string) *Label {
	return &Label{Title: title}
}

// Text returns the displayed value.
func (l *Label) Text() string { return l.text }

// SetText replaces the displayed value.
func (l *Label) SetText(s string) {
	l.text = s
	l.writes++
}

// Writes returns how many times SetText was called.
func (l *Label) Writes() int { return l.writes }

// String renders the caption and value as shown on screen.
func (l *Label) String() string {
	if l.Title == "" {
		return l.text
	}
	return l.Title + ": " + l.text
}
