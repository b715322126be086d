package tui

import (
	"fmt"
	"strconv"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// inputField is a single numeric form input with cursor editing and a
// validity range mirroring the form constraints.
type inputField struct {
	label     string
	unit      string
	value     string
	cursorPos int
	min       float64
	max       float64
	step      float64
}

// newInputField creates a field pre-filled with the given value.
func newInputField(label, unit string, initial, min, max, step float64) inputField {
	value := strconv.FormatFloat(initial, 'f', -1, 64)
	return inputField{
		label:     label,
		unit:      unit,
		value:     value,
		cursorPos: len(value),
		min:       min,
		max:       max,
		step:      step,
	}
}

// parse returns the numeric value of the field.
func (f inputField) parse() (float64, error) {
	v, err := strconv.ParseFloat(f.value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", f.label, f.value)
	}
	return v, nil
}

// valid reports whether the current text parses and lies within the range.
func (f inputField) valid() bool {
	v, err := f.parse()
	return err == nil && v >= f.min && v <= f.max
}

// rangeHint renders the allowed range for display next to the field.
func (f inputField) rangeHint() string {
	return fmt.Sprintf("%g–%g %s", f.min, f.max, f.unit)
}

// adjust shifts the numeric value by n steps, clamping to the range. Used by
// the +/- keys for mouse-free tweaking.
func (f *inputField) adjust(n float64) {
	v, err := f.parse()
	if err != nil {
		v = f.min
	}
	v += n * f.step
	if v < f.min {
		v = f.min
	}
	if v > f.max {
		v = f.max
	}
	f.value = strconv.FormatFloat(v, 'f', -1, 64)
	f.cursorPos = len(f.value)
}

// handleKey processes editing keys. It returns true if the key was consumed.
func (f *inputField) handleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace:
		if len(f.value) > 0 && f.cursorPos > 0 {
			f.value = f.value[:f.cursorPos-1] + f.value[f.cursorPos:]
			f.cursorPos--
		}
		return true
	case tea.KeyDelete:
		if f.cursorPos < len(f.value) {
			f.value = f.value[:f.cursorPos] + f.value[f.cursorPos+1:]
		}
		return true
	case tea.KeyHome:
		f.cursorPos = 0
		return true
	case tea.KeyEnd:
		f.cursorPos = len(f.value)
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if unicode.IsDigit(r) || r == '.' {
				f.value = f.value[:f.cursorPos] + string(r) + f.value[f.cursorPos:]
				f.cursorPos++
			}
		}
		return true
	}
	return false
}

// render builds the field display with an inline cursor when focused.
func (f inputField) render(st Styles, focused bool) string {
	display := f.value
	if focused {
		// Insert cursor using a pipe character for better terminal compatibility
		if f.cursorPos >= len(display) {
			display += "|"
		} else {
			display = display[:f.cursorPos] + "|" + display[f.cursorPos:]
		}
	}
	if display == "" {
		display = "..."
	}

	inputStyle := st.Input
	switch {
	case !f.valid():
		inputStyle = st.InputInvalid
	case focused:
		inputStyle = st.InputFocused
	}

	label := st.Label.Width(28).Render(fmt.Sprintf("%s (%s):", f.label, f.unit))
	box := inputStyle.Width(12).Render(display)
	hint := st.Muted.Render("  " + f.rangeHint())
	return joinFieldRow(label, box, hint)
}
