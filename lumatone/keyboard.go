package lumatone

import "fmt"

// KeyInfo is the assignment carried by one key: the MIDI channel and note
// it plays, the color it lights up with, and its display label.
type KeyInfo struct {
	Channel uint8
	Note    uint8
	Color   RGB8
	Label   string
}

// Keyboard is the complete per-key assignment table for one mapping run.
// Keys without an assignment hold nil; they exist on the hardware but
// produce nothing. Built once and treated as read-only afterward.
type Keyboard struct {
	keys [NumGroups][KeysPerGroup]*KeyInfo
}

// NewKeyboard returns a keyboard with every key unassigned.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Get returns the assignment for a key, or nil if unassigned.
func (kb *Keyboard) Get(k KeyIndex) *KeyInfo {
	if int(k.Group) >= NumGroups || int(k.Key) >= KeysPerGroup {
		return nil
	}
	return kb.keys[k.Group][k.Key]
}

// Set records the assignment for a key. A nil info clears it.
func (kb *Keyboard) Set(k KeyIndex, info *KeyInfo) {
	kb.keys[k.Group][k.Key] = info
}

// Assigned returns the number of keys with an assignment.
func (kb *Keyboard) Assigned() int {
	n := 0
	for _, k := range Keys() {
		if kb.Get(k) != nil {
			n++
		}
	}
	return n
}

// RGB8 is a key color in the editor's 8-bit-per-channel form.
type RGB8 struct {
	R, G, B uint8
}

// White is the fallback color for assigned keys with no theme.
func White() RGB8 {
	return RGB8{255, 255, 255}
}

// Hex renders the color the way .ltn files store it, without a leading #.
func (c RGB8) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a 6-digit hex color as found in .ltn files.
func ParseRGB(s string) (RGB8, error) {
	var c RGB8
	if len(s) != 6 {
		return c, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	_, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil {
		return c, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}
