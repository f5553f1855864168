package lumatone

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// The .ltn format is the Lumatone editor's INI-style mapping file: one
// [BoardN] section per key group, with Key_n, Chan_n and Col_n entries
// per key, plus hardware preference keys this tool does not interpret.

var (
	boardRe  = regexp.MustCompile(`^\[Board(\d+)\]$`)
	keyRe    = regexp.MustCompile(`^Key_(\d+)=(\d+)$`)
	chanRe   = regexp.MustCompile(`^Chan_(\d+)=(\d+)$`)
	colRe    = regexp.MustCompile(`^Col_(\d+)=([0-9a-fA-F]{6})$`)
	invertRe = regexp.MustCompile(`^CCInvert_(\d+)$`)

	// Hardware preferences pass through unused; the generator writes none
	// of them and the reader skips them.
	ignoreRe = regexp.MustCompile(`^(AfterTouchActive|LightOnKeyStrokes|InvertFootController|InvertSustain|ExprCtrlSensivity|VelocityIntrvlTbl|NoteOnOffVelocityCrvTbl|FaderConfig|afterTouchConfig|LumaTouchConfig)=(.*)$`)
)

// Save writes the keyboard as a .ltn mapping. Unassigned keys are written
// as the editor's default key record: channel 0, note 0, black.
func Save(w io.Writer, kb *Keyboard) error {
	bw := bufio.NewWriter(w)
	for g := 0; g < NumGroups; g++ {
		fmt.Fprintf(bw, "[Board%d]\n", g)
		for k := 0; k < KeysPerGroup; k++ {
			info := kb.Get(KeyIndex{Group: uint8(g), Key: uint8(k)})
			if info == nil {
				info = &KeyInfo{}
			}
			fmt.Fprintf(bw, "Key_%d=%d\n", k, info.Note)
			fmt.Fprintf(bw, "Chan_%d=%d\n", k, info.Channel)
			fmt.Fprintf(bw, "Col_%d=%s\n", k, info.Color.Hex())
		}
	}
	return bw.Flush()
}

// SaveFile writes the keyboard to a .ltn file at path.
func SaveFile(path string, kb *Keyboard) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save ltn: %w", err)
	}
	if err := Save(f, kb); err != nil {
		f.Close()
		return fmt.Errorf("save ltn: %w", err)
	}
	return f.Close()
}

// ltnGroup accumulates one [BoardN] section while loading.
type ltnGroup struct {
	group int
	notes [KeysPerGroup]uint8
	chans [KeysPerGroup]uint8
	cols  [KeysPerGroup]RGB8
}

func (g *ltnGroup) apply(kb *Keyboard) {
	for k := 0; k < KeysPerGroup; k++ {
		// Channel 0 is the writer's marker for an unassigned key.
		if g.chans[k] == 0 {
			continue
		}
		kb.Set(KeyIndex{Group: uint8(g.group), Key: uint8(k)}, &KeyInfo{
			Channel: g.chans[k],
			Note:    g.notes[k],
			Color:   g.cols[k],
			Label:   fmt.Sprintf("%d:%d", g.chans[k], g.notes[k]),
		})
	}
}

// Load reads a .ltn mapping back into a keyboard.
func Load(r io.Reader) (*Keyboard, error) {
	kb := NewKeyboard()
	var cur *ltnGroup

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		switch {
		case line == "":
			continue
		case boardRe.MatchString(line):
			if cur != nil {
				cur.apply(kb)
			}
			group, _ := strconv.Atoi(boardRe.FindStringSubmatch(line)[1])
			if group < 0 || group >= NumGroups {
				return nil, fmt.Errorf("ltn line %d: board %d out of range", lineNo, group)
			}
			cur = &ltnGroup{group: group}
		case keyRe.MatchString(line):
			m := keyRe.FindStringSubmatch(line)
			idx, val, err := keyVal(m)
			if err != nil || cur == nil {
				return nil, fmt.Errorf("ltn line %d: %q", lineNo, line)
			}
			cur.notes[idx] = val
		case chanRe.MatchString(line):
			m := chanRe.FindStringSubmatch(line)
			idx, val, err := keyVal(m)
			if err != nil || cur == nil {
				return nil, fmt.Errorf("ltn line %d: %q", lineNo, line)
			}
			cur.chans[idx] = val
		case colRe.MatchString(line):
			m := colRe.FindStringSubmatch(line)
			idx, err := strconv.Atoi(m[1])
			if err != nil || idx >= KeysPerGroup || cur == nil {
				return nil, fmt.Errorf("ltn line %d: %q", lineNo, line)
			}
			col, err := ParseRGB(m[2])
			if err != nil {
				return nil, fmt.Errorf("ltn line %d: %w", lineNo, err)
			}
			cur.cols[idx] = col
		case invertRe.MatchString(line), ignoreRe.MatchString(line):
			continue
		default:
			return nil, fmt.Errorf("ltn line %d: unrecognized line %q", lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load ltn: %w", err)
	}
	if cur != nil {
		cur.apply(kb)
	}
	return kb, nil
}

// LoadFile reads a .ltn file from path.
func LoadFile(path string) (*Keyboard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load ltn: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func keyVal(m []string) (idx int, val uint8, err error) {
	idx, err = strconv.Atoi(m[1])
	if err != nil || idx >= KeysPerGroup {
		return 0, 0, fmt.Errorf("index %s out of range", m[1])
	}
	v, err := strconv.Atoi(m[2])
	if err != nil || v > 255 {
		return 0, 0, fmt.Errorf("value %s out of range", m[2])
	}
	return idx, uint8(v), nil
}
