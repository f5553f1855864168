package main

import (
	"fmt"
	"os"

	"github.com/tangybbq/dlb-lumatone/lumatone"
	"github.com/tangybbq/dlb-lumatone/tui"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		return
	}

	switch os.Args[1] {
	case "info":
		runInfo(os.Args[2])
	case "dump":
		runDump(os.Args[2])
	case "view":
		runView(os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Lumatone key map inspector")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  info <file.ltn>  - Per-board assignment summary")
	fmt.Println("  dump <file.ltn>  - List every assigned key")
	fmt.Println("  view <file.ltn>  - Show the board in the terminal")
}

func load(path string) *lumatone.Keyboard {
	kb, err := lumatone.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return kb
}

// boardSummary is the assignment range of one key group.
type boardSummary struct {
	count          int
	chanLo, chanHi uint8
	noteLo, noteHi uint8
}

func summarize(kb *lumatone.Keyboard, group int) boardSummary {
	s := boardSummary{chanLo: 255, noteLo: 255}
	for i := 0; i < lumatone.KeysPerGroup; i++ {
		info := kb.Get(lumatone.KeyIndex{Group: uint8(group), Key: uint8(i)})
		if info == nil {
			continue
		}
		s.count++
		s.chanLo = min(s.chanLo, info.Channel)
		s.chanHi = max(s.chanHi, info.Channel)
		s.noteLo = min(s.noteLo, info.Note)
		s.noteHi = max(s.noteHi, info.Note)
	}
	return s
}

func runInfo(path string) {
	kb := load(path)
	fmt.Printf("%s: %d of %d keys assigned\n", path, kb.Assigned(), lumatone.NumKeys)

	for g := 0; g < lumatone.NumGroups; g++ {
		s := summarize(kb, g)
		if s.count == 0 {
			fmt.Printf("  board %d: empty\n", g)
			continue
		}
		fmt.Printf("  board %d: %d keys, channels %d-%d, notes %d-%d\n",
			g, s.count, s.chanLo, s.chanHi, s.noteLo, s.noteHi)
	}
}

func runDump(path string) {
	kb := load(path)
	for _, k := range lumatone.Keys() {
		info := kb.Get(k)
		if info == nil {
			continue
		}
		x, y := lumatone.Position(k)
		fmt.Printf("board %d key %2d (%2d,%2d): ch %2d note %3d %s %s\n",
			k.Group, k.Key, x, y, info.Channel, info.Note,
			info.Color.Hex(), info.Label)
	}
}

func runView(path string) {
	kb := load(path)
	if err := tui.Show(path, kb); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
