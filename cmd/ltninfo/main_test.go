package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangybbq/dlb-lumatone/lumatone"
)

func TestSummarize(t *testing.T) {
	kb := lumatone.NewKeyboard()
	for g := 0; g < lumatone.NumGroups; g++ {
		for i := 0; i < lumatone.KeysPerGroup; i++ {
			kb.Set(lumatone.KeyIndex{Group: uint8(g), Key: uint8(i)}, &lumatone.KeyInfo{
				Channel: uint8(g + 1), Note: uint8(i),
			})
		}
	}

	for g := 0; g < lumatone.NumGroups; g++ {
		s := summarize(kb, g)
		require.Equal(t, lumatone.KeysPerGroup, s.count)
		require.Equal(t, uint8(g+1), s.chanLo)
		require.Equal(t, uint8(g+1), s.chanHi)
		require.Equal(t, uint8(0), s.noteLo)
		require.Equal(t, uint8(lumatone.KeysPerGroup-1), s.noteHi)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := summarize(lumatone.NewKeyboard(), 0)
	require.Zero(t, s.count)
}
