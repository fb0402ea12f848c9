package pads

import (
	"fmt"

	"github.com/PixPMusic/koii-mcp/internal/sounds"
)

// defaultConfig holds the factory sound id of every pad, rows bottom to
// top. Channel D ships empty.
var defaultConfig = map[Channel][Rows][Cols]int{
	'A': {
		{343, 235, 247},
		{317, 200, 218},
		{100, 114, 130},
		{1, 21, 300},
	},
	'B': {
		{445, 450, 455},
		{430, 435, 440},
		{415, 420, 425},
		{400, 405, 410},
	},
	'C': {
		{545, 550, 555},
		{530, 353, 540},
		{515, 520, 525},
		{500, 505, 510},
	},
}

// Configured reports whether ch has a factory sound layout.
func Configured(ch Channel) bool {
	_, ok := defaultConfig[ch]
	return ok
}

// DefaultSound returns the factory sound id of the pad.
func DefaultSound(ref Ref) (int, bool) {
	grid, ok := defaultConfig[ref.Channel]
	if !ok {
		return 0, false
	}
	row, col, ok := ref.Cell()
	if !ok || row >= len(grid) || col >= len(grid[row]) {
		return 0, false
	}
	return grid[row][col], true
}

// DefaultSoundForPad parses label and returns its factory sound id.
func DefaultSoundForPad(label string) (int, bool) {
	ref, err := Parse(label)
	if err != nil {
		return 0, false
	}
	return DefaultSound(ref)
}

// Locate finds the first pad (channels A-D, rows bottom to top) whose
// factory sound is id.
func Locate(id int) (Ref, bool) {
	for _, ch := range Channels {
		grid, ok := defaultConfig[ch]
		if !ok {
			continue
		}
		for row := range grid {
			for col, sid := range grid[row] {
				if sid == id {
					return RefAt(ch, row, col)
				}
			}
		}
	}
	return Ref{}, false
}

// PadInfo describes one cell of the factory layout.
type PadInfo struct {
	Pad       string `json:"pad"`
	MidiNote  *int   `json:"midi_note"`
	SoundID   int    `json:"sound_id"`
	SoundName string `json:"sound_name"`
	Category  string `json:"category,omitempty"`
}

// ChannelInfo lists a channel's rows bottom to top.
type ChannelInfo struct {
	Rows [][]PadInfo `json:"rows"`
}

// Report builds the factory layout of every configured channel. FX pads
// carry no MIDI note.
func Report() map[string]ChannelInfo {
	out := make(map[string]ChannelInfo)
	for _, ch := range Channels {
		if !Configured(ch) {
			continue
		}
		info := ChannelInfo{Rows: make([][]PadInfo, 0, Rows)}
		for row := 0; row < Rows; row++ {
			cells := make([]PadInfo, 0, Cols)
			for col := 0; col < Cols; col++ {
				ref, _ := RefAt(ch, row, col)
				id, _ := DefaultSound(ref)
				cell := PadInfo{
					Pad:       ref.String(),
					SoundID:   id,
					SoundName: fmt.Sprintf("Unknown (%d)", id),
				}
				if ref.Slot != SlotFX {
					if note, err := ref.Note(); err == nil {
						cell.MidiNote = &note
					}
				}
				if e, ok := sounds.Lookup(id); ok {
					cell.SoundName = e.Name
					cell.Category = e.Category
				}
				cells = append(cells, cell)
			}
			info.Rows = append(info.Rows, cells)
		}
		out[ch.String()] = info
	}
	return out
}
