package tools

import (
	"context"

	"github.com/PixPMusic/koii-mcp/internal/errs"
	"github.com/PixPMusic/koii-mcp/internal/pads"
	"github.com/PixPMusic/koii-mcp/internal/resolve"
	"github.com/PixPMusic/koii-mcp/internal/sounds"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
)

func (e *Executor) soundHandlers() []Handler {
	return []Handler{
		newHandler(mcp.NewTool("list_sound_categories",
			mcp.WithDescription("List the categories of the factory sound library."),
		), e.listCategories),

		newHandler(mcp.NewTool("list_sounds_in_category",
			mcp.WithDescription("List the sounds of one library category, ordered by sound id."),
			mcp.WithString("category", mcp.Required(), mcp.Description("Category name as returned by list_sound_categories")),
		), e.listSounds),

		newHandler(mcp.NewTool("find_sound",
			mcp.WithDescription("Search the sound library by name and report where the sound sits in the factory pad layout."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Full or partial sound name, e.g. 'NT SNARE'")),
		), e.findSound),

		newHandler(mcp.NewTool("resolve_reference",
			mcp.WithDescription("Show which MIDI note a drum pattern reference (pad, note number, drum name or sound name) maps to."),
			mcp.WithString("reference", mcp.Required(), mcp.Description("The reference to resolve")),
		), e.resolveReference),

		newHandler(mcp.NewTool("get_default_pad_configuration",
			mcp.WithDescription("Show the factory pad layout of groups A, B and C, rows bottom to top, with MIDI notes and sounds."),
		), e.padConfiguration),
	}
}

func (e *Executor) listCategories(ctx context.Context, args Args) (string, error) {
	return jsonText(sounds.Categories())
}

func (e *Executor) listSounds(ctx context.Context, args Args) (string, error) {
	category, err := args.RequireString("category")
	if err != nil {
		return "", err
	}
	list, err := sounds.SoundsIn(category)
	if err != nil {
		return "", err
	}
	return jsonText(list)
}

type soundMatch struct {
	sounds.Entry
	Pad      string `json:"pad,omitempty"`
	MidiNote *int   `json:"midi_note,omitempty"`
}

func (e *Executor) findSound(ctx context.Context, args Args) (string, error) {
	name, err := args.RequireString("name")
	if err != nil {
		return "", err
	}
	id, ok := sounds.FindByName(name)
	if !ok {
		return "", errors.Wrapf(errs.ErrInvalidReference, "no sound matches %q", name)
	}
	entry, _ := sounds.Lookup(id)

	match := soundMatch{Entry: entry}
	if ref, ok := pads.Locate(id); ok {
		match.Pad = ref.String()
		if note, err := ref.Note(); err == nil {
			match.MidiNote = &note
		}
	}
	return jsonText(match)
}

type resolution struct {
	Reference string `json:"reference"`
	MidiNote  int    `json:"midi_note"`
	Via       string `json:"via"`
	Pad       string `json:"pad,omitempty"`
	SoundID   int    `json:"sound_id,omitempty"`
	SoundName string `json:"sound_name,omitempty"`
}

func (e *Executor) resolveReference(ctx context.Context, args Args) (string, error) {
	ref, err := args.String("reference", "")
	if err != nil {
		return "", err
	}
	res := resolve.Resolve(ref)
	out := resolution{
		Reference: ref,
		MidiNote:  res.Note,
		Via:       res.Via.String(),
		Pad:       res.Pad,
		SoundID:   res.SoundID,
	}
	if out.SoundID == 0 && res.Pad != "" {
		out.SoundID, _ = pads.DefaultSoundForPad(res.Pad)
	}
	if entry, ok := sounds.Lookup(out.SoundID); ok && out.SoundID != 0 {
		out.SoundName = entry.Name
	}
	return jsonText(out)
}

func (e *Executor) padConfiguration(ctx context.Context, args Args) (string, error) {
	return jsonText(pads.Report())
}
