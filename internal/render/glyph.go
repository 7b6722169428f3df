package render

import "github.com/cruzr/cruzr/internal/catalog"

// Glyph is the placeholder art shown for a vehicle without media.
type Glyph struct {
	Name   string
	Art    string
	Markup string
}

var (
	electricGlyph = Glyph{
		Name:   "electric",
		Art:    "[⚡]",
		Markup: `<svg width="48" height="48" viewBox="0 0 24 24" fill="none" stroke="#00b8d9" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M10 2v5h4l-6 9v-5H4l6-9z"></path><path d="M7 22h10"></path></svg>`,
	}
	suvGlyph = Glyph{
		Name:   "suv",
		Art:    "[▟█▙]",
		Markup: `<svg width="48" height="48" viewBox="0 0 24 24" fill="none" stroke="#0052cc" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M5 12h14l3 5v3h-2"></path><path d="M19 12l-1.5-5.5A2 2 0 0 0 15.6 5H8.4a2 2 0 0 0-1.9 1.5L5 12"></path><circle cx="7" cy="19" r="2"></circle><circle cx="17" cy="19" r="2"></circle></svg>`,
	}
	sedanGlyph = Glyph{
		Name:   "sedan",
		Art:    "[▁▟▙▁]",
		Markup: `<svg width="48" height="48" viewBox="0 0 24 24" fill="none" stroke="#00b8d9" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M3 13l2-5h7l2 5"></path><path d="M5 18h14"></path><circle cx="7.5" cy="18" r="1.5"></circle><circle cx="16.5" cy="18" r="1.5"></circle></svg>`,
	}
	luxuryGlyph = Glyph{
		Name:   "luxury",
		Art:    "[♛▟▙]",
		Markup: `<svg width="48" height="48" viewBox="0 0 24 24" fill="none" stroke="#0052cc" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M3 11l3-7h12l3 7"></path><path d="M5 18h14"></path><circle cx="7.5" cy="18" r="1.5"></circle><circle cx="16.5" cy="18" r="1.5"></circle><path d="M10 5h4"></path></svg>`,
	}
)

// GlyphFor maps every vehicle type to its placeholder. Types outside the
// known set use the sedan glyph.
func GlyphFor(t catalog.VehicleType) Glyph {
	switch t {
	case catalog.Electric:
		return electricGlyph
	case catalog.SUV:
		return suvGlyph
	case catalog.Luxury:
		return luxuryGlyph
	case catalog.Sedan:
		return sedanGlyph
	default:
		return sedanGlyph
	}
}
