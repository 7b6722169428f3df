package ui

// IconAttr marks a node whose glyph the icon collaborator materializes.
const IconAttr = "data-icon"

// IconRenderer turns icon markers into glyphs. Calls are fire-and-forget.
type IconRenderer interface {
	CreateIcons(root *Node)
}

// Icons materializes markers as terminal symbols.
type Icons struct {
	symbols map[string]string
	calls   int
}

func NewIcons() *Icons {
	return &Icons{symbols: map[string]string{
		"star":     "★",
		"map-pin":  "⌖",
		"check":    "✓",
		"car":      "»",
		"search":   "⌕",
		"calendar": "▦",
	}}
}

func (i *Icons) CreateIcons(root *Node) {
	i.calls++
	if root == nil {
		return
	}
	root.Walk(func(n *Node) {
		name := n.Attr(IconAttr)
		if name == "" || n.Text != "" {
			return
		}
		sym, ok := i.symbols[name]
		if !ok {
			sym = "•"
		}
		n.Text = sym
	})
}

// Calls reports how many times CreateIcons ran.
func (i *Icons) Calls() int { return i.calls }
