package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Prev      string
	Next      string
	Badge     string
	Image     string
	Link      string
	DotActive string
	DotIdle   string
}

var (
	nerdIcons = Icons{
		Prev:      "\uf053", // nf-fa-chevron_left
		Next:      "\uf054", // nf-fa-chevron_right
		Badge:     "\uf0e7", // nf-fa-bolt
		Image:     "\uf03e", // nf-fa-image
		Link:      "\uf0c1", // nf-fa-link
		DotActive: "\uf111", // nf-fa-circle
		DotIdle:   "\uf10c", // nf-fa-circle_o
	}

	unicodeIcons = Icons{
		Prev:      "‹",
		Next:      "›",
		Badge:     "◆",
		Image:     "▣",
		Link:      "→",
		DotActive: "●",
		DotIdle:   "○",
	}

	noneIcons = Icons{
		Prev:      "<",
		Next:      ">",
		Badge:     "*",
		Image:     "img:",
		Link:      "url:",
		DotActive: "#",
		DotIdle:   ".",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Prev returns the "previous" control glyph.
func Prev() string {
	return current.Prev
}

// Next returns the "next" control glyph.
func Next() string {
	return current.Next
}

// Badge returns the glyph drawn in a card's icon badge.
func Badge() string {
	return current.Badge
}

// DotActive returns the page indicator for the current position.
func DotActive() string {
	return current.DotActive
}

// DotIdle returns the page indicator for other positions.
func DotIdle() string {
	return current.DotIdle
}

// FormatIcon prefixes a card icon reference with the badge glyph.
func FormatIcon(ref string) string {
	if ref == "" {
		return ""
	}
	return current.Badge + " " + ref
}

// FormatImage prefixes an image reference with the image glyph.
func FormatImage(ref string) string {
	if ref == "" {
		return ""
	}
	return current.Image + " " + ref
}

// FormatLink prefixes a link with the link glyph.
func FormatLink(link string) string {
	if link == "" {
		return ""
	}
	return current.Link + " " + link
}
