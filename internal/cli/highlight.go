package cli

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style used for config output.
const highlightStyle = "task-tracker"

func init() {
	// Palette matches the TUI colors
	styles.Register(chroma.MustNewStyle(highlightStyle, chroma.StyleEntries{
		chroma.Text:              "#dfe6e9",
		chroma.Error:             "#d63031",
		chroma.Comment:           "#636e72 italic",
		chroma.Keyword:           "#6c5ce7",
		chroma.KeywordConstant:   "#fdcb6e",
		chroma.NameAttribute:     "#a29bfe",
		chroma.NameTag:           "#a29bfe",
		chroma.Name:              "#dfe6e9",
		chroma.Punctuation:       "#636e72",
		chroma.LiteralNumber:     "#fdcb6e",
		chroma.LiteralString:     "#00b894",
		chroma.GenericHeading:    "#6c5ce7 bold",
		chroma.GenericSubheading: "#a29bfe bold",
		chroma.Background:        "", // Transparent background
	}))
}

// highlight writes src to w with terminal colors for the given language.
func highlight(w io.Writer, src, lang string) error {
	return quick.Highlight(w, src, lang, "terminal256", highlightStyle)
}
