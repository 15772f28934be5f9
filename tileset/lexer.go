package tileset

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// tileLexer splits tile-set text into tokens. Rows are any run of
// characters that are neither whitespace, digits nor ':'; the charset is
// applied when the rows are turned into bitmaps so that a bad cell can be
// reported against its tile.
var tileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Keyword", Pattern: `Tile\b`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Row", Pattern: `[^\s:0-9]+`},
})

// tileFile is a whole tile-set document.
type tileFile struct {
	Tiles []*tileBlock `parser:"@@*"`
}

// tileBlock is one "Tile <id>:" header and its rows.
type tileBlock struct {
	Pos  lexer.Position
	ID   int      `parser:"\"Tile\" @Int \":\""`
	Rows []string `parser:"@Row+"`
}

// markerFile is a bare block of rows.
type markerFile struct {
	Rows []string `parser:"@Row+"`
}
