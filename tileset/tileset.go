// Package tileset reads and writes the plain-text tile format:
//
//	Tile 2311:
//	..##.#..#.
//	##..#.....
//	...
//
// Tiles are separated by their "Tile <id>:" headers; blank lines are
// ignored. A marker file is a single block of rows with no header. Both use
// the Mark and Blank runes of a bitmap.Charset.
package tileset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/tile"
)

// ErrSyntax indicates text that does not follow the tile-set grammar.
var ErrSyntax = errors.New("tileset: syntax error")

// Parser turns tile-set and marker text into tiles and bitmaps.
type Parser struct {
	cs     bitmap.Charset
	tiles  *participle.Parser[tileFile]
	marker *participle.Parser[markerFile]
}

// NewParser builds a parser for the given charset. Mark and Blank must not
// be digits or ':' since those delimit tile headers.
func NewParser(cs bitmap.Charset) (*Parser, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	for _, r := range []rune{cs.Mark, cs.Blank} {
		if unicode.IsDigit(r) || r == ':' {
			return nil, fmt.Errorf("%w: rune %q collides with tile headers", bitmap.ErrInvalidCharset, r)
		}
	}

	tiles, err := participle.Build[tileFile](
		participle.Lexer(tileLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build tile parser: %w", err)
	}
	marker, err := participle.Build[markerFile](
		participle.Lexer(tileLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build marker parser: %w", err)
	}

	return &Parser{cs: cs, tiles: tiles, marker: marker}, nil
}

// Charset returns the charset the parser was built with.
func (p *Parser) Charset() bitmap.Charset { return p.cs }

// ParseTiles reads a tile set. Every tile must be square and its rows must
// only use the charset's Mark and Blank runes.
func (p *Parser) ParseTiles(r io.Reader) ([]*tile.Tile, error) {
	doc, err := p.tiles.Parse("", r)
	if err != nil {
		return nil, syntaxError(err)
	}
	if len(doc.Tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrSyntax)
	}

	out := make([]*tile.Tile, 0, len(doc.Tiles))
	for _, blk := range doc.Tiles {
		data, err := p.rows(blk.Rows)
		if err != nil {
			return nil, fmt.Errorf("tile %d at line %d: %w", blk.ID, blk.Pos.Line, err)
		}
		t, err := tile.New(blk.ID, data)
		if err != nil {
			return nil, fmt.Errorf("tile %d at line %d: %w", blk.ID, blk.Pos.Line, err)
		}
		out = append(out, t)
	}

	return out, nil
}

// ParseTilesString is ParseTiles over a string.
func (p *Parser) ParseTilesString(s string) ([]*tile.Tile, error) {
	return p.ParseTiles(strings.NewReader(s))
}

// ParseTilesFile is ParseTiles over the named file.
func (p *Parser) ParseTilesFile(path string) ([]*tile.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.ParseTiles(f)
}

// ParseMarker reads a rectangular marker block.
func (p *Parser) ParseMarker(r io.Reader) (*bitmap.Bitmap, error) {
	doc, err := p.marker.Parse("", r)
	if err != nil {
		return nil, syntaxError(err)
	}

	return p.rows(doc.Rows)
}

// ParseMarkerString is ParseMarker over a string.
func (p *Parser) ParseMarkerString(s string) (*bitmap.Bitmap, error) {
	return p.ParseMarker(strings.NewReader(s))
}

// ParseMarkerFile is ParseMarker over the named file.
func (p *Parser) ParseMarkerFile(path string) (*bitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.ParseMarker(f)
}

// rows converts rows to a bitmap. Consumed is not a valid input symbol.
func (p *Parser) rows(lines []string) (*bitmap.Bitmap, error) {
	b, err := bitmap.FromRows(lines, p.cs)
	if err != nil {
		return nil, err
	}
	if n := b.Count(bitmap.Consumed); n > 0 {
		return nil, fmt.Errorf("%w: %q in input (%d cells)", bitmap.ErrUnknownSymbol, p.cs.Consumed, n)
	}

	return b, nil
}

func syntaxError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return fmt.Errorf("%w: line %d col %d: %s", ErrSyntax, pos.Line, pos.Column, perr.Message())
	}

	return fmt.Errorf("%w: %w", ErrSyntax, err)
}

// Write renders tiles in the text format using cs, each tile as currently
// oriented, with a blank line after every tile.
func Write(w io.Writer, tiles []*tile.Tile, cs bitmap.Charset) error {
	if err := cs.Validate(); err != nil {
		return err
	}
	for _, t := range tiles {
		if _, err := fmt.Fprintf(w, "Tile %d:\n%s\n\n", t.ID(), t.Render().Format(cs)); err != nil {
			return err
		}
	}

	return nil
}
