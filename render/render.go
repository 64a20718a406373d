package render

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"

	"github.com/katalvlaran/mazeagent/gridgraph"
)

// ErrNilGrid is returned when a nil grid is passed.
var ErrNilGrid = errors.New("render: grid is nil")

// clearScreen homes the cursor and erases the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Glyphs are the runes drawn for each kind of cell.
type Glyphs struct {
	Open, Blocked, Start, Goal, Path rune
}

// DefaultGlyphs matches the gridgraph text codec plus '*' for path cells.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Open:    gridgraph.OpenGlyph,
		Blocked: gridgraph.BlockedGlyph,
		Start:   gridgraph.StartGlyph,
		Goal:    gridgraph.GoalGlyph,
		Path:    '*',
	}
}

// kind is what a single rendered cell shows.
type kind uint8

const (
	kindOpen kind = iota
	kindBlocked
	kindStart
	kindGoal
	kindPath
)

// palette: white floor, black walls, green start, red goal, blue path.
var palette = [...]color.Style{
	kindOpen:    color.New(color.FgBlack, color.BgWhite),
	kindBlocked: color.New(color.FgWhite, color.BgBlack),
	kindStart:   color.New(color.FgWhite, color.BgGreen, color.OpBold),
	kindGoal:    color.New(color.FgWhite, color.BgRed, color.OpBold),
	kindPath:    color.New(color.FgWhite, color.BgBlue),
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor switches ANSI colour output on or off. Colour is still
// suppressed by gookit/color when the terminal does not support it.
func WithColor(on bool) Option {
	return func(r *Renderer) { r.color = on }
}

// WithGlyphs replaces the default glyph set.
func WithGlyphs(g Glyphs) Option {
	return func(r *Renderer) { r.glyphs = g }
}

// WithClear makes Animate clear the terminal before every frame instead of
// separating frames with a blank line.
func WithClear(on bool) Option {
	return func(r *Renderer) { r.clear = on }
}

// Renderer draws grids. The zero value is not usable; call New.
type Renderer struct {
	color  bool
	clear  bool
	glyphs Glyphs
}

// New returns a Renderer with plain output and DefaultGlyphs.
func New(opts ...Option) *Renderer {
	r := &Renderer{glyphs: DefaultGlyphs()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes one frame: one line per row with path cells overlaid.
// Start and Goal keep their own glyphs when they lie on the path.
func Render(w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell) error {
	return New().Render(w, g, path)
}

// Render writes g with path overlaid to w.
func (r *Renderer) Render(w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell) error {
	frame, err := r.Frame(g, path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, frame)
	return err
}

// Frame returns the rendering of g with path overlaid.
func (r *Renderer) Frame(g *gridgraph.Grid, path []gridgraph.Cell) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	n := g.Size()
	var sb strings.Builder
	sb.Grow(n * (n + 1))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := gridgraph.Cell{Row: row, Col: col}
			r.writeCell(&sb, cellKind(g.State(c), onPath[c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func cellKind(s gridgraph.CellState, onPath bool) kind {
	switch s {
	case gridgraph.Start:
		return kindStart
	case gridgraph.Goal:
		return kindGoal
	case gridgraph.Blocked:
		return kindBlocked
	}
	if onPath {
		return kindPath
	}
	return kindOpen
}

func (r *Renderer) writeCell(sb *strings.Builder, k kind) {
	var g rune
	switch k {
	case kindOpen:
		g = r.glyphs.Open
	case kindBlocked:
		g = r.glyphs.Blocked
	case kindStart:
		g = r.glyphs.Start
	case kindGoal:
		g = r.glyphs.Goal
	default:
		g = r.glyphs.Path
	}
	if !r.color {
		sb.WriteRune(g)
		return
	}
	sb.WriteString(palette[k].Sprint(string(g)))
}

// Animate draws len(path) frames, the i-th with the first i path cells
// overlaid, pausing delay between frames. An empty path draws the bare
// grid once. Returns ctx.Err() if cancelled between frames.
func (r *Renderer) Animate(ctx context.Context, w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell, delay time.Duration) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(path) == 0 {
		return r.frame(w, g, nil, true)
	}

	for i := 1; i <= len(path); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.frame(w, g, path[:i], i == 1); err != nil {
			return err
		}
		if delay <= 0 || i == len(path) {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}

// Animate is Renderer.Animate with default settings.
func Animate(ctx context.Context, w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell, delay time.Duration) error {
	return New().Animate(ctx, w, g, path, delay)
}

func (r *Renderer) frame(w io.Writer, g *gridgraph.Grid, path []gridgraph.Cell, first bool) error {
	switch {
	case r.clear:
		if _, err := io.WriteString(w, clearScreen); err != nil {
			return err
		}
	case !first:
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return r.Render(w, g, path)
}
