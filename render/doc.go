// Package render is the presentation layer for mazes: it prints a grid as
// text with an optional path overlay and replays a path frame by frame.
//
// Plain output uses the gridgraph text codec ('.', '#', 'S', 'G') and '*'
// for path cells, so a frame without a path parses back into the same grid.
// WithColor switches to ANSI colours through github.com/gookit/color: white
// floor, black walls, green start, red goal and a blue path.
//
// Animate draws one frame per path cell with a pause between frames
// (100ms is the classic pace) and stops early when its context is done.
package render
