package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/glint/internal/input/action"
	"github.com/dshills/glint/internal/input/dispatch"
	"github.com/dshills/glint/internal/input/route"
)

// button is a clickable, focusable widget. Press and Submit both count as
// an activation, so it works the same from the mouse and the keyboard.
type button struct {
	route.Hoverable
	route.Focusable

	label      string
	x, y, w, h int
	clicks     int
	table      *dispatch.Table
}

func newButton(label string, x, y int, status func(string)) *button {
	b := &button{label: label, x: x, y: y, w: len(label) + 4, h: 3}

	activate := func(dispatch.Context) {
		b.clicks++
		status(fmt.Sprintf("%s activated (%d)", b.label, b.clicks))
	}
	b.table = dispatch.NewTable().
		HandleFunc(action.Press, activate).
		HandleFunc(action.Submit, activate).
		HandleFunc(action.AltPress, func(dispatch.Context) {
			status(b.label + " context menu")
		}).
		HandleFunc(action.FocusGained, func(dispatch.Context) {
			status(b.label + " focused")
		}).
		Handle(action.FocusLost, func(dispatch.Context) bool {
			return true
		})
	return b
}

func (b *button) RunInputAction(act action.ID, active bool) bool {
	return b.table.Run(act, active)
}

func (b *button) contains(p route.Point) bool {
	return p.X >= b.x && p.X < b.x+b.w && p.Y >= b.y && p.Y < b.y+b.h
}

// gauge is a focusable value bar adjusted by the scroll wheel, showing
// that wheel ticks route by hover rather than focus.
type gauge struct {
	route.Hoverable
	route.Focusable

	x, y, w    int
	value, max int
	step       int
	table      *dispatch.Table
}

func newGauge(x, y, w, step int, status func(string)) *gauge {
	g := &gauge{x: x, y: y, w: w, max: 100, value: 50, step: step}

	adjust := func(delta int) func(dispatch.Context) {
		return func(dispatch.Context) {
			g.value += delta
			if g.value < 0 {
				g.value = 0
			}
			if g.value > g.max {
				g.value = g.max
			}
			status(fmt.Sprintf("gauge %d%%", g.value))
		}
	}
	g.table = dispatch.NewTable().
		HandleFunc(action.ScrollUp, adjust(step)).
		HandleFunc(action.ScrollDown, adjust(-step)).
		Handle(action.FocusGained, func(dispatch.Context) bool { return true }).
		Handle(action.FocusLost, func(dispatch.Context) bool { return true })
	return g
}

func (g *gauge) RunInputAction(act action.ID, active bool) bool {
	return g.table.Run(act, active)
}

func (g *gauge) contains(p route.Point) bool {
	return p.X >= g.x && p.X < g.x+g.w && p.Y == g.y
}

// scene is the demo layout: a row of buttons, a gauge, and a status line.
// It serves as both the hit tester and the tree walker.
type scene struct {
	buttons []*button
	gauge   *gauge
	nodes   []route.Node
	status  string
}

func newScene(scrollStep int) *scene {
	s := &scene{}
	setStatus := func(msg string) { s.status = msg }

	x := 2
	for _, label := range []string{"One", "Two", "Three"} {
		b := newButton(label, x, 2, setStatus)
		s.buttons = append(s.buttons, b)
		s.nodes = append(s.nodes, b)
		x += b.w + 2
	}
	s.gauge = newGauge(2, 7, 30, scrollStep, setStatus)
	s.nodes = append(s.nodes, s.gauge)

	s.status = "click a button, tab around, scroll the gauge"
	return s
}

// HitTest implements route.HitTester.
func (s *scene) HitTest(p route.Point) route.Node {
	for _, b := range s.buttons {
		if b.contains(p) {
			return b
		}
	}
	if s.gauge.contains(p) {
		return s.gauge
	}
	return nil
}

func (s *scene) index(n route.Node) int {
	for i, cand := range s.nodes {
		if cand == n {
			return i
		}
	}
	return -1
}

// Next implements route.TreeWalker.
func (s *scene) Next(from route.Node) route.Node {
	return s.nodes[(s.index(from)+1)%len(s.nodes)]
}

// Prev implements route.TreeWalker.
func (s *scene) Prev(from route.Node) route.Node {
	i := s.index(from)
	if i <= 0 {
		return s.nodes[len(s.nodes)-1]
	}
	return s.nodes[i-1]
}

// Neighbor implements route.TreeWalker. The layout is one row plus the
// gauge below it, so left/up walk backward and right/down forward.
func (s *scene) Neighbor(from route.Node, dir route.Direction) route.Node {
	switch dir {
	case route.DirLeft, route.DirUp:
		return s.Prev(from)
	default:
		return s.Next(from)
	}
}

func (s *scene) draw(screen tcell.Screen) {
	screen.Clear()

	for _, b := range s.buttons {
		style := tcell.StyleDefault
		if b.IsHovered() {
			style = style.Reverse(true)
		}
		if b.IsFocused() {
			style = style.Bold(true).Underline(true)
		}
		drawBox(screen, b.x, b.y, b.w, b.h, style)
		drawText(screen, b.x+2, b.y+1, style, b.label)
	}

	g := s.gauge
	gstyle := tcell.StyleDefault
	if g.IsHovered() {
		gstyle = gstyle.Reverse(true)
	}
	if g.IsFocused() {
		gstyle = gstyle.Bold(true)
	}
	filled := g.value * g.w / g.max
	for i := 0; i < g.w; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		screen.SetContent(g.x+i, g.y, r, nil, gstyle)
	}

	_, height := screen.Size()
	drawText(screen, 2, height-1, tcell.StyleDefault.Dim(true), s.status)

	screen.Show()
}

func drawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := 0; i < w; i++ {
		screen.SetContent(x+i, y, '─', nil, style)
		screen.SetContent(x+i, y+h-1, '─', nil, style)
	}
	for j := 0; j < h; j++ {
		screen.SetContent(x, y+j, '│', nil, style)
		screen.SetContent(x+w-1, y+j, '│', nil, style)
	}
	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(x+w-1, y, '┐', nil, style)
	screen.SetContent(x, y+h-1, '└', nil, style)
	screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
