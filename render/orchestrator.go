package render

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
	jitter    *rand.Rand // Shake noise, separate from the simulation generator
}

// NewRenderOrchestrator creates an orchestrator drawing to screen at its current size
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		canvas:    NewCanvas(w, h),
		renderers: make([]rendererEntry, 0, 16),
		jitter:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Canvas returns the drawing surface, sized to the last resize
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// Resize updates canvas dimensions and syncs the terminal
func (o *RenderOrchestrator) Resize(width, height int) {
	o.canvas.Resize(width, height)
	o.screen.Sync()
}

// Shake returns a random camera offset for the given intensity
func (o *RenderOrchestrator) Shake(intensity float64) (float64, float64) {
	if intensity <= 0 {
		return 0, 0
	}
	return (o.jitter.Float64() - 0.5) * intensity, (o.jitter.Float64() - 0.5) * intensity
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.canvas.Clear(Black)

	o.canvas.Save()
	o.canvas.Translate(ctx.ShakeX, ctx.ShakeY)
	shaken := true

	for _, entry := range o.renderers {
		if shaken && entry.priority >= PriorityHUD {
			o.canvas.Restore()
			shaken = false
		}
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}
	if shaken {
		o.canvas.Restore()
	}

	o.canvas.Flush(o.screen)
	o.screen.Show()
}
