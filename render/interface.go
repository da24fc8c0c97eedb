package render

// SystemRenderer is implemented by every visual layer
type SystemRenderer interface {
	Render(ctx RenderContext, c *Canvas)
}

// VisibilityToggle is optionally implemented by layers shown only on some screens
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
