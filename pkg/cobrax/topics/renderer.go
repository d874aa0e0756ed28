package topics

// Renderer formats topic content for terminal display.
type Renderer interface {
	// Render takes raw content and the topic file extension.
	Render(content string, format string) string
}

// PlainRenderer returns content as-is.
type PlainRenderer struct{}

// Render returns the content unchanged.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// MarkupRenderer renders bracket markup in ".txt" topics through a render
// function, usually a console's Render so color settings are honored.
type MarkupRenderer struct {
	RenderFunc func(string) string
}

// Render applies RenderFunc to text topics and leaves other formats alone.
func (r *MarkupRenderer) Render(content string, format string) string {
	if format != ".txt" || r.RenderFunc == nil {
		return content
	}
	return r.RenderFunc(content)
}
