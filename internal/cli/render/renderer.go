package render

// Renderer prints the outcome of a use case to the diagnostic stream
type Renderer[T any] interface {
	Render(result T) error
}
