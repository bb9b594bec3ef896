package interfaces

// Descriptor contains the variables available to the marker file template
type Descriptor struct {
	Name string
}

// MarkerRenderer produces the contents of a new project's marker file
type MarkerRenderer interface {
	// Render returns the marker file contents for the descriptor
	Render(data Descriptor) (string, error)
}
