package interfaces

// Launcher starts the external editor executable
type Launcher interface {
	// Launch spawns executable with args and returns the child pid without waiting for it
	Launch(executable string, args ...string) (int, error)
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	// Confirm blocks until the user answers; a false result means declined
	Confirm(message string) (bool, error)
}
