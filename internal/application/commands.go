package application

type RunCommand struct {
	InputPath string
}

type CheckCommand struct {
	InputPath string
}
