package universe

//Viewer is the interface to any Viewer - the object who displays the board.
//Refresh is called after every change of the grid or of the running state,
//possibly from the player goroutine
type Viewer interface {
	Refresh()
}

//ViewerFunc adapts a function to the Viewer interface
type ViewerFunc func()

func (f ViewerFunc) Refresh() { f() }
