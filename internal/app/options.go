package app

// Options configures the GUI window.
type Options struct {
	Title  string
	Width  int
	Height int
	TPS    int
}
