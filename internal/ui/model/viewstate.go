package model

// Page is the top level screen being displayed.
type Page int

const (
	PageMain Page = iota
	PageHelp
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page

	// --------------------- h
	// | Tree | Browser    | e
	// |      |            | i
	// --------------------- g
	// Content height excludes the header and footer.
	Content int
	Height  int
	Width   int
}

// TreeWidth is the width of the navigator pane, the browser takes the rest.
func (v ViewState) TreeWidth() int {
	return min(max(v.Width/3, 28), 40)
}

func (v ViewState) BrowserWidth() int {
	return max(v.Width-v.TreeWidth(), 0)
}
