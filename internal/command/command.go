package command

// Command is a deferred intent produced by key handlers and applied when the
// queue is drained. The set of commands is closed to this package.
type Command interface {
	isCommand()
}

// SubmitAction describes what an input prompt's value is used for.
type SubmitAction interface {
	isSubmitAction()
}

// SubmitRenameTab renames the tab at Index with the submitted value.
type SubmitRenameTab struct {
	Index int
}

// SubmitOpenTab opens the submitted value as a URL in a new tab.
type SubmitOpenTab struct{}

func (SubmitRenameTab) isSubmitAction() {}
func (SubmitOpenTab) isSubmitAction()   {}

// ShowWidget makes a widget visible, optionally taking focus.
type ShowWidget struct {
	ID    string
	Focus bool
}

// HideWidget hides a widget and drops its focus.
type HideWidget struct {
	ID string
}

// ToggleWidget flips the visibility of a widget.
type ToggleWidget struct {
	ID    string
	Focus bool
}

// FocusWidget gives focus to a visible widget.
type FocusWidget struct {
	ID string
}

// UnfocusWidget clears focus if ID holds it.
type UnfocusWidget struct {
	ID string
}

// DestroyWidget removes a widget from the registry.
type DestroyWidget struct {
	ID string
}

// InputSubmit carries the value of a submitted input prompt.
type InputSubmit struct {
	Action SubmitAction
	Value  string
}

// RenameTab sets the name of the tab at Index.
type RenameTab struct {
	Index int
	Name  string
}

// NewTabURL opens URL in a new tab and switches to it.
type NewTabURL struct {
	Title string
	URL   string
}

// CloseTab closes the tab at Index unless it is the last one.
type CloseTab struct {
	Index int
}

// SwitchTab makes the tab at Index current.
type SwitchTab struct {
	Index int
}

// ScrollTab scrolls the current tab's content by Delta lines.
type ScrollTab struct {
	Delta int
}

// CopyURL copies the current tab's URL to the system clipboard.
type CopyURL struct{}

// Quit stops the application.
type Quit struct{}

func (ShowWidget) isCommand()    {}
func (HideWidget) isCommand()    {}
func (ToggleWidget) isCommand()  {}
func (FocusWidget) isCommand()   {}
func (UnfocusWidget) isCommand() {}
func (DestroyWidget) isCommand() {}
func (InputSubmit) isCommand()   {}
func (RenameTab) isCommand()     {}
func (NewTabURL) isCommand()     {}
func (CloseTab) isCommand()      {}
func (SwitchTab) isCommand()     {}
func (ScrollTab) isCommand()     {}
func (CopyURL) isCommand()       {}
func (Quit) isCommand()          {}
