package tui

// represents the current state of the TUI
type AppState int

const (
	StateBrowser AppState = iota
	StatePrompt
	StateDetail
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	browser *BrowserModel
	prompt  *PromptModel
	detail  *DetailModel
	client  *APIClient
}

// sent when an unrecoverable error occurs
type ErrorMsg struct {
	err error
}

// sent when the history list has been fetched
type GenerationsLoadedMsg struct {
	generations []generationSummary
}

// sent when a single generation has been fetched or created
type GenerationLoadedMsg struct {
	generation *generationDetail
}

// sent when an API call fails
type APIErrorMsg struct {
	err error
}
