package tui

type state int

const (
	loadingState state = iota
	browseState
	searchState
	errorState
)
