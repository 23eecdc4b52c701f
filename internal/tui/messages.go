package tui

import "github.com/promptdeck/promptdeck/internal/search"

type resultsMsg struct {
	resp search.Response
}

type openErrMsg struct {
	err error
}
