package controller

import (
	m "github.com/mouse-blink/remedy/internal/model"
)

// Message types.
type concurrencyMsg struct {
	files   int
	issues  int
	workers int
}

type fileStartMsg struct {
	filename string
	issues   int
}

type fixStartMsg struct {
	filename string
	code     string
	message  string
}

type fixDoneMsg struct {
	filename string
	code     string
	message  string
	status   string
	diff     string
}

type fileDoneMsg struct {
	report m.FileReport
}

type summaryMsg struct {
	run m.RunReport
}

type issuesMsg struct {
	issues []m.Issue
}

// List item types.
type issueItem struct {
	code     string
	location string
	message  string
}

func (i issueItem) FilterValue() string {
	return i.location + " " + i.code + " " + i.message
}
