package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/remedy/internal/model"
)

// fixResult holds information about a completed remediation attempt.
type fixResult struct {
	file    string
	code    string
	status  string
	message string
	diff    string
}

// Implement list.Item interface for fixResult.
func (r fixResult) FilterValue() string {
	return r.file + " " + r.code + " " + r.status + " " + r.message
}

// fixResultDelegate is the delegate for rendering fix results in the list.
type fixResultDelegate struct {
	offset int
}

func (d fixResultDelegate) Height() int  { return 1 }
func (d fixResultDelegate) Spacing() int { return 0 }
func (d fixResultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fixResultDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	result, ok := item.(fixResult)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	fileWidth := lm.Width() - 31 // Reserve space for Status and Code columns and spacing

	statusStyle, codeStyle, fileStyle, displayFile := d.getStylesAndFile(result, isSelected, fileWidth)

	line := fmt.Sprintf("%s  %s  %s",
		statusStyle.Render(fmt.Sprintf("%-11s", result.status)),
		codeStyle.Render(fmt.Sprintf("%-10s", result.code)),
		fileStyle.Render(displayFile),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d fixResultDelegate) getStylesAndFile(result fixResult, isSelected bool, fileWidth int) (lipgloss.Style, lipgloss.Style, lipgloss.Style, string) {
	text := result.file
	if result.message != "" {
		text = fmt.Sprintf("%s  %s", result.file, result.message)
	}

	if isSelected {
		return lipgloss.NewStyle().
					Foreground(lipgloss.Color("0")).
					Background(lipgloss.Color("6")).
					Bold(true).
					Width(13).
					Align(lipgloss.Left),
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Width(12).
				Align(lipgloss.Left),
			lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true),
			animateScrollFile(text, fileWidth, d.offset)
	}

	statusColorMap := map[string]lipgloss.Color{
		"fixed":       lipgloss.Color("2"), // Green
		"failed":      lipgloss.Color("1"), // Red
		"read error":  lipgloss.Color("1"), // Red
		"write error": lipgloss.Color("1"), // Red
	}

	statusColor, ok := statusColorMap[result.status]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().
				Foreground(statusColor).
				Bold(true).
				Width(13).
				Align(lipgloss.Left),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(12).
			Align(lipgloss.Left),
		lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")),
		truncateFile(text, fileWidth)
}

// fixModel handles the TUI display during a remediation run.
type fixModel struct {
	width            int
	height           int
	progressBar      progress.Model
	totalIssues      int
	totalFiles       int
	completedCount   int
	completedFiles   int
	progressPercent  float64
	workers          int
	activeFiles      map[string]string // Maps filename to the issue currently being fixed
	activeOrder      []string          // Render order for in-flight files
	fileIssueCounts  map[string]int
	rendered         bool
	fixingFinished   bool
	applied          int
	failed           int
	duration         time.Duration
	results          []fixResult
	resultsList      list.Model
	delegate         fixResultDelegate
	animOffset       int
	lastSelected     int
	showDiff         bool
	selectedDiff     string
	selectedDiffPath string
}

func newFixModel() fixModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := fixResultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return fixModel{
		progressBar:     prog,
		resultsList:     resultsList,
		delegate:        delegate,
		activeFiles:     make(map[string]string),
		fileIssueCounts: make(map[string]int),
		lastSelected:    -1,
	}
}

func (fm fixModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (fm fixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm = fm.handleWindowSize(msg)

	case tea.KeyMsg:
		fm, cmd = fm.handleKeyMsg(msg)

	case tea.MouseMsg:
		fm, cmd = fm.handleMouseMsg(msg)

	case tickMsg:
		return fm.handleTickMsg(msg)

	case concurrencyMsg:
		fm.totalFiles = msg.files
		fm.totalIssues = msg.issues
		fm.workers = msg.workers
		fm.progressPercent = 0

	case fileStartMsg:
		fm = fm.handleFileStart(msg)

	case fixStartMsg:
		fm = fm.handleFixStart(msg)

	case fixDoneMsg:
		fm = fm.handleFixDone(msg)

	case fileDoneMsg:
		fm = fm.handleFileDone(msg)

	case summaryMsg:
		fm = fm.handleSummary(msg)

	case issuesMsg:
		// Shouldn't happen in fix mode, but handle gracefully
	}

	return fm, cmd
}

func (fm fixModel) View() string {
	if !fm.rendered {
		return "Initializing fix run…\n"
	}

	if fm.fixingFinished {
		return fm.viewResults()
	}

	return fm.viewProgress()
}

func (fm fixModel) viewProgress() string {
	accentColor := lipgloss.Color("6") // Cyan

	// Styles
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor) // Cyan

	// 1. Title
	title := titleStyle.Render("🩹 Remedy Fix")

	// 2. Summary with metadata
	summary := summaryStyle.Render(fmt.Sprintf(
		"Issues: %s / %s  •  Files: %s / %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", fm.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", fm.totalIssues)),
		accentStyle.Render(fmt.Sprintf("%d", fm.completedFiles)),
		accentStyle.Render(fmt.Sprintf("%d", fm.totalFiles)),
		accentStyle.Render(fm.workersLabel()),
	))

	// 3. Progress Bar
	progressStyle := lipgloss.NewStyle().
		Padding(0, 2)

	progressView := progressStyle.Render(fm.progressBar.ViewAs(fm.progressPercent))

	// 4. Active Files Section
	filesBox := fm.renderFilesBox(accentColor)

	// 5. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(fm.width).
		Padding(0, 0)

	footer := footerStyle.Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		filesBox,
		footer,
	)
}

func (fm fixModel) workersLabel() string {
	if fm.workers > 0 {
		return fmt.Sprintf("%d", fm.workers)
	}

	return "per-file"
}

func (fm fixModel) renderFilesBox(accentColor lipgloss.Color) string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1). // Compact padding
		Margin(1, 1, 1, 0).
		Width(fm.width - 4) // Constrain width

	fileStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	issueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	// Calculate max width for one line:
	// Width - Border(2) - Padding(2)
	availableWidth := fm.width - 4 - 2 - 2

	fileLines := make([]string, 0, len(fm.activeOrder))

	for _, filename := range fm.activeOrder {
		issue := fm.activeFiles[filename]
		if issue == "" {
			issue = "reading"
		}

		// Give the filename at most half the line, the issue text the rest
		fileWidth := availableWidth / 2
		if fileWidth < 10 {
			fileWidth = 10
		}

		displayFile := truncateFile(filename, fileWidth)

		issueWidth := availableWidth - lipgloss.Width(displayFile) - 2
		if issueWidth < 10 {
			issueWidth = 10
		}

		fileLines = append(fileLines, fmt.Sprintf("%s  %s",
			fileStyle.Render(displayFile),
			issueStyle.Render(truncateFile(issue, issueWidth)),
		))
	}

	if len(fileLines) == 0 {
		fileLines = append(fileLines, "idle")
	}

	filesContent := lipgloss.JoinVertical(lipgloss.Left, fileLines...)

	return contentStyle.Render(filesContent)
}

func (fm fixModel) viewResults() string {
	accentColor := lipgloss.Color("6") // Cyan

	// Styles
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	// 1. Title
	title := titleStyle.Render("🩹 Remedy Fix Results")

	// 2. Summary
	summary := summaryStyle.Render(fmt.Sprintf(
		"Total: %s  •  Fixed: %s  •  Failed: %s  •  Took: %s",
		accentStyle.Render(fmt.Sprintf("%d", fm.applied+fm.failed)),
		accentStyle.Render(fmt.Sprintf("%d", fm.applied)),
		accentStyle.Render(fmt.Sprintf("%d", fm.failed)),
		accentStyle.Render(fm.duration.Round(timeRounding).String()),
	))

	// 3. Results table with list
	resultsBox := fm.renderResultsBox(accentColor)

	// 4. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(fm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter/space/click diff • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		resultsBox,
		footer,
	)
}

func (fm fixModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := fm.width - 4
	diffBoxHeight := fm.diffBoxHeight()

	listHeight := fm.height - 9 - diffBoxHeight
	if listHeight < 5 {
		listHeight = 5
	}

	fm.resultsList.SetHeight(listHeight)
	fm.resultsList.SetWidth(listWidth)

	// Column Headers
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-13s  %-12s  %s", "Status", "Code", "File"))

	resultsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	resultsBox := resultsStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			fm.resultsList.View(),
		),
	)

	diffBox, _ := fm.renderDiffBox(accentColor, listWidth)
	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func animateScrollFile(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateFile(text, width)
	}

	effectiveStep := offset - pause

	// Create the repeating pattern: text + gap
	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	// Construct the window
	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateFile(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func (fm fixModel) handleFileStart(msg fileStartMsg) fixModel {
	if _, ok := fm.activeFiles[msg.filename]; !ok {
		fm.activeOrder = append(fm.activeOrder, msg.filename)
	}

	fm.activeFiles[msg.filename] = ""
	fm.fileIssueCounts[msg.filename] = msg.issues
	fm.rendered = true

	return fm
}

func (fm fixModel) handleFixStart(msg fixStartMsg) fixModel {
	fm.activeFiles[msg.filename] = fmt.Sprintf("%s %s", msg.code, msg.message)
	fm.rendered = true

	return fm
}

func (fm fixModel) handleFixDone(msg fixDoneMsg) fixModel {
	fm.completedCount++

	result := fixResult{
		file:    msg.filename,
		code:    msg.code,
		status:  msg.status,
		message: msg.message,
		diff:    msg.diff,
	}
	fm.results = append(fm.results, result)
	fm.refreshResultItems()

	if fm.totalIssues > 0 {
		fm.progressPercent = float64(fm.completedCount) / float64(fm.totalIssues)
	}

	return fm
}

func (fm fixModel) handleFileDone(msg fileDoneMsg) fixModel {
	filename := msg.report.Filename

	fm.completedFiles++
	delete(fm.activeFiles, filename)

	for i, name := range fm.activeOrder {
		if name == filename {
			fm.activeOrder = append(fm.activeOrder[:i], fm.activeOrder[i+1:]...)

			break
		}
	}

	// Account for issues the unit never attempted after a read failure
	if skipped := fm.fileIssueCounts[filename] - len(msg.report.Fixes); skipped > 0 {
		fm.completedCount += skipped
		if fm.totalIssues > 0 {
			fm.progressPercent = float64(fm.completedCount) / float64(fm.totalIssues)
		}
	}

	if msg.report.Status == m.FileReadFailed || msg.report.Status == m.FileWriteFailed {
		fm.results = append(fm.results, fixResult{
			file:    filename,
			code:    "-",
			status:  fileStatusLabel(msg.report),
			message: msg.report.Err,
		})
		fm.refreshResultItems()
	}

	return fm
}

func (fm fixModel) handleSummary(msg summaryMsg) fixModel {
	fm.applied = msg.run.Applied()
	fm.failed = msg.run.Failed()
	fm.duration = msg.run.Duration
	fm.totalFiles = len(msg.run.Files)
	fm.fixingFinished = true
	fm.rendered = true

	return fm
}

func (fm *fixModel) refreshResultItems() {
	items := make([]list.Item, 0, len(fm.results))

	for _, r := range fm.results {
		items = append(items, r)
	}

	fm.resultsList.SetItems(items)
}

//nolint:cyclop,exhaustive,dupl // Key handling requires multiple cases for UI navigation
func (fm fixModel) handleKeyMsg(msg tea.KeyMsg) (fixModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return fm, tea.Quit
	default:
		if fm.fixingFinished {
			if msg.String() == "enter" || msg.String() == " " {
				fm.toggleSelectedDiff()
				return fm, nil
			}

			var newList list.Model

			newList, cmd = fm.resultsList.Update(msg)
			fm.resultsList = newList

			// Detect selection change to reset animation
			if fm.resultsList.Index() != fm.lastSelected {
				fm.lastSelected = fm.resultsList.Index()
				fm.animOffset = 0
				fm.delegate.offset = 0
				fm.resultsList.SetDelegate(fm.delegate)
				fm.showDiff = false
				fm.selectedDiff = ""
				fm.selectedDiffPath = ""
			}

			return fm, cmd
		}
	}

	return fm, nil
}

func (fm fixModel) handleMouseMsg(msg tea.MouseMsg) (fixModel, tea.Cmd) {
	var cmd tea.Cmd

	if !fm.fixingFinished {
		return fm, nil
	}

	var newList list.Model

	newList, cmd = fm.resultsList.Update(msg)
	fm.resultsList = newList

	if fm.resultsList.Index() != fm.lastSelected {
		fm.lastSelected = fm.resultsList.Index()
		fm.animOffset = 0
		fm.delegate.offset = 0
		fm.resultsList.SetDelegate(fm.delegate)
		fm.showDiff = false
		fm.selectedDiff = ""
		fm.selectedDiffPath = ""
	}

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && fm.resultsList.FilterState() != list.Filtering {
		fm.toggleSelectedDiff()
	}

	return fm, cmd
}

func (fm *fixModel) toggleSelectedDiff() {
	item := fm.resultsList.SelectedItem()

	result, ok := item.(fixResult)
	if !ok {
		return
	}

	diff := strings.TrimSpace(result.diff)
	if diff == "" {
		fm.showDiff = false
		fm.selectedDiff = ""

		return
	}

	if fm.showDiff && fm.selectedDiff == diff {
		fm.showDiff = false
		fm.selectedDiff = ""
		fm.selectedDiffPath = ""

		return
	}

	fm.showDiff = true
	fm.selectedDiff = diff
	fm.selectedDiffPath = result.file
}

func (fm fixModel) diffMaxLines() int {
	maxLines := fm.height / 3
	if maxLines < 6 {
		maxLines = 6
	}

	if maxLines > 20 {
		maxLines = 20
	}

	return maxLines
}

func (fm fixModel) diffBoxHeight() int {
	if !fm.showDiff {
		return 0
	}

	diff := strings.TrimSpace(fm.selectedDiff)
	if diff == "" {
		return 0
	}

	lines := strings.Split(diff, "\n")

	maxLines := fm.diffMaxLines()
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return len(lines) + 3
}

func (fm fixModel) renderDiffBox(accentColor lipgloss.Color, width int) (string, int) {
	if !fm.showDiff {
		return "", 0
	}

	diff := strings.TrimSpace(fm.selectedDiff)
	if diff == "" {
		return "", 0
	}

	lines := strings.Split(diff, "\n")
	maxLines := fm.diffMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDiffLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, truncateFile("…", contentWidth))
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true)

	headerText := "Diff"
	if fm.selectedDiffPath != "" {
		headerText = fmt.Sprintf("Diff • %s", fm.selectedDiffPath)
	}

	header := headerStyle.Render(truncateFile(headerText, contentWidth))

	body := lipgloss.JoinVertical(lipgloss.Left, bodyLines...)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))

	return box, lipgloss.Height(box)
}

func renderDiffLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case trimmed == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return style.Render(truncateFile(line, width))
}

func (fm fixModel) handleWindowSize(msg tea.WindowSizeMsg) fixModel {
	fm.width = msg.Width
	fm.height = msg.Height

	fm.progressBar.Width = fm.width - 8
	if fm.progressBar.Width < 20 {
		fm.progressBar.Width = 20
	}

	return fm
}

func (fm fixModel) handleTickMsg(_ tickMsg) (fixModel, tea.Cmd) {
	// Keep the UI responsive
	if fm.fixingFinished && fm.resultsList.FilterState() != list.Filtering {
		fm.animOffset++
		fm.delegate.offset = fm.animOffset
		fm.resultsList.SetDelegate(fm.delegate)
	}

	return fm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
