package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/remedy/internal/model"
)

type tickMsg time.Time

// Simple delegate for issue list items.
type issueDelegate struct {
	offset int
}

func (d issueDelegate) Height() int  { return 1 }
func (d issueDelegate) Spacing() int { return 0 }
func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d issueDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	issue, ok := item.(issueItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()
	text := fmt.Sprintf("%s  %s", issue.location, issue.message)

	var codeStyle, textStyle lipgloss.Style

	var displayText string

	width := lm.Width() - 10 // Subtract code width (8) + spacing (2)

	if isSelected {
		codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(8).
			Align(lipgloss.Left)
		textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		displayText = animateScroll(text, width, d.offset)
	} else {
		codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(8).
			Align(lipgloss.Left)
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayText = truncateToWidth(text, width)
	}

	line := fmt.Sprintf("%s  %s",
		codeStyle.Render(issue.code),
		textStyle.Render(displayText),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
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
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	// Create the repeating pattern: text + gap
	// We work with runes to handle multi-byte characters correctly
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

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

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

// checkModel lists outstanding findings without touching any file.
type checkModel struct {
	width        int
	height       int
	issueList    list.Model
	delegate     issueDelegate
	total        int
	totalFiles   int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newCheckModel() checkModel {
	delegate := issueDelegate{}
	issueList := list.New([]list.Item{}, delegate, 80, 20)
	issueList.SetShowPagination(false)
	issueList.SetShowFilter(true)
	issueList.SetShowHelp(false)
	issueList.SetShowTitle(false)
	issueList.SetShowStatusBar(false)
	issueList.FilterInput.Placeholder = "Filter by location…"

	return checkModel{
		issueList:    issueList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (cm checkModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (cm checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		cm.height = msg.Height
		cm.issueList.SetWidth(cm.width)

	case tickMsg:
		if cm.issueList.FilterState() != list.Filtering && cm.rendered {
			cm.animOffset++
			cm.delegate.offset = cm.animOffset
			cm.issueList.SetDelegate(cm.delegate)

			return cm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return cm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return cm, tea.Quit
		default:
			// Pass all key events to the list
			var newList list.Model

			newList, cmd = cm.issueList.Update(msg)
			cm.issueList = newList

			// Detect selection change to reset animation
			if cm.issueList.Index() != cm.lastSelected {
				cm.lastSelected = cm.issueList.Index()
				cm.animOffset = 0
				cm.delegate.offset = 0
				cm.issueList.SetDelegate(cm.delegate)
			}

			return cm, cmd
		}

	case issuesMsg:
		cm = cm.handleIssuesMsg(msg)
	}

	return cm, cmd
}

// handleIssuesMsg keeps the linter's emission order; findings arrive already
// grouped file by file.
func (cm checkModel) handleIssuesMsg(msg issuesMsg) checkModel {
	files := make(map[string]struct{})
	items := make([]list.Item, 0, len(msg.issues))

	for _, issue := range msg.issues {
		files[issue.Filename] = struct{}{}

		items = append(items, issueItem{
			code:     issue.Code,
			location: issueLocation(issue),
			message:  issue.Message,
		})
	}

	cm.total = len(msg.issues)
	cm.totalFiles = len(files)
	cm.issueList.SetItems(items)
	cm.rendered = true

	if len(items) > 0 && cm.lastSelected == -1 {
		cm.lastSelected = 0
	}

	return cm
}

func issueLocation(issue m.Issue) string {
	return fmt.Sprintf("%s:%d:%d", issue.Filename, issue.Location.Row, issue.Location.Column)
}

func (cm checkModel) View() string {
	if !cm.rendered {
		return "Collecting issues…\n"
	}

	// Styles
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	// 1. Title
	title := titleStyle.Render("🩹 Remedy Check")

	// 2. Summary
	summary := summaryStyle.Render(fmt.Sprintf(
		"Total Issues: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", cm.total)),
		accentStyle.Render(fmt.Sprintf("%d", cm.totalFiles)),
	))

	// 3. Table with border
	table := cm.renderTable()

	// 4. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(cm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (cm checkModel) renderTable() string {
	// List sizing
	// Display calculations:
	// Screen Height
	// - Title (2)
	// - Summary (2)
	// - Footer (1)
	// - Border (2)
	// - Padding/Headers (2)
	// = Left for list
	listHeight := cm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Widths:
	// Window Width
	// - Margin (2)
	// - Border (2)
	// - Padding (2)
	// = List Width
	listWidth := cm.width - 6

	cm.issueList.SetHeight(listHeight)
	cm.issueList.SetWidth(listWidth)

	// Column Headers inside the table area
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-8s  %s", "Code", "Issue"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1). // Outer margin
		Padding(0, 1) // Inner padding

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			cm.issueList.View(),
		),
	)
}
