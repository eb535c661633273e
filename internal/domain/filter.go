package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/mouse-blink/remedy/internal/model"
)

type ignoreRule struct {
	all   bool
	codes map[string]struct{}
}

func (r ignoreRule) ignores(code string) bool {
	if r.all {
		return true
	}

	if len(r.codes) == 0 {
		return false
	}

	_, ok := r.codes[strings.ToLower(code)]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.codes = nil

		return
	}

	if dst.all || len(src.codes) == 0 {
		return
	}

	if dst.codes == nil {
		dst.codes = make(map[string]struct{}, len(src.codes))
	}

	for code := range src.codes {
		dst.codes[code] = struct{}{}
	}
}

// parseIgnoreValue turns one flag value ("E501", "e501,f401", "*") into a
// rule. A bare "*" suppresses everything.
func parseIgnoreValue(value string) ignoreRule {
	value = strings.TrimSpace(value)
	if value == "*" {
		return ignoreRule{all: true}
	}

	parts := strings.Split(value, ",")
	rule := ignoreRule{codes: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		code := strings.ToLower(strings.TrimSpace(part))
		if code == "" {
			continue
		}

		rule.codes[code] = struct{}{}
	}

	return rule
}

// IssueFilter drops findings before grouping, driven by explicit CLI flags:
// filename regexes and issue codes. An empty filter passes everything
// through untouched.
type IssueFilter struct {
	exclude []*regexp.Regexp
	rule    ignoreRule
}

// NewIssueFilter compiles exclude patterns and merges ignore-code values
// into a single filter. A malformed pattern is a configuration error and
// fails the run before any remediation starts.
func NewIssueFilter(excludePatterns []string, ignoreCodes []string) (*IssueFilter, error) {
	filter := &IssueFilter{}

	for _, pattern := range excludePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		filter.exclude = append(filter.exclude, re)
	}

	for _, value := range ignoreCodes {
		mergeIgnoreRule(&filter.rule, parseIgnoreValue(value))
	}

	return filter, nil
}

// Apply returns the issues that survive the filter, preserving order.
func (f *IssueFilter) Apply(issues []m.Issue) []m.Issue {
	if len(f.exclude) == 0 && !f.rule.all && len(f.rule.codes) == 0 {
		return issues
	}

	kept := make([]m.Issue, 0, len(issues))

	for _, issue := range issues {
		if f.rule.ignores(issue.Code) || f.excludes(issue.Filename) {
			continue
		}

		kept = append(kept, issue)
	}

	return kept
}

func (f *IssueFilter) excludes(filename string) bool {
	for _, re := range f.exclude {
		if re.MatchString(filename) {
			return true
		}
	}

	return false
}
