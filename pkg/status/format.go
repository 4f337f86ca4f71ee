package status

import (
	"fmt"

	"github.com/walteh/scaffoldrc/pkg/scaffold"
)

// FileFormatter defines how scaffold results and run summaries should be formatted
type FileFormatter interface {
	// FormatResult formats the outcome for one scaffold file
	FormatResult(res scaffold.Result) string

	// FormatSummary formats the totals for a run
	FormatSummary(applied, skipped int) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatResult formats a scaffold result with emojis
func (f *DefaultFileFormatter) FormatResult(res scaffold.Result) string {
	path := ""
	if res.Destination() != nil {
		path = res.Destination().RelativePath()
	}
	if res.Applied() {
		return fmt.Sprintf("✨ Scaffolded %s", path)
	}
	return fmt.Sprintf("👍 Kept %s", path)
}

// FormatSummary formats the run totals
func (f *DefaultFileFormatter) FormatSummary(applied, skipped int) string {
	total := applied + skipped
	noun := "files"
	if total == 1 {
		noun = "file"
	}
	return fmt.Sprintf("Scaffolded %d of %d %s (%d skipped)", applied, total, noun, skipped)
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats a failed run for the console
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}
