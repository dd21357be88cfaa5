package setup

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/create-release-it/internal/messages"
)

// DefaultDiffMaxLines caps each dry-run diff preview.
const DefaultDiffMaxLines = 60

func renderTruncatedUnifiedDiff(name string, fromContent string, toContent string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	diff := udiff.Unified("a/"+name, "b/"+name, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], fmt.Sprintf(messages.DiffTruncatedFmt, maxLines))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
