package domain

import (
	"fmt"
	"strings"
	"time"
)

// Placement selects where the generation metadata block is inserted.
type Placement string

const (
	// PlacementAfterTitle inserts the block immediately after the first
	// top-level "# " title line.
	PlacementAfterTitle Placement = "after-title"
	// PlacementAppend appends the block at the end of the document.
	PlacementAppend Placement = "append"
)

// ValidPlacements enumerates all recognized placement values.
var ValidPlacements = []Placement{PlacementAfterTitle, PlacementAppend}

// DefaultVersion is stamped into documents when no version is configured.
const DefaultVersion = "1.0.0"

// Metadata describes the generation stamp injected into a document.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
	Commit      string    `json:"commit,omitempty"`
	Placement   Placement `json:"placement"`
}

// Block renders the metadata as an HTML comment so it never perturbs
// Markdown rendering of the generated document.
func (m Metadata) Block() string {
	version := m.Version
	if version == "" {
		version = DefaultVersion
	}
	stamp := fmt.Sprintf("<!-- Generated on %s by docforge v%s", m.GeneratedAt.Format(time.RFC3339), version)
	if m.Commit != "" {
		stamp += fmt.Sprintf(" (commit %s)", shortHash(m.Commit))
	}
	return stamp + " -->"
}

// Inject returns the document content with the metadata block inserted
// according to m.Placement. With PlacementAfterTitle the block follows the
// first "# " title line outside any fenced code block; a document without a
// title falls back to append.
func (m Metadata) Inject(content string) string {
	block := m.Block()

	if m.Placement == PlacementAfterTitle {
		lines := strings.Split(content, "\n")
		inFence := false
		for i, line := range lines {
			if strings.HasPrefix(line, "```") {
				inFence = !inFence
				continue
			}
			// A "# " inside a fenced block is code, not the title.
			if inFence || !strings.HasPrefix(line, "# ") {
				continue
			}
			var b strings.Builder
			b.WriteString(strings.Join(lines[:i+1], "\n"))
			b.WriteString("\n\n" + block)
			if i+1 < len(lines) {
				b.WriteString("\n" + strings.Join(lines[i+1:], "\n"))
			}
			return b.String()
		}
	}

	return strings.TrimRight(content, "\n") + "\n\n---\n\n" + block + "\n"
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
