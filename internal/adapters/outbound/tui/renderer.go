package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docforge/docforge/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderValidation renders a template validation result for the terminal.
func RenderValidation(result *domain.ValidationResult) string {
	var b strings.Builder

	title := headerStyle.Render("docforge")
	subtitle := dimStyle.Render("Template Validation")
	verdict := passStyle.Render("VALID")
	if !result.Valid {
		verdict = failStyle.Render("INVALID")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Sections") + "\n")
	for _, section := range domain.RequiredSections {
		if containsString(result.SectionsFound, section) {
			b.WriteString("    " + passStyle.Render("✓") + " " + section + "\n")
		} else {
			b.WriteString("    " + failStyle.Render("✗") + " " + dimStyle.Render(section) + "\n")
		}
	}

	if len(result.Errors) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Errors") + "\n")
		for _, e := range result.Errors {
			b.WriteString("    " + failStyle.Render("error") + "  " + e + "\n")
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Warnings") + "\n")
		for _, w := range result.Warnings {
			b.WriteString("    " + warnStyle.Render("warn") + "   " + w + "\n")
		}
	}

	return b.String()
}

// RenderHealth renders a health-check status for the terminal.
func RenderHealth(health *domain.HealthStatus) string {
	var b strings.Builder

	verdict := passStyle.Render("HEALTHY")
	if !health.Healthy {
		verdict = failStyle.Render("UNHEALTHY")
	}
	b.WriteString(boxStyle.Render(headerStyle.Render("docforge") + "\n" + dimStyle.Render("Health Check") + "\n\n" + verdict))
	b.WriteString("\n\n")

	renderProbe(&b, "template file", health.TemplateExists)
	renderProbe(&b, "template directory", health.TemplateDirExists)
	renderProbe(&b, "output directory", health.OutputDirExists)

	if len(health.Issues) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Issues") + "\n")
		for _, issue := range health.Issues {
			b.WriteString("    " + failStyle.Render("✗") + " " + issue + "\n")
		}
	}

	return b.String()
}

// RenderReport renders the post-generation summary for the terminal.
func RenderReport(report *domain.ValidationReport) string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Generated") + "  " + dimStyle.Render(report.OutputFile) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if report.Generated != nil {
		c := report.Generated
		renderProbe(&b, "Overview", c.HasOverview)
		renderProbe(&b, "Authentication", c.HasAuthentication)
		renderProbe(&b, "Endpoints", c.HasEndpoints)
		renderProbe(&b, "Request/Response Examples", c.HasExamples)
		renderProbe(&b, "Error Codes", c.HasErrorCodes)
		renderProbe(&b, "HTTP example block", c.HasHTTPExample)
		renderProbe(&b, "JSON example block", c.HasJSONExample)
		b.WriteString("  " + separatorLine + "\n")
		b.WriteString(fmt.Sprintf("  %s %d/%d checks  %s %d lines, %d words\n",
			titleStyle.Render("Summary"),
			report.Summary.ChecksPassed, report.Summary.ChecksTotal,
			dimStyle.Render("·"), c.LineCount, c.WordCount))
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range report.Warnings {
			b.WriteString("    " + warnStyle.Render("warn") + "   " + w + "\n")
		}
	}

	return b.String()
}

func renderProbe(b *strings.Builder, name string, ok bool) {
	if ok {
		b.WriteString("    " + passStyle.Render("✓") + " " + name + "\n")
	} else {
		b.WriteString("    " + failStyle.Render("✗") + " " + name + "\n")
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
