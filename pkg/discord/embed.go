package discord

import (
	"fmt"
	"strings"

	"admintools/internal/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	colorClean   = 0x57F287
	colorMissing = 0xED4245
	embedTitle   = "🔎 Translation audit"

	// Discord rejects embed descriptions longer than this.
	maxDescription = 4096
)

func formatNamespaces(namespaces []string) string {
	if len(namespaces) == 0 {
		return "-"
	}
	return strings.Join(namespaces, ", ")
}

func buildMissingDescription(report *entities.AuditReport) string {
	if report.MissingCount() == 0 {
		return "✅ No missing translation keys"
	}
	var b strings.Builder
	for _, ns := range report.SortedMissingNamespaces() {
		b.WriteString(fmt.Sprintf("**%s**\n", ns))
		for _, key := range report.MissingKeys[ns] {
			b.WriteString(fmt.Sprintf("- `%s`\n", key))
		}
	}
	return truncate(strings.TrimRight(b.String(), "\n"), maxDescription)
}

// BuildAuditEmbed builds the summary embed posted after an audit run.
func BuildAuditEmbed(report *entities.AuditReport) *discordgo.MessageEmbed {
	color := colorClean
	if report.MissingCount() > 0 {
		color = colorMissing
	}
	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: buildMissingDescription(report),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Pages", Value: fmt.Sprintf("%d", report.TotalPages), Inline: true},
			{Name: "Namespaces", Value: fmt.Sprintf("%d", report.TotalNamespaces), Inline: true},
			{Name: "Missing keys", Value: fmt.Sprintf("%d", report.MissingCount()), Inline: true},
			{Name: "Naming inconsistencies", Value: fmt.Sprintf("%d", len(report.Inconsistencies)), Inline: true},
			{Name: "Namespace list", Value: truncate(formatNamespaces(report.Namespaces), 1024)},
		},
		Timestamp: report.Timestamp,
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
