package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// RuleRef is the slice of a rule needed to list it in the guideline
// reference. It keeps this package free of policy imports.
type RuleRef struct {
	ID       string
	Severity Severity
	Message  string
}

// GenerateReferenceMarkdown produces a browsable markdown document describing
// every category and the rules registered against it.
func GenerateReferenceMarkdown(infos []GuidelineInfo, rules map[Category][]RuleRef) string {
	var sb strings.Builder

	sb.WriteString("# Compliance Guideline Reference\n\n")
	sb.WriteString("> Auto-generated from the rule catalog. Do not edit manually.\n\n")

	for _, info := range infos {
		sb.WriteString(fmt.Sprintf("## %s %s (`%s`)\n\n", info.Icon, info.Name, info.ID))
		if info.Description != "" {
			sb.WriteString(info.Description + "\n\n")
		}
		if len(info.ApplicableSectors) > 0 {
			sb.WriteString(fmt.Sprintf("**Sectors:** %s\n\n", strings.Join(info.ApplicableSectors, ", ")))
		}
		if len(info.KeyRequirements) > 0 {
			sb.WriteString("**Key requirements:**\n\n")
			for _, req := range info.KeyRequirements {
				sb.WriteString(fmt.Sprintf("- %s\n", req))
			}
			sb.WriteString("\n")
		}

		refs := append([]RuleRef(nil), rules[info.ID]...)
		if len(refs) == 0 {
			sb.WriteString("_No rules registered._\n\n")
			continue
		}

		// Most severe first, then by ID for stable output.
		sort.SliceStable(refs, func(i, j int) bool {
			if refs[i].Severity.Rank() != refs[j].Severity.Rank() {
				return refs[i].Severity.Rank() > refs[j].Severity.Rank()
			}
			return refs[i].ID < refs[j].ID
		})

		sb.WriteString("| Rule | Severity | Message |\n|---|---|---|\n")
		for _, r := range refs {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n", r.ID, r.Severity, escapeCell(r.Message)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
