package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

// Terminal styles for rendered responses.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			PaddingLeft(2)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// renderResponse writes a structured answer as styled terminal text.
func renderResponse(sb *strings.Builder, resp *domain.Response) {
	fmt.Fprintln(sb, titleStyle.Render(fmt.Sprintf("[%s] %s", resp.Category, resp.Query)))
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, headingStyle.Render("Subtasks"))
	for i, st := range resp.SubTasks {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, st.Description)
		if st.Explanation != "" {
			fmt.Fprintf(sb, "     %s\n", labelStyle.Render(st.Explanation))
		}
		if st.CodeSnippet != "" {
			fmt.Fprintln(sb, codeStyle.Render(st.CodeSnippet))
		}
	}
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, headingStyle.Render("Code"))
	fmt.Fprintln(sb, codeStyle.Render(resp.CodeSnippet))
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, headingStyle.Render("Best Practices"))
	for _, p := range resp.BestPractices {
		fmt.Fprintf(sb, "  - %s\n", p)
	}
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, headingStyle.Render("Gotchas"))
	for _, g := range resp.Gotchas {
		fmt.Fprintf(sb, "  - %s\n", warnStyle.Render(g))
	}
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, headingStyle.Render("Documentation"))
	for _, link := range resp.DocumentationLinks {
		fmt.Fprintf(sb, "  %s\n", link)
	}
	fmt.Fprintln(sb)

	fmt.Fprintf(sb, "%s %d/5    %s %s\n",
		labelStyle.Render("Difficulty:"), resp.DifficultyRating,
		labelStyle.Render("Estimated time:"), resp.EstimatedTime)
}

// renderDiagnosis writes an error diagnosis as styled terminal text.
func renderDiagnosis(sb *strings.Builder, diag domain.ErrorDiagnosis) {
	fmt.Fprintln(sb, titleStyle.Render("Error: "+diag.ErrorType))
	fmt.Fprintln(sb)

	fmt.Fprintln(sb, headingStyle.Render("Analysis"))
	fmt.Fprintf(sb, "  %s\n\n", diag.Analysis)

	fmt.Fprintln(sb, headingStyle.Render("Fix"))
	fmt.Fprintf(sb, "  %s\n", diag.Fix)
	if diag.CodeFix != "" {
		fmt.Fprintln(sb, codeStyle.Render(diag.CodeFix))
	}
	fmt.Fprintln(sb)

	if len(diag.PreventionTips) > 0 {
		fmt.Fprintln(sb, headingStyle.Render("Prevention"))
		for _, tip := range diag.PreventionTips {
			fmt.Fprintf(sb, "  - %s\n", tip)
		}
	}
}

// renderDocuments writes offline retrieval results as a compact list.
func renderDocuments(sb *strings.Builder, docs []domain.IndexedDocument) {
	if len(docs) == 0 {
		fmt.Fprintln(sb, "No matching documents.")
		return
	}
	for i, doc := range docs {
		fmt.Fprintf(sb, "  [%d] %s\n", i+1, titleStyle.Render(doc.Title))
		fmt.Fprintf(sb, "      %s\n", labelStyle.Render(fmt.Sprintf("%s | %s | similarity %.2f", doc.Category, doc.Source, doc.Similarity)))
		if doc.URL != "" {
			fmt.Fprintf(sb, "      %s\n", doc.URL)
		}
		snippet := doc.Content
		if len(snippet) > 160 {
			snippet = snippet[:160] + "..."
		}
		fmt.Fprintf(sb, "      %s\n", snippet)
	}
}
