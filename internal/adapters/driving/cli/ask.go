package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
)

var (
	askCategory string
	askBackend  string
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask an AR/VR development question",
	Long: `Answers a development question with a structured response:
subtasks, a code snippet, best practices, gotchas and documentation
links.

The query is classified automatically unless --category is given.

Examples:
  codexr ask "How to set up VR teleportation in Unity?"
  codexr ask --category Shader "Occlusion shader for mobile AR"
  codexr ask --json "Multiplayer setup in Unreal for VR"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askCategory, "category", "c", "", "category hint (Unity, Unreal, Shader, General)")
	askCmd.Flags().StringVarP(&askBackend, "backend", "b", "", "search backend preference recorded with the request")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the response as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	req := domain.QueryRequest{
		Query:   args[0],
		Backend: askBackend,
	}
	if askCategory != "" {
		category, err := domain.ParseCategory(askCategory)
		if err != nil {
			return err
		}
		req.Category = category
	}

	resp, err := assistantService.Answer(cmd.Context(), req)
	if err != nil {
		var perr *domain.PipelineError
		if errors.As(err, &perr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", perr.Code, perr.Message)
			for _, s := range perr.Suggestions {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", s)
			}
		}
		return err
	}

	if askJSON {
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	var sb strings.Builder
	renderResponse(&sb, resp)
	cmd.Print(sb.String())
	return nil
}
