package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	debugContext string
	debugJSON    bool
)

var debugCmd = &cobra.Command{
	Use:   "debug [error log]",
	Short: "Diagnose a runtime error log",
	Long: `Matches an error log against known AR/VR failure signatures and
returns an analysis, a fix with code, and prevention tips. Unmatched
logs return generic debugging guidance.

Examples:
  codexr debug "NullReferenceException: TeleportationProvider not assigned"
  codexr debug --context "XR Rig setup" "MissingComponentException: XROrigin"`,
	Args: cobra.ExactArgs(1),
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().StringVar(&debugContext, "context", "", "extra context about what the code was doing")
	debugCmd.Flags().BoolVar(&debugJSON, "json", false, "output the diagnosis as JSON")
	rootCmd.AddCommand(debugCmd)
}

func runDebug(cmd *cobra.Command, args []string) error {
	if debugService == nil {
		return errors.New("debug service not configured")
	}

	diag := debugService.Diagnose(args[0], debugContext)

	if debugJSON {
		data, err := json.MarshalIndent(diag, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal diagnosis: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	var sb strings.Builder
	renderDiagnosis(&sb, diag)
	cmd.Print(sb.String())
	return nil
}
