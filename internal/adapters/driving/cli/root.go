// Package cli implements the codexr command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/codexr-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/websearch"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driving"
	"github.com/custodia-labs/codexr-cli/internal/core/services"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagDataDir   string
	flagConfigDir string
	flagOffline   bool
)

// Services wired during PersistentPreRunE. Commands read these
// package-level vars, mirroring the cobra init pattern used across
// the codebase.
var (
	assistantService driving.AssistantService
	debugService     driving.DebugService
	indexService     driving.IndexService
	configStore      driven.ConfigStore
	documentIndex    driven.DocumentIndex
)

var rootCmd = &cobra.Command{
	Use:   "codexr",
	Short: "AR/VR coding assistant for Unity, Unreal and shader development",
	Long: `CodeXR answers AR/VR development questions with structured,
step-by-step responses: subtasks, code snippets, best practices,
gotchas and documentation links.

Queries are classified into Unity, Unreal, Shader or General, grounded
against web search and the offline document index, and validated
against the response schema before being shown.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRun: closeServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.codexr/data)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.codexr)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "skip web search providers entirely")
}

// Execute runs the root command. SIGINT and SIGTERM cancel the
// command context so long-running commands (watch, mcp serve) shut
// down cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices wires adapters into the core services. Failures in
// optional adapters degrade: a broken document index disables offline
// retrieval instead of aborting the command.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	// Already wired; tests install their own services.
	if assistantService != nil {
		return nil
	}

	store, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	configStore = store

	docIndex, err := sqlite.NewStore(flagDataDir)
	if err != nil {
		logger.Warn("Offline index unavailable, continuing without it: %v", err)
	} else {
		documentIndex = docIndex
	}

	var providers []driven.SearchProvider
	if !flagOffline {
		providers = websearch.NewChain(websearch.ConfigFromStore(configStore))
	} else {
		logger.Debug("Offline mode, no search providers")
	}

	aggregator := services.NewAggregator(providers, 0)
	grounder := services.NewGrounder(aggregator)

	assistantService = services.NewAssistant(
		services.NewClassifier(),
		services.NewSelector(),
		grounder,
		services.NewValidator(),
		documentIndex,
	)
	debugService = services.NewDebugger()
	indexService = services.NewIndexService(documentIndex)

	return nil
}

// closeServices releases adapter resources after the command ran.
func closeServices(_ *cobra.Command, _ []string) {
	if documentIndex != nil {
		if err := documentIndex.Close(); err != nil {
			logger.Warn("Closing document index: %v", err)
		}
	}
}
