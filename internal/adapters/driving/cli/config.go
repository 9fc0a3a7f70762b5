package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// configKeys maps provider names to their config store keys.
var configKeys = map[string]string{
	"serpapi": "search.serpapi_api_key",
	"bing":    "search.bing_api_key",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View configuration and store search provider API keys.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [provider]",
	Short: "Store an API key for a search provider",
	Long: `Stores an API key for a web search provider. The key is read from
the terminal without echo.

Supported providers: serpapi, bing.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Search Providers")
	cmd.Println("----------------")
	for _, provider := range []string{"serpapi", "bing"} {
		key := configStore.GetString(configKeys[provider])
		if key == "" {
			cmd.Printf("  %-10s (not set)\n", provider)
			continue
		}
		cmd.Printf("  %-10s %s\n", provider, maskAPIKey(key))
	}
	cmd.Printf("  %-10s (no key required)\n", "duckduckgo")
	return nil
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	provider := strings.ToLower(args[0])
	key, ok := configKeys[provider]
	if !ok {
		return fmt.Errorf("unknown provider %q (supported: serpapi, bing)", provider)
	}

	cmd.Printf("Enter API key for %s: ", provider)
	value := readPassword()
	cmd.Println()
	if value == "" {
		return errors.New("API key must not be empty")
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("store API key: %w", err)
	}
	cmd.Printf("Stored API key for %s.\n", provider)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the key without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
