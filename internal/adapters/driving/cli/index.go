package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/services"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

var (
	indexAddCategory    string
	indexSearchCategory string
	indexSearchLimit    int
	indexSearchJSON     bool
	indexWatchCategory  string
)

// Indexable file extensions for add and watch.
var indexableExtensions = map[string]bool{
	".md":  true,
	".txt": true,
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the offline document index",
	Long: `Commands for the offline document index used to ground answers when
web search is unavailable.`,
}

var indexAddCmd = &cobra.Command{
	Use:   "add [path...]",
	Short: "Index markdown or text files",
	Long: `Indexes the given files or directories. Directories are walked
recursively; only .md and .txt files are indexed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexAdd,
}

var indexSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Index the built-in sample documents",
	RunE:  runIndexSeed,
}

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the offline index",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexSearch,
}

var indexWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and index new or changed files",
	Long: `Watches a directory and indexes .md and .txt files as they are
created or written. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexWatch,
}

func init() {
	indexAddCmd.Flags().StringVarP(&indexAddCategory, "category", "c", "General", "category to file documents under")
	indexSearchCmd.Flags().StringVarP(&indexSearchCategory, "category", "c", "", "restrict results to a category")
	indexSearchCmd.Flags().IntVarP(&indexSearchLimit, "limit", "n", 5, "maximum number of results")
	indexSearchCmd.Flags().BoolVar(&indexSearchJSON, "json", false, "output results as JSON")
	indexWatchCmd.Flags().StringVarP(&indexWatchCategory, "category", "c", "General", "category to file documents under")

	indexCmd.AddCommand(indexAddCmd)
	indexCmd.AddCommand(indexSeedCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexWatchCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexAdd(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	category, err := domain.ParseCategory(indexAddCategory)
	if err != nil {
		return err
	}

	var docs []domain.IndexedDocument
	for _, path := range args {
		collected, err := collectDocuments(path, category)
		if err != nil {
			return err
		}
		docs = append(docs, collected...)
	}
	if len(docs) == 0 {
		cmd.Println("No indexable files found.")
		return nil
	}

	if err := indexService.IndexDocuments(cmd.Context(), docs); err != nil {
		return fmt.Errorf("index documents: %w", err)
	}
	cmd.Printf("Indexed %d documents.\n", len(docs))
	return nil
}

func runIndexSeed(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	docs := services.SeedDocuments()
	if err := indexService.IndexDocuments(cmd.Context(), docs); err != nil {
		return fmt.Errorf("index seed documents: %w", err)
	}
	cmd.Printf("Indexed %d sample documents.\n", len(docs))
	return nil
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	var category domain.Category
	if indexSearchCategory != "" {
		parsed, err := domain.ParseCategory(indexSearchCategory)
		if err != nil {
			return err
		}
		category = parsed
	}

	docs, err := indexService.Retrieve(cmd.Context(), args[0], category, indexSearchLimit)
	if err != nil {
		return fmt.Errorf("retrieve documents: %w", err)
	}

	if indexSearchJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	var sb strings.Builder
	renderDocuments(&sb, docs)
	cmd.Print(sb.String())
	return nil
}

func runIndexWatch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	category, err := domain.ParseCategory(indexWatchCategory)
	if err != nil {
		return err
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	cmd.Printf("Watching %s (category %s). Press Ctrl+C to stop.\n", dir, category)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !indexableExtensions[strings.ToLower(filepath.Ext(event.Name))] {
				continue
			}
			doc, err := readDocument(event.Name, category)
			if err != nil {
				logger.Warn("Skipping %s: %v", event.Name, err)
				continue
			}
			if err := indexService.IndexDocuments(ctx, []domain.IndexedDocument{doc}); err != nil {
				logger.Warn("Indexing %s failed: %v", event.Name, err)
				continue
			}
			cmd.Printf("Indexed %s\n", event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// collectDocuments reads one file, or walks a directory for
// indexable files.
func collectDocuments(path string, category domain.Category) ([]domain.IndexedDocument, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		doc, err := readDocument(path, category)
		if err != nil {
			return nil, err
		}
		return []domain.IndexedDocument{doc}, nil
	}

	var docs []domain.IndexedDocument
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !indexableExtensions[strings.ToLower(filepath.Ext(p))] {
			return nil
		}
		doc, err := readDocument(p, category)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return docs, nil
}

// readDocument loads a file as an indexed document. The filename
// (without extension) becomes the title.
func readDocument(path string, category domain.Category) (domain.IndexedDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.IndexedDocument{}, fmt.Errorf("read %s: %w", path, err)
	}

	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	return domain.IndexedDocument{
		Title:    title,
		Content:  string(content),
		Source:   path,
		Category: category,
	}, nil
}
