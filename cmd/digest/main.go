package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aitechdigest/digest/internal/config"
	"github.com/aitechdigest/digest/internal/content"
	"github.com/aitechdigest/digest/internal/outline"
	"github.com/aitechdigest/digest/internal/resources"
	"github.com/aitechdigest/digest/internal/search"
	"github.com/aitechdigest/digest/internal/server"
)

var version = "dev"

var (
	verbose    bool
	configPath string
	cfg        *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "digest",
	Short:   "Weekly AI & tech digest site engine",
	Long:    "digest parses front-matter markdown digests into a browsable, searchable, syndicated site.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		} else {
			log.SetFlags(log.LstdFlags)
		}

		// Skip config loading for init and version
		if cmd.Name() == "init" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.LoadOrDefault(configPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("digest", version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration in ~/.config/digest/",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := filepath.Join(config.ConfigDir(), "config.yaml")
		if _, err := os.Stat(target); err == nil {
			fmt.Printf("Config already exists: %s\n", target)
			return nil
		}

		if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		if err := os.WriteFile(target, config.DefaultConfigYAML, 0o644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		fmt.Printf("Created config: %s\n", target)
		fmt.Println("Edit it to point at your content directory and site URL.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus and catalog status",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts := openStore().LoadAll()
		catalog := resources.Load(cfg.Content.ResourcesPath)

		fmt.Printf("Posts directory: %s\n\n", cfg.Content.PostsDir)
		fmt.Println("Corpus:")
		fmt.Printf("  Posts: %d\n", len(posts))
		if len(posts) > 0 {
			fmt.Printf("  Newest: %s (%s)\n", posts[0].Slug, posts[0].Date)
			fmt.Printf("  Oldest: %s (%s)\n", posts[len(posts)-1].Slug, posts[len(posts)-1].Date)
		}
		fmt.Println("\nResource catalog:")
		fmt.Printf("  Categories: %d\n", catalog.Categories.Len())
		fmt.Printf("  Entries: %d\n", catalog.Categories.EntryCount())
		if catalog.LastUpdated != "" {
			fmt.Printf("  Last updated: %s\n", catalog.LastUpdated)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all digests, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		posts := openStore().LoadAll()
		if len(posts) == 0 {
			fmt.Println("No digests found. Create one with: digest new")
			return nil
		}

		for _, p := range posts {
			fmt.Printf("%-14s  %s  %2d min  %s\n", p.Slug, p.Date, p.ReadingTime, p.Title)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show one digest's metadata and outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore()
		post := store.GetBySlug(args[0])
		if post == nil {
			return fmt.Errorf("digest %q not found", args[0])
		}

		fmt.Printf("%s\n", post.Title)
		fmt.Printf("  Date: %s (week %d, %d)\n", content.FormatDate(post.Date), post.WeekNumber, post.Year)
		fmt.Printf("  Reading time: %d min\n", post.ReadingTime)
		if post.Summary != "" {
			fmt.Printf("  Summary: %s\n", post.Summary)
		}

		if len(post.TopStories) > 0 {
			fmt.Println("\nTop stories:")
			for _, s := range post.TopStories {
				fmt.Printf("  [%2d %s] %s (%s)\n",
					s.Significance, content.SignificanceLabel(s.Significance), s.Title, content.CategoryLabel(s.Category))
			}
		}

		if items := outline.Extract(post.Content); len(items) > 0 {
			fmt.Println("\nOutline:")
			for _, item := range items {
				indent := ""
				if item.Level == 3 {
					indent = "  "
				}
				fmt.Printf("  %s%s (#%s)\n", indent, item.Text, item.ID)
			}
		}

		prev, next := store.Adjacent(args[0])
		if prev != nil {
			fmt.Printf("\nNewer: %s\n", prev.Slug)
		}
		if next != nil {
			fmt.Printf("Older: %s\n", next.Slug)
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search digest titles, summaries and headlines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index := search.BuildIndex(openStore().LoadAll())
		results := search.Query(index, args[0])
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%-14s  %s  %s\n", r.Slug, r.Date, r.Title)
		}
		return nil
	},
}

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Show the curated resource catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := resources.Load(cfg.Content.ResourcesPath)
		if catalog.Categories.Len() == 0 {
			fmt.Println("No resources curated yet.")
			return nil
		}

		if catalog.LastUpdated != "" {
			fmt.Printf("Last updated: %s\n", catalog.LastUpdated)
		}
		for _, key := range catalog.Categories.Keys() {
			entries := catalog.Categories.Get(key)
			if len(entries) == 0 {
				continue
			}
			fmt.Printf("\n%s:\n", resources.CategoryLabel(key))
			for _, e := range entries {
				fmt.Printf("  %s - %s\n", e.Name, e.URL)
			}
		}
		return nil
	},
}

// --- new command ---

var newDate string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Scaffold the next weekly digest",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := content.MostRecentSunday(time.Now())
		if newDate != "" {
			parsed, err := time.Parse("2006-01-02", newDate)
			if err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", newDate)
			}
			date = parsed
		}

		path, err := openStore().WritePost(content.NewWeeklyDraft(date))
		if err != nil {
			return err
		}
		fmt.Printf("Created draft: %s\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newDate, "date", "", "Digest date (YYYY-MM-DD), defaults to the most recent Sunday")
}

// --- serve command ---

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := servePort
		if !cmd.Flags().Changed("port") && cfg.Server.Port != 0 {
			port = cfg.Server.Port
		}

		fmt.Printf("Starting server at http://localhost:%d\n", port)
		fmt.Println("Press Ctrl+C to stop")
		return server.Serve(cfg, port)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8000, "Port to run server on")
}

func openStore() *content.Store {
	return content.NewStore(cfg.Content.PostsDir)
}
