package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/brand-lab/internal/roadmap"
	"github.com/JaimeStill/brand-lab/pkg/logging"
)

var (
	titleColor   = color.New(color.FgMagenta, color.Bold)
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

var (
	pageID string
	file   string
	dryRun bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "roadmap",
		Short:        "Publish the platform roadmap to a Notion page",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&pageID, "page", "p", os.Getenv("NOTION_PAGE_ID"), "Notion page id (default $NOTION_PAGE_ID)")
	rootCmd.Flags().StringVarP(&file, "file", "f", "", "Roadmap YAML file (default embedded roadmap)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Print the Notion blocks instead of sending them")

	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	r, err := load()
	if err != nil {
		return err
	}

	blocks := r.Blocks()
	done, total := r.Progress()

	if dryRun {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"children": blocks})
	}

	titleColor.Printf("%s\n", r.Title)
	infoColor.Printf("%d phases, %d/%d items complete, %d blocks\n", len(r.Phases), done, total, len(blocks))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, os.Stderr)
	client := roadmap.NewClient(os.Getenv("NOTION_TOKEN"), logger)

	if err := client.Append(ctx, pageID, blocks); err != nil {
		return fmt.Errorf("sync roadmap: %w", err)
	}

	successColor.Printf("Roadmap published to page %s\n", pageID)
	return nil
}

func load() (*roadmap.Roadmap, error) {
	if file == "" {
		return roadmap.Default()
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read roadmap: %w", err)
	}
	return roadmap.Parse(data)
}
