package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"employeehub/models"
	"employeehub/search"
	"employeehub/service"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <prompt>",
	Short: "Run one natural-language search and print the result as JSON",
	Long: `Run the search pipeline once against the configured database and model.

The output has the same shape as the POST /api/search response. The command
exits with a non-zero status when the search fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("explain", false, "include the executed SQL in the output")
}

func runSearch(cmd *cobra.Command, args []string) error {
	explain, _ := cmd.Flags().GetBool("explain")

	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return fmt.Errorf("prompt cannot be empty")
	}

	database, err := service.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	pipeline, aiService, err := newPipeline(cfg, database)
	if err != nil {
		return err
	}
	defer aiService.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Search.Timeout)
	defer cancel()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	result, err := pipeline.Search(ctx, prompt)
	if err != nil {
		_ = enc.Encode(models.SearchErrorResponse{Success: false, Error: err.Error(), Type: search.ErrorType(err)})
		return err
	}

	resp := models.SearchResponse{
		Success: true,
		Query:   prompt,
		Count:   len(result.Rows),
		Results: result.Rows,
	}
	if explain {
		resp.GeneratedSQL = result.SQL
	}
	return enc.Encode(resp)
}
