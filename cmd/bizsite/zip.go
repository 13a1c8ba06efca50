package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supermodeltools/bizsite/internal/bizsite/archive"
)

var zipCmd = &cobra.Command{
	Use:   "zip",
	Short: "Export the website as a zip archive",
	RunE:  runZip,
}

var (
	zipSource siteSource
	zipOut    string
)

func init() {
	zipCmd.Flags().StringVarP(&zipSource.input, "input", "i", "", "Website content model (JSON or YAML)")
	zipCmd.Flags().StringVar(&zipSource.id, "id", "", "Archive a website saved in the database")
	zipCmd.Flags().StringVarP(&zipOut, "out", "o", "site.zip", "Archive path")
	zipCmd.MarkFlagsMutuallyExclusive("input", "id")

	rootCmd.AddCommand(zipCmd)
}

func runZip(cmd *cobra.Command, _ []string) error {
	files, err := zipSource.export(cmd.Context(), nil)
	if err != nil {
		return err
	}
	data, err := archive.ToZip(files)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	if err := os.WriteFile(zipOut, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", zipOut, err)
	}
	logger.Info("Wrote archive", "path", zipOut, "files", len(files), "bytes", len(data))
	return nil
}
