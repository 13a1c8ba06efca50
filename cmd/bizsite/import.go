package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/supermodeltools/bizsite/internal/bizsite/loader"
	"github.com/supermodeltools/bizsite/internal/bizsite/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a content model and save it to the database",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List websites saved in the database",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	site, err := loader.New(args[0], loader.Options{PostsDir: cfg.Paths.Posts, Logger: logger}).Load()
	if err != nil {
		return err
	}

	st, err := store.NewSQLiteStore(cfg.Paths.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.Save(cmd.Context(), site)
	if err != nil {
		return err
	}
	logger.Info("Saved website", "id", saved.ID, "business", saved.BusinessName, "db", cfg.Paths.Database)
	fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	st, err := store.NewSQLiteStore(cfg.Paths.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	sites, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBUSINESS\tUPDATED")
	for _, s := range sites {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.BusinessName, s.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
