package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supermodeltools/bizsite/internal/bizsite/deploy"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the website into the output directory",
	RunE:  runBuild,
}

var (
	buildSource siteSource
	buildOut    string
	buildClean  bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildSource.input, "input", "i", "", "Website content model (JSON or YAML)")
	buildCmd.Flags().StringVar(&buildSource.id, "id", "", "Build a website saved in the database")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory (default paths.output)")
	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "Remove the output directory first")
	buildCmd.MarkFlagsMutuallyExclusive("input", "id")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	files, err := buildSource.export(cmd.Context(), nil)
	if err != nil {
		return err
	}

	out := buildOut
	if out == "" {
		out = cfg.Paths.Output
	}
	d := &deploy.DirDeployer{Dir: out, Clean: buildClean || cfg.Build.Clean, Logger: logger}
	res, err := d.Deploy(cmd.Context(), files)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files (%d bytes) to %s\n", res.Files, res.Bytes, res.Location)
	return nil
}
