package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deepdive/internal/progress"
	"github.com/ziadkadry99/deepdive/internal/site"
)

var (
	exportApp   string
	exportOut   string
	exportServe bool
	exportPort  int
	exportOpen  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a tutorial as a static HTML site",
	Long: `Renders every tab of a tutorial into static HTML pages with a search index.
Interactive panels are replaced by a note pointing at the live dashboard.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, _ := newRegistry()
		app, err := registry.Lookup(exportApp)
		if err != nil {
			return err
		}

		outDir := exportOut
		if outDir == "" {
			outDir = filepath.Join("site", app.ID)
		}

		gen := site.NewSiteGenerator(app, outDir, progress.NewReporter("Exporting pages"))
		count, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("exporting %s: %w", app.ID, err)
		}
		fmt.Printf("Exported %d pages to %s\n", count, outDir)

		if exportServe {
			return site.Serve(outDir, exportPort, exportOpen)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportApp, "app", "", "tutorial to export (mcp or agents)")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output directory (default site/<app>)")
	exportCmd.Flags().BoolVar(&exportServe, "serve", false, "serve the export after writing it")
	exportCmd.Flags().IntVar(&exportPort, "port", 8080, "port for --serve")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false, "open a browser with --serve")
	_ = exportCmd.MarkFlagRequired("app")
	rootCmd.AddCommand(exportCmd)
}
