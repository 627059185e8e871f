package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdoc/internal/workspace"
)

var exportOut string

// exportCmd downloads the composed document for a project.
var exportCmd = &cobra.Command{
	Use:   "export <project-id>",
	Short: "Export the project as a .docx or .pptx file",
	Long: `Compose and download the project's document. The file format follows
the project's type and is saved as document.docx or document.pptx.

Example:
  swiftdoc export <project-id> --out ./exports`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := apiClient()
		if err != nil {
			return err
		}
		session, err := activeSession(cfg)
		if err != nil {
			return err
		}

		store := workspace.NewStore(api)
		snap, err := store.Load(cmd.Context(), session, args[0])
		if err != nil {
			return err
		}

		exporter := workspace.NewExporter(api, workspace.DirSaver{Dir: exportOut})
		path, err := exporter.Export(cmd.Context(), session, args[0], string(snap.Project.DocType))
		if err != nil {
			return err
		}
		fmt.Printf("Exported %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "directory to save the exported file in")
	rootCmd.AddCommand(exportCmd)
}
