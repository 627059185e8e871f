package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"swiftdoc/internal/client"
	"swiftdoc/internal/workspace"
)

var (
	generateSection int
	generateAll     bool

	refineSection     int
	refineInstruction string
)

// generateCmd drafts AI content for one or all sections of a project.
var generateCmd = &cobra.Command{
	Use:   "generate <project-id>",
	Short: "Generate AI content for sections",
	Long: `Generate content for a section (--section N, 1-based outline position)
or for every section that is still empty (--all).

Generation replaces the section's content wholesale on success and leaves
it untouched on failure. Only one operation runs per section at a time.

Examples:
  swiftdoc generate <project-id> --section 2
  swiftdoc generate <project-id> --all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateAll == (generateSection > 0) {
			return fmt.Errorf("exactly one of --section or --all is required")
		}

		orch, store, session, err := projectWorkspace(cmd, args[0])
		if err != nil {
			return err
		}

		if generateAll {
			if err := orch.GenerateAll(cmd.Context(), session); err != nil {
				return err
			}
		} else {
			section, err := store.Snapshot().SectionByIndex(generateSection - 1)
			if err != nil {
				return err
			}
			if err := orch.Generate(cmd.Context(), session, section.ID); err != nil {
				return err
			}
		}
		fmt.Println("Done.")
		return nil
	},
}

// refineCmd rewrites a section's content per an instruction.
var refineCmd = &cobra.Command{
	Use:   "refine <project-id>",
	Short: "Refine a section's content with an instruction",
	Long: `Rewrite a section's existing content per a free-text instruction.

Example:
  swiftdoc refine <project-id> --section 2 --instruction "make it more formal"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orch, store, session, err := projectWorkspace(cmd, args[0])
		if err != nil {
			return err
		}

		section, err := store.Snapshot().SectionByIndex(refineSection - 1)
		if err != nil {
			return err
		}
		if err := orch.Refine(cmd.Context(), session, section.ID, refineInstruction); err != nil {
			return err
		}
		fmt.Println("Done.")
		return nil
	},
}

// projectWorkspace loads the project and wires an orchestrator around it.
func projectWorkspace(cmd *cobra.Command, projectID string) (*workspace.Orchestrator, *workspace.Store, *client.Session, error) {
	api, cfg, err := apiClient()
	if err != nil {
		return nil, nil, nil, err
	}
	session, err := activeSession(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	store := workspace.NewStore(api)
	if _, err := store.Load(cmd.Context(), session, projectID); err != nil {
		return nil, nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return workspace.NewOrchestrator(api, store, logger), store, session, nil
}

func init() {
	generateCmd.Flags().IntVar(&generateSection, "section", 0, "1-based section number")
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "generate every empty section")

	refineCmd.Flags().IntVar(&refineSection, "section", 0, "1-based section number (required)")
	refineCmd.Flags().StringVar(&refineInstruction, "instruction", "", "how to rewrite the content (required)")
	refineCmd.MarkFlagRequired("section")
	refineCmd.MarkFlagRequired("instruction")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(refineCmd)
}
