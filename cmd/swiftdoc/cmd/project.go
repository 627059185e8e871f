package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swiftdoc/internal/workspace"
	"swiftdoc/internal/workspace/outline"
)

var (
	newTitle    string
	newType     string
	newTopic    string
	newSections []string
	newSuggest  bool

	deleteYes bool
)

// projectsCmd groups project management commands.
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project management commands",
	Long: `Commands for listing and deleting projects.

Examples:
  # List your projects
  swiftdoc projects list

  # Delete a project without prompting
  swiftdoc projects delete <project-id> --yes`,
}

// projectsListCmd lists the user's projects.
var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := apiClient()
		if err != nil {
			return err
		}
		session, err := activeSession(cfg)
		if err != nil {
			return err
		}

		projects, err := api.ListProjects(cmd.Context(), session)
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			fmt.Println("No projects yet. Create one with 'swiftdoc new'.")
			return nil
		}
		for _, p := range projects {
			fmt.Printf("%s  [%s]  %s\n", p.ID, p.DocType, p.Title)
		}
		return nil
	},
}

// projectsDeleteCmd deletes a project and everything under it.
var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project and all its sections",
	Long: `Delete a project, its sections, and their feedback. This cannot be
undone; the command prompts for confirmation unless --yes is given.`,
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

		if !deleteYes {
			fmt.Printf("Delete project %s? This cannot be undone. [y/N]: ", args[0])
			var answer string
			fmt.Scanln(&answer)
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		store := workspace.NewStore(api)
		if err := store.Remove(cmd.Context(), session, args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// newCmd creates a project from a composed outline.
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a project",
	Long: `Create a project with a title, document type, topic, and outline.
Title and topic may be left empty; a topic is only needed when asking for
an AI-suggested outline or generating section content later.

Outline entries come from repeated --section flags, from an AI suggestion
(--suggest, which drafts an outline from the topic), or both: a suggestion
replaces the outline wholesale, so --section entries given alongside
--suggest only survive when the suggestion comes back empty.

Examples:
  swiftdoc new --title "Field Notes" --type docx --topic "glacier retreat" \
    --section Introduction --section Methods --section Results

  swiftdoc new --title "Q3 Review" --type pptx --topic "quarterly results" --suggest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := apiClient()
		if err != nil {
			return err
		}
		session, err := activeSession(cfg)
		if err != nil {
			return err
		}

		composer := outline.NewComposer(api)
		for _, title := range newSections {
			composer.AddItem(title)
		}

		if newSuggest {
			items, err := composer.Suggest(cmd.Context(), session, newTopic, newType)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No outline suggested; keeping manual sections.")
			} else {
				fmt.Println("Suggested outline:")
				for i, title := range items {
					fmt.Printf("  %d. %s\n", i+1, title)
				}
			}
		}

		project, err := composer.Submit(cmd.Context(), session, newTitle, newType, newTopic)
		if err != nil {
			return err
		}
		fmt.Printf("Created project %s\n", project.ID)
		return nil
	},
}

// showCmd prints a project's sections and their status.
var showCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a project's outline and section status",
	Args:  cobra.ExactArgs(1),
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

		fmt.Printf("%s  [%s]\n", snap.Project.Title, snap.Project.DocType)
		fmt.Printf("Topic: %s\n\n", snap.Project.Topic)
		for i, section := range snap.Sections {
			status := "empty"
			if section.HasContent() {
				status = "ready"
			}
			fmt.Printf("  %d. %-40s %s\n", i+1, section.Title, status)
		}
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	projectsDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")

	newCmd.Flags().StringVar(&newTitle, "title", "", "project title")
	newCmd.Flags().StringVar(&newType, "type", "docx", "document type: docx or pptx")
	newCmd.Flags().StringVar(&newTopic, "topic", "", "what the document is about (required with --suggest)")
	newCmd.Flags().StringArrayVar(&newSections, "section", nil, "outline entry (repeatable)")
	newCmd.Flags().BoolVar(&newSuggest, "suggest", false, "draft the outline with AI from the topic")

	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
}
