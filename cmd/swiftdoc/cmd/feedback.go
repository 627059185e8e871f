package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdoc/internal/domain/services"
	"swiftdoc/internal/workspace"
)

var (
	feedbackSection int
	feedbackLike    bool
	feedbackDislike bool
	feedbackComment string
)

// feedbackCmd records a reaction to a section's generated content.
var feedbackCmd = &cobra.Command{
	Use:   "feedback <project-id>",
	Short: "Like, dislike, or comment on a section's content",
	Long: `Record feedback on a section's generated content. Only the fields
given are updated; an earlier like survives a later comment-only submission.

Examples:
  swiftdoc feedback <project-id> --section 2 --like
  swiftdoc feedback <project-id> --section 2 --comment "too formal"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if feedbackLike && feedbackDislike {
			return fmt.Errorf("--like and --dislike are mutually exclusive")
		}
		if !feedbackLike && !feedbackDislike && !cmd.Flags().Changed("comment") {
			return fmt.Errorf("nothing to submit; give --like, --dislike, or --comment")
		}

		api, cfg, err := apiClient()
		if err != nil {
			return err
		}
		session, err := activeSession(cfg)
		if err != nil {
			return err
		}

		store := workspace.NewStore(api)
		if _, err := store.Load(cmd.Context(), session, args[0]); err != nil {
			return err
		}
		section, err := store.Snapshot().SectionByIndex(feedbackSection - 1)
		if err != nil {
			return err
		}

		req := &services.FeedbackRequest{}
		if feedbackLike || feedbackDislike {
			liked := feedbackLike
			req.Liked = &liked
		}
		if cmd.Flags().Changed("comment") {
			req.Comment = &feedbackComment
		}

		if err := api.SubmitFeedback(cmd.Context(), session, section.ID, req); err != nil {
			return err
		}
		fmt.Println("Feedback recorded.")
		return nil
	},
}

func init() {
	feedbackCmd.Flags().IntVar(&feedbackSection, "section", 0, "1-based section number (required)")
	feedbackCmd.Flags().BoolVar(&feedbackLike, "like", false, "mark the content as liked")
	feedbackCmd.Flags().BoolVar(&feedbackDislike, "dislike", false, "mark the content as disliked")
	feedbackCmd.Flags().StringVar(&feedbackComment, "comment", "", "free-text comment")
	feedbackCmd.MarkFlagRequired("section")

	rootCmd.AddCommand(feedbackCmd)
}
