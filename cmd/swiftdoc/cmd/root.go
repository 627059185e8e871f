// Package cmd contains the CLI commands for the swiftdoc client workspace.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"swiftdoc/internal/client"
)

var serverURL string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swiftdoc",
	Short: "SwiftDoc - AI-assisted document authoring",
	Long: `SwiftDoc drafts and refines structured documents and slide decks
with AI-generated content, section by section.

A project is a titled document with a topic and an ordered outline of
sections. Each section's content is generated or refined independently;
the finished project exports to a .docx or .pptx file.

Examples:
  # Log in and save the session token
  swiftdoc login alice@example.com

  # Create a slide deck with an AI-suggested outline
  swiftdoc new --title "Q3 Review" --type pptx --topic "quarterly results" --suggest

  # Generate content for every empty section
  swiftdoc generate <project-id> --all

  # Export the finished document
  swiftdoc export <project-id> --out ./exports`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend URL (overrides config file)")
}

// apiClient builds the backend client from flags, env, and the config file.
func apiClient() (*client.Client, *Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	return client.New(cfg.ServerURL), cfg, nil
}

// activeSession returns the saved session, failing with a hint when the user
// has not logged in.
func activeSession(cfg *Config) (*client.Session, error) {
	session := client.NewSession(cfg.Token)
	if !session.Valid() {
		return nil, fmt.Errorf("not logged in; run 'swiftdoc login <email>' first")
	}
	return session, nil
}
