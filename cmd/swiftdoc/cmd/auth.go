package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd logs in and saves the session token to the config file.
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and save the session token",
	Long: `Log in to the backend and save the session token for later commands.

The password is prompted without echo. The token is written to
~/.swiftdoc/config.yaml with owner-only permissions.

Example:
  swiftdoc login alice@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := apiClient()
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		session, err := api.Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}

		cfg.Token = session.Token
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println("Logged in.")
		return nil
	},
}

// registerCmd creates a new account.
var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create a new account",
	Long: `Create a new account on the backend, then log in with 'swiftdoc login'.

Example:
  swiftdoc register alice@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := apiClient()
		if err != nil {
			return err
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		if err := api.Register(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Println("Account created. Run 'swiftdoc login' to sign in.")
		return nil
	},
}

// readPassword prompts for a password without echo, falling back to a plain
// line read when stdin is not a terminal (piped input).
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		passwordBytes, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(passwordBytes), nil
	}

	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(password, "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
}
