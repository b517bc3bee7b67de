package main

import (
	"github.com/spf13/cobra"
)

func newUserCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Sign up, log in and manage the local account",
	}

	signupCmd := &cobra.Command{
		Use:   "signup <email> <password>",
		Short: "Create the local account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.container.AuthService.SignUp(args[0], args[1])
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "account created, next: %s\n", result.NextScreen)
			return nil
		},
	}

	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.container.AuthService.SignIn(args[0], args[1])
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "logged in, next: %s\n", result.NextScreen)
			return nil
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out (the account is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.container.AuthService.Logout(); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "logged out\n")
			return nil
		},
	}

	var email string
	profileCmd := &cobra.Command{
		Use:   "profile <name>",
		Short: "Complete the profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := email
			if target == "" {
				target = app.container.AuthService.ProfileEmail()
			}
			result, err := app.container.AuthService.CompleteProfile(target, args[0])
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "profile completed for %s, next: %s\n", result.User.Email, result.NextScreen)
			return nil
		},
	}
	profileCmd.Flags().StringVar(&email, "email", "", "account email (defaults to the stored account)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.container.ProfileService.CurrentUser()
			if err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "%s <%s>\n", view.Name, view.Email)
			return nil
		},
	}

	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Print the screen the app would open on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printf(cmd.OutOrStdout(), "%s\n", app.container.AuthService.StartScreen())
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete all account data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.container.AuthService.DeleteAccount(); err != nil {
				return alertError(err)
			}
			printf(cmd.OutOrStdout(), "account deleted\n")
			return nil
		},
	}

	cmd.AddCommand(signupCmd, loginCmd, logoutCmd, profileCmd, showCmd, startCmd, deleteCmd)
	return cmd
}
