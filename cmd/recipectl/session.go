package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/recipectl/internal/redact"
	"github.com/dshills/recipectl/internal/session"
)

func newSessionCmd(flags *globalFlags, s streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or change the stored session",
	}

	var token string
	var admin bool
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Store an auth token issued by the login page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return codeError(exitUsage, "invalid flags: --token is required")
			}
			a, err := newApp(flags, s)
			if err != nil {
				return err
			}
			// A new login replaces the whole session; is-admin is only
			// ever present as "true".
			if err := a.store.Clear(); err != nil {
				return codeError(exitUnexpected, "resetting session: %s", err)
			}
			if err := a.store.Set(session.KeyAuthToken, token); err != nil {
				return codeError(exitUnexpected, "saving session: %s", err)
			}
			if admin {
				if err := a.store.Set(session.KeyIsAdmin, "true"); err != nil {
					return codeError(exitUnexpected, "saving session: %s", err)
				}
			}
			fmt.Fprintf(s.stdout, "session saved to %s\n", a.store.Path())
			return nil
		},
	}
	setCmd.Flags().StringVar(&token, "token", "", "Bearer token")
	setCmd.Flags().BoolVar(&admin, "admin", false, "Mark the session as admin")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored session with the token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, s)
			if err != nil {
				return err
			}
			if !session.Authenticated(a.store) {
				fmt.Fprintln(s.stdout, "not logged in")
				return nil
			}
			fmt.Fprintf(s.stdout, "token: %s\nadmin: %t\nfile:  %s\n",
				redact.Token(session.Token(a.store)), session.IsAdmin(a.store), a.store.Path())
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored session without contacting the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, s)
			if err != nil {
				return err
			}
			if err := a.store.Clear(); err != nil {
				return codeError(exitUnexpected, "clearing session: %s", err)
			}
			fmt.Fprintln(s.stdout, "session cleared")
			return nil
		},
	}

	cmd.AddCommand(setCmd, showCmd, clearCmd)
	return cmd
}

func newLogoutCmd(flags *globalFlags, s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out on the backend and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags, s)
			if err != nil {
				return err
			}
			c := newRecipeController(a)
			err = c.Logout(cmd.Context())
			if a.nav.Target() == "" {
				return a.outcome(err)
			}
			if err != nil {
				return codeError(exitUnexpected, "clearing session: %s", err)
			}
			fmt.Fprintf(s.stdout, "logged out, continue at %s\n", a.nav.Target())
			return nil
		},
	}
}
