package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func (c *cli) loginCmd() *cobra.Command {
	var password string
	var save bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange the admin password for a session token",
		Long: `Login reads the admin password from --password or the first line of stdin
and prints the session token. With --save the token is written to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				line, err := c.readLine()
				if err != nil {
					return err
				}
				password = line
			}

			token, expiresAt, err := c.client.Login(cmd.Context(), password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			var saved string
			if save {
				if saved, err = c.saveToken(token); err != nil {
					return err
				}
			}

			if c.jsonOutput() {
				return printJSON(c.out, map[string]any{"token": token, "expiresAt": expiresAt, "savedTo": saved})
			}
			fmt.Fprintln(c.out, token)
			fmt.Fprintf(c.out, "Expires: %s\n", expiresAt.Local().Format(time.RFC1123))
			if saved != "" {
				fmt.Fprintf(c.out, "Saved to %s\n", saved)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "admin password (default: read from stdin)")
	cmd.Flags().BoolVar(&save, "save", false, "store the token in the config file")
	return cmd
}

func (c *cli) hashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for PORTFOLIO_ADMIN_PASSWORD_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := c.readLine()
				if err != nil {
					return err
				}
				password = line
			}
			if password == "" {
				return fmt.Errorf("password must not be empty")
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fmt.Fprintln(c.out, string(hash))
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	// Hashing is offline; skip config loading and server resolution.
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print the version number",
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "portfolioctl %s\n", version)
		},
	}
}

func (c *cli) readLine() (string, error) {
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
