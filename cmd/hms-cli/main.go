// Command hms-cli is a terminal front end for the hospital management API.
// It keeps the session token in a file between invocations, the way the
// browser UI keeps it in local storage.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hms/hms/pkg/hmsclient"
)

const tokenFileName = "token"

var (
	serverURL string
	tokenPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hms",
		Short:         "Hospital management CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "HMS server base URL")
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token-file", defaultTokenPath(), "Path of the stored session token")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(patientCmd())
	rootCmd.AddCommand(staffCmd())
	rootCmd.AddCommand(admissionCmd())
	rootCmd.AddCommand(prescriptionCmd())
	rootCmd.AddCommand(billCmd())
	rootCmd.AddCommand(pharmacyCmd())
	rootCmd.AddCommand(dashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "hms", tokenFileName)
}

// newClient builds a client carrying the stored session token, when one
// exists.
func newClient() *hmsclient.Client {
	client := hmsclient.New(serverURL)
	if token, err := loadToken(); err == nil && token != "" {
		client.SetToken(token)
	}
	return client
}

func loadToken() (string, error) {
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(tokenPath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(tokenPath, []byte(token), 0o600)
}

func clearToken() {
	_ = os.Remove(tokenPath)
}

// wrapSessionErr converts an expired-session failure into an actionable
// message and drops the stale token file.
func wrapSessionErr(err error) error {
	if errors.Is(err, hmsclient.ErrSessionExpired) {
		clearToken()
		return fmt.Errorf("session expired, run 'hms login' to sign in again")
	}
	return err
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			client := hmsclient.New(serverURL)
			session, err := client.Auth.Login(context.Background(), username, password)
			if err != nil {
				var apiErr *hmsclient.APIError
				if errors.Is(err, hmsclient.ErrSessionExpired) || errors.As(err, &apiErr) {
					return fmt.Errorf("invalid credentials")
				}
				return err
			}
			if err := saveToken(session.Token); err != nil {
				return fmt.Errorf("saving token: %w", err)
			}

			fmt.Printf("Logged in as %s (session valid until %s)\n",
				session.Username, session.ExpiresAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
	cmd.Flags().String("username", "", "Username")
	cmd.Flags().String("password", "", "Password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			clearToken()
			fmt.Println("Logged out.")
			return nil
		},
	}
}
