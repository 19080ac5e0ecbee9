package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/billboardhub/bbadmin/internal/cli"
	"github.com/billboardhub/bbadmin/internal/config"
	"github.com/billboardhub/bbadmin/internal/format"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/session"
	"github.com/billboardhub/bbadmin/internal/utils"
)

// AuthCmd represents the auth command
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long: `Authentication commands for bbadmin.

This command group signs the operator in and out, registers accounts
and shows who the stored session belongs to.`,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	Long:  "Authenticate with an email or username and a password; the session cookie is stored in the config file",
	RunE:  runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Long:  "End the current session and forget the stored cookie",
	RunE:  runLogout,
}

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register an account",
	Long:  "Create a buyer account through the public sign-up endpoint",
	RunE:  runRegister,
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long:  "Display the stored session; with --check the session is confirmed against the backend",
	RunE:  runStatus,
}

// meCmd represents the me command
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in profile",
	Long:  "Load the profile of the signed-in operator",
	RunE:  runMe,
}

func runLogin(cmd *cobra.Command, args []string) error {
	identifier, _ := cmd.Flags().GetString("identifier")
	password, _ := cmd.Flags().GetString("password")

	if password == "" {
		fmt.Printf("Password for %s: ", identifier)
		fmt.Scanln(&password)
	}

	req := models.LoginRequest{Identifier: strings.TrimSpace(identifier), Password: password}
	if err := utils.ValidateForm(req); err != nil {
		return err
	}

	sess := cli.Session()
	fmt.Printf("Logging in as %s...\n", req.Identifier)
	if _, err := sess.Login(cmd.Context(), req); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	name := req.Identifier
	if p := sess.Profile(); p != nil && p.Username != "" {
		name = p.Username
	}
	format.PrintSuccess("✓ Successfully logged in as %s", name)
	if p := sess.Profile(); p != nil && p.Level != models.LevelAdmin {
		format.PrintWarning("%s is a %s account; admin endpoints will be refused", name, p.Level)
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Auth.Cookie == "" {
		return fmt.Errorf("not logged in")
	}

	sess := cli.Session()
	fmt.Printf("Logging out %s...\n", cfg.Auth.Email)
	if err := sess.Logout(cmd.Context()); err != nil {
		format.PrintWarning("backend logout failed: %s", err.Error())
	}

	format.PrintSuccess("✓ Successfully logged out")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	req := models.RegisterRequest{}
	req.Username, _ = cmd.Flags().GetString("username")
	req.Email, _ = cmd.Flags().GetString("email")
	req.Phone, _ = cmd.Flags().GetString("phone")
	req.Password, _ = cmd.Flags().GetString("password")
	req.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")

	if err := utils.ValidateForm(req); err != nil {
		return err
	}

	sess := cli.Session()
	if err := session.Register(cmd.Context(), sess.Client(), req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	format.PrintSuccess("✓ Account %s registered; sign in with 'bbadmin auth login'", req.Email)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	check, _ := cmd.Flags().GetBool("check")

	fmt.Printf("Server: %s\n", cfg.Server.URL)
	if cfg.Auth.Cookie == "" {
		fmt.Println("Status: Not logged in")
		return nil
	}
	fmt.Printf("Status: Logged in as %s\n", cfg.Auth.Email)

	if !check {
		fmt.Println("Session: Stored (not verified)")
		return nil
	}

	sess := cli.Session()
	_, err := sess.Resume(cmd.Context())
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		fmt.Println("Session: Expired")
	case err != nil:
		fmt.Printf("Session: %s (%s)\n", sess.State(), err.Error())
	default:
		fmt.Printf("Session: %s\n", sess.State())
	}
	return nil
}

func runMe(cmd *cobra.Command, args []string) error {
	sess := cli.Session()
	profile, err := sess.Resume(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	return format.Print(format.ProfileDetail(*profile))
}

func init() {
	// Add login command flags
	loginCmd.Flags().StringP("identifier", "i", "", "Email address or username")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	loginCmd.MarkFlagRequired("identifier")

	// Add register command flags
	registerCmd.Flags().String("username", "", "Username")
	registerCmd.Flags().String("email", "", "Email address")
	registerCmd.Flags().String("phone", "", "Phone number")
	registerCmd.Flags().String("password", "", "Password, at least 6 characters")
	registerCmd.Flags().String("confirm-password", "", "Password confirmation")

	statusCmd.Flags().Bool("check", false, "Confirm the session against the backend")

	// Add subcommands
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(meCmd)
}
