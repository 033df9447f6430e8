package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/creastat/storefront/api"
	"github.com/creastat/storefront/session"
	"github.com/creastat/storefront/validate"
)

var (
	loginEmail    string
	loginPassword string

	regName       string
	regEmail      string
	regPhone      string
	regPassword   string
	regRePassword string
)

// loginCmd authenticates and persists the bearer token.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the bearer token",
	RunE:  runLogin,
}

// registerCmd creates a new account.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

// logoutCmd clears the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored bearer token",
	RunE:  runLogout,
}

// whoamiCmd shows the stored session.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")

	registerCmd.Flags().StringVar(&regName, "name", "", "display name")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&regPhone, "phone", "", "phone number")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "account password")
	registerCmd.Flags().StringVar(&regRePassword, "repassword", "", "password confirmation")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	creds := api.Credentials{Email: loginEmail, Password: loginPassword}
	if errs := validate.SignIn(creds); !errs.OK() {
		return formErrors(errs)
	}

	resp, err := a.backend.SignIn(cmd.Context(), creds)
	if err != nil {
		return err
	}
	if err := a.sessions.Save(cmd.Context(), session.New(resp.Token, resp.User.Email)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	fmt.Println(okStyle.Render("Signed in as " + resp.User.Name))
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	reg := api.Registration{
		Name:       regName,
		Email:      regEmail,
		Phone:      regPhone,
		Password:   regPassword,
		RePassword: regRePassword,
	}
	if errs := validate.SignUp(reg); !errs.OK() {
		return formErrors(errs)
	}

	resp, err := a.backend.SignUp(cmd.Context(), reg)
	if err != nil {
		return err
	}
	if err := a.sessions.Save(cmd.Context(), session.New(resp.Token, resp.User.Email)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	fmt.Println(okStyle.Render("Welcome, " + resp.User.Name))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := a.sessions.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	fmt.Println(dimStyle.Render("Signed out."))
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	sess, err := a.sessions.Restore(cmd.Context())
	if err != nil {
		return err
	}
	if sess == nil {
		fmt.Println(dimStyle.Render("Not signed in."))
		return nil
	}
	fmt.Printf("%s (since %s)\n", sess.Email, sess.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// formErrors flattens field validation errors into one error, fields in
// stable order.
func formErrors(errs validate.Errors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msg := ""
	for _, f := range fields {
		if msg != "" {
			msg += "; "
		}
		msg += f + ": " + errs[f]
	}
	return fmt.Errorf("invalid form: %s", msg)
}
