package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// login command
var loginCmd = &cobra.Command{
	Use:   "login USERNAME",
	Short: "Log in as a farm operator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remember, _ := cmd.Flags().GetBool("remember")

		a, err := newApp("Login")
		if err != nil {
			return err
		}
		defer a.Close()

		pass, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		u, err := a.Service().Login(args[0], pass, remember)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", u.Username, u.Name)
		return nil
	},
}

// logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Logout")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

// whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("WhoAmI")
		if err != nil {
			return err
		}
		defer a.Close()

		u, ok := a.Service().CurrentUser()
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}

		role := "viewer"
		switch {
		case u.IsMaster:
			role = "master"
		case u.CanEdit:
			role = "editor"
		}
		fmt.Printf("%s (%s) — %s\n", u.Username, u.Name, role)
		return nil
	},
}

// register command
var registerCmd = &cobra.Command{
	Use:   "register NAME",
	Short: "Register a new operator account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")

		a, err := newApp("Register")
		if err != nil {
			return err
		}
		defer a.Close()

		pass, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if pass != confirm {
			return fmt.Errorf("passwords do not match")
		}

		u, err := a.Service().Register(args[0], username, phone, email, pass)
		if err != nil {
			return err
		}

		fmt.Printf("Registered and logged in as %s\n", u.Username)
		return nil
	},
}

// user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage operator accounts",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List operator accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListUsers")
		if err != nil {
			return err
		}
		defer a.Close()

		users := a.Service().ListUsers()
		for _, u := range users {
			role := "viewer"
			switch {
			case u.IsMaster:
				role = "master"
			case u.CanEdit:
				role = "editor"
			}
			fmt.Printf("%-20s %-8s %s\n", u.Username, role, u.Name)
		}
		return nil
	},
}

var userGrantEditCmd = &cobra.Command{
	Use:   "grant-edit USERNAME",
	Short: "Allow an operator to edit farm data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetCanEdit")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().SetCanEdit(args[0], true); err != nil {
			return err
		}
		fmt.Printf("%s can now edit farm data\n", args[0])
		return nil
	},
}

var userRevokeEditCmd = &cobra.Command{
	Use:   "revoke-edit USERNAME",
	Short: "Make an operator read-only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetCanEdit")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().SetCanEdit(args[0], false); err != nil {
			return err
		}
		fmt.Printf("%s is now read-only\n", args[0])
		return nil
	},
}

var userPromoteCmd = &cobra.Command{
	Use:   "promote USERNAME",
	Short: "Make an operator the master administrator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("PromoteMaster")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().PromoteMaster(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s is now the master administrator\n", args[0])
		return nil
	},
}

var userDemoteCmd = &cobra.Command{
	Use:   "demote USERNAME",
	Short: "Remove master rights from an operator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DemoteMaster")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().DemoteMaster(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s is no longer a master administrator\n", args[0])
		return nil
	},
}

var userRemoveCmd = &cobra.Command{
	Use:   "remove USERNAME",
	Short: "Delete an operator account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveUser")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().RemoveUser(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	loginCmd.Flags().Bool("remember", false, "Keep the session beyond the normal expiry")
	registerCmd.Flags().String("username", "", "Username (default: first word of NAME, lowercased)")
	registerCmd.Flags().String("phone", "", "Contact phone")
	registerCmd.Flags().String("email", "", "Contact email")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGrantEditCmd)
	userCmd.AddCommand(userRevokeEditCmd)
	userCmd.AddCommand(userPromoteCmd)
	userCmd.AddCommand(userDemoteCmd)
	userCmd.AddCommand(userRemoveCmd)

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(userCmd)
}
