package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"propdesk/database"
)

var createUserFlags struct {
	Username   string
	Password   string
	Admin      bool
	Commission float64
}

var createUserCmd = &cobra.Command{
	Use:     "create-user",
	Short:   "Create a user directly in the database",
	Long:    `Create a user without going through the web interface, useful for operators bootstrapping accounts.`,
	Example: `propdesk create-user --username joe --password secret --commission 5.0`,
	Run:     createUser,
}

func init() {
	createUserCmd.Flags().StringVar(&createUserFlags.Username, "username", "", "Username for the new user")
	createUserCmd.Flags().StringVar(&createUserFlags.Password, "password", "", "Password for the new user")
	createUserCmd.Flags().BoolVar(&createUserFlags.Admin, "admin", false, "Grant admin privileges")
	createUserCmd.Flags().Float64Var(&createUserFlags.Commission, "commission", 0, "Default commission rate")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createUserCmd)
}

func createUser(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close() //nolint:errcheck

	user, err := db.CreateUser(cmd.Context(), createUserFlags.Username, createUserFlags.Password, createUserFlags.Admin, createUserFlags.Commission)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	log.Info("user created", "id", user.ID, "username", user.Username, "admin", user.IsAdmin)
}
