package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"portfolio/internal/api/auth"
	"portfolio/internal/config"
)

var createUserFlags struct {
	Username string
	Password string
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create an additional admin user",
	Long:  `Create an additional admin user in the configured storage backend. The password is bcrypt-hashed before it is stored.`,
	Run:   createUser,
}

func init() {
	createUserCmd.Flags().StringVarP(&createUserFlags.Username, "username", "u", "", "Username for the new user")
	createUserCmd.Flags().StringVarP(&createUserFlags.Password, "password", "p", "", "Password for the new user")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createUserCmd)
}

func createUser(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	user, err := auth.CreateUser(cmd.Context(), store, createUserFlags.Username, createUserFlags.Password)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Info("user created", "id", user.ID, "username", user.Username)
}
