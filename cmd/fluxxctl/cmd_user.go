package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/white/fluxx-sales/config"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/repositories"
	"github.com/white/fluxx-sales/internal/services"
	"github.com/white/fluxx-sales/internal/utils"
	"github.com/white/fluxx-sales/pkg/mongodb"
)

var registerInput models.RegisterUserInput

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a user directly against the user store",
	RunE:  runUserRegister,
}

func init() {
	f := userRegisterCmd.Flags()
	f.StringVar(&registerInput.Email, "email", "", "Email (required)")
	f.StringVar(&registerInput.Password, "password", "", "Password (required)")
	f.StringVar(&registerInput.Firstname, "firstname", "", "First name")
	f.StringVar(&registerInput.Lastname, "lastname", "", "Last name")
	f.StringVar(&registerInput.Role, "role", "", "Role")
	f.StringVar(&registerInput.Department, "department", "", "Department")
	f.StringVar(&registerInput.ReferenceID, "referenceid", "", "Agent reference ID")
	_ = userRegisterCmd.MarkFlagRequired("email")
	_ = userRegisterCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userRegisterCmd)
}

func runUserRegister(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn := mongodb.NewLazy(mongodb.Config{
		URI:         cfg.MongoDB.URI,
		Database:    cfg.MongoDB.Database,
		MaxPoolSize: cfg.MongoDB.MaxPoolSize,
		MinPoolSize: cfg.MongoDB.MinPoolSize,
		TLSCAFile:   cfg.MongoDB.TLSCAFile,
	})
	defer func() { _ = conn.Close(context.Background()) }()

	// Registration never issues a token, but the service wants an issuer.
	tokens, err := utils.NewJWTService(cfg.JWT)
	if err != nil {
		return err
	}

	auth := services.NewAuthService(repositories.NewMongoUserRepository(conn), tokens, int(tokens.Expiry().Seconds()))
	profile, err := auth.Register(ctx, registerInput)
	if err != nil {
		return fmt.Errorf("register %s: %w", registerInput.Email, err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(profile)
}
