package token

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parkgate-inc/parkgate/internal/infrastructure/auth"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/config"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/database"
	"github.com/parkgate-inc/parkgate/internal/infrastructure/repository"
	"github.com/parkgate-inc/parkgate/internal/shared/constants"
	"github.com/parkgate-inc/parkgate/internal/shared/logger"
)

var (
	env         string
	businessSID string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token pair for a business",
		Long:  `Mint an access and refresh token pair scoped to the given business. Hand the access token to the gate client or point-of-sale integration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&businessSID, "business", "b", "", "Business SID to scope the token to (required)")
	cmd.MarkFlagRequired("business")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env != constants.EnvProduction); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	businessRepo := repository.NewBusinessRepository(database.Get(), log)
	biz, err := businessRepo.FindBySID(context.Background(), businessSID)
	if err != nil {
		return fmt.Errorf("failed to look up business %s: %w", businessSID, err)
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	pair, err := jwtService.Generate(biz.ID(), biz.SID())
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}

	fmt.Printf("\nToken pair for %s (%s):\n\n", biz.Name(), biz.SID())
	fmt.Printf("  Access token:  %s\n", pair.AccessToken)
	fmt.Printf("  Refresh token: %s\n", pair.RefreshToken)
	fmt.Printf("  Expires in:    %d seconds\n", pair.ExpiresIn)

	return nil
}
