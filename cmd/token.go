package cmd

import (
	"fmt"
	"time"

	"github.com/pranav244872/jobboard/config"
	db "github.com/pranav244872/jobboard/db/sqlc"
	"github.com/pranav244872/jobboard/token"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userID   int64
		role     string
		duration time.Duration
	)

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with TOKEN_SYMMETRIC_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user-id must be positive")
			}
			if !db.UserRole(role).Valid() {
				return fmt.Errorf("unknown role %q, expected one of %v", role, db.AllUserRoleValues())
			}

			cfg, err := config.LoadConfig(configPath(cmd))
			if err != nil {
				return fmt.Errorf("could not load configuration: %w", err)
			}

			maker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
			if err != nil {
				return err
			}

			accessToken, err := maker.CreateToken(userID, db.UserRole(role), duration)
			if err != nil {
				return fmt.Errorf("failed to create token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), accessToken)
			return nil
		},
	}

	tokenCmd.Flags().Int64Var(&userID, "user-id", 0, "user the token is issued for")
	tokenCmd.Flags().StringVar(&role, "role", string(db.UserRoleCandidate), "candidate, employer or admin")
	tokenCmd.Flags().DurationVar(&duration, "duration", time.Hour, "how long the token stays valid")

	return tokenCmd
}
