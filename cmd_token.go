package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pipetrak/config"
	"pipetrak/utils"
)

func tokenCmd() *cobra.Command {
	var (
		userID, role, secret string
		ttl                  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				secret = cfg.JWTSecret
			}
			if secret == "" {
				return errors.New("JWT_SECRET is not set (or pass --secret)")
			}
			token, err := utils.GenerateJWT(secret, userID, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id carried in the token")
	cmd.Flags().StringVar(&role, "role", "planner", "role carried in the token")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (default: JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
