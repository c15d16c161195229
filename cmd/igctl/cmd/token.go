package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/authenticating"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API and Instagram access tokens",
}

var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Sign a bearer token for the aggregator routes (needs AUTH_SECRET)",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := authenticating.NewService(cfg).GenerateToken(tokenSubject, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

var tokenRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Exchange INSTAGRAM_ACCESS_TOKEN for a new long-lived token",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := igclient.NewClient(cfg).RefreshAccessToken(cmd.Context())
		if err != nil {
			var upstreamErr *domain.UpstreamError
			if errors.As(err, &upstreamErr) && upstreamErr.TokenExpired {
				return fmt.Errorf("%w (expired tokens cannot be refreshed, generate a new one in the Meta app dashboard)", err)
			}
			return err
		}

		expiresAt := time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
		fmt.Printf("access_token: %s\nexpires_at:   %s\n", resp.AccessToken, expiresAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	tokenGenerateCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "Token subject")
	tokenGenerateCmd.Flags().DurationVar(&tokenTTL, "ttl", 30*24*time.Hour, "Token lifetime (0 for no expiry)")

	tokenCmd.AddCommand(tokenGenerateCmd, tokenRefreshCmd)
	rootCmd.AddCommand(tokenCmd)
}
