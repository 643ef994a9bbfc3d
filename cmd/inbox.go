package main

import (
	"context"
	"encoding/json"
	"os"
	"outreach/internal/config"
	"outreach/internal/inbox"
	"outreach/pkg/domain"
	"outreach/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type maintenanceFunc func(ctx context.Context, svc inbox.Service, userID domain.UserID) (any, error)

func maintenanceCommand(cfg *config.Config, use, short string, run maintenanceFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			user, _ := cmd.Flags().GetString("user")
			uid, err := uuid.Parse(user)
			if err != nil {
				logger.Fatal(ctx, "invalid user id", zap.String("user", user), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc, err := inbox.New(strg, inbox.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create inbox service", zap.Error(err))
			}

			res, err := run(ctx, svc, domain.UserID(uid))
			if err != nil {
				logger.Fatal(ctx, "could not run inbox "+use, zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(res)
		},
	}

	cmd.Flags().String("user", "", "User UUID whose campaigns are processed")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// inboxCommand groups the offline inbox maintenance routines. They run
// against the database directly and do not need the API server.
func inboxCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Inbox maintenance",
	}

	cmd.AddCommand(
		maintenanceCommand(cfg, "migrate", "Rebuilds the inbox of every launched campaign",
			func(ctx context.Context, svc inbox.Service, userID domain.UserID) (any, error) {
				return svc.Migrate(ctx, userID)
			}),
		maintenanceCommand(cfg, "backfill", "Adds threads missing from existing inboxes",
			func(ctx context.Context, svc inbox.Service, userID domain.UserID) (any, error) {
				return svc.Backfill(ctx, userID)
			}),
		maintenanceCommand(cfg, "cleanup", "Deletes the inbox data of every campaign",
			func(ctx context.Context, svc inbox.Service, userID domain.UserID) (any, error) {
				return svc.Cleanup(ctx, userID)
			}),
	)

	return cmd
}
