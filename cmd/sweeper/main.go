package main

import (
	"context"
	"fmt"
	"log"
	"os"

	repository "quoteflow/internal/adapter/persistence/repository"
	"quoteflow/internal/infrastructure/database"
	"quoteflow/internal/infrastructure/notifications"
	"quoteflow/internal/usecase"
	"quoteflow/internal/usecase/interfaces"

	"github.com/fatih/color"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var dryRun bool

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Lock expired customer portals and hold their dependent jobs",
	Long: `sweeper finds quotes whose customer portal is still open past its closing
deadline, forces the portal closed, and puts jobs that are still waiting on
customer selections on hold. Intended to run on a schedule (cron / EventBridge).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweep(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing anything")
}

func runSweep(ctx context.Context) error {
	ddb := database.ConnectDynamoDB()
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	jobRepo := repository.NewJobDynamoRepository(ddb)

	var notifier interfaces.INotificationSender
	sender, err := notifications.NewHTTPSender(os.Getenv("NOTIFICATION_SERVICE_URL"))
	if err != nil {
		log.Printf("Notification sender not configured: %v", err)
	} else {
		notifier = sender
	}

	sweep := usecase.NewPortalSweepUseCase(quoteRepo, jobRepo, notifier)
	summary, err := sweep.SweepExpiredPortals(ctx, usecase.SweepOptions{DryRun: dryRun})
	if err != nil {
		return err
	}

	if summary.DryRun {
		color.Yellow("dry run: no writes performed")
	}
	fmt.Printf("checked:      %d\n", summary.Checked)
	color.Green("locked:       %d", summary.Locked)
	color.Cyan("jobs flagged: %d", summary.JobsFlagged)
	if len(summary.Errors) > 0 {
		color.Red("errors:       %d", len(summary.Errors))
		for _, e := range summary.Errors {
			color.Red("  quote %s: %s", e.QuoteID, e.Reason)
		}
		return fmt.Errorf("%d quote(s) failed to sweep", len(summary.Errors))
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
