package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram"
	"github.com/vfg2006/instagram-insights-api/infrastructure/integrator/instagram/igclient"
	"github.com/vfg2006/instagram-insights-api/infrastructure/repository"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
	"github.com/vfg2006/instagram-insights-api/internal/scheduler"
	"github.com/vfg2006/instagram-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/instagram-insights-api/pkg/utils"
)

var (
	aggregateMediaLimit int
	aggregateHashtags   []string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Run one aggregation and store the rows",
	Long: `Fetches profile, media, media insights, user insights and hashtag media
and writes one row per item through the configured storage driver.

Defaults come from AGGREGATION_SYNC_MEDIA_LIMIT and AGGREGATION_SYNC_HASHTAGS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := repository.NewRecordStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		if cmd.Flags().Changed("media-limit") {
			cfg.AggregationSync.MediaLimit = aggregateMediaLimit
		}
		if cmd.Flags().Changed("hashtag") {
			cfg.AggregationSync.Hashtags = aggregateHashtags
		}

		client := igclient.NewClient(cfg)
		aggregator := aggregating.NewService(cfg, instagram.New(cfg, client), store)

		summary, err := scheduler.NewAggregationSyncService(aggregator, cfg).RunOnce(cmd.Context())
		if err != nil {
			return err
		}

		return printSummary(summary)
	},
}

func printSummary(summary *domain.AggregationSummary) error {
	if jsonOutput {
		fmt.Println(utils.PrettyJson(summary))
		return nil
	}

	fmt.Printf("profile:        %s %s\n", summary.Profile.Status, summary.Profile.Username)
	fmt.Printf("media:          %s (%d rows)\n", summary.Media.Status, summary.Media.Count)

	failed := 0
	for _, item := range summary.MediaInsights.Items {
		if item.Status != domain.StatusSuccess {
			failed++
		}
	}
	fmt.Printf("media insights: %d ok, %d failed\n", summary.MediaInsights.Count-failed, failed)
	fmt.Printf("user insights:  %s\n", summary.UserInsights.Status)

	if summary.Hashtags != nil {
		for _, item := range summary.Hashtags.Items {
			if item.Error != "" {
				fmt.Printf("#%s: %s (%s)\n", item.Hashtag, item.Status, item.Error)
				continue
			}
			fmt.Printf("#%s: %s (%d rows)\n", item.Hashtag, item.Status, item.Count)
		}
	}

	return nil
}

func init() {
	aggregateCmd.Flags().IntVar(&aggregateMediaLimit, "media-limit", domain.DefaultMediaLimit, "Maximum number of media items to fetch")
	aggregateCmd.Flags().StringSliceVar(&aggregateHashtags, "hashtag", nil, "Hashtag to collect (repeatable or comma separated)")
	rootCmd.AddCommand(aggregateCmd)
}
