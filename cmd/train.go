package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumemash/internal/clix"
)

var trainEnqueue bool

// trainCmd retrains one or more fields from the CLI. Without arguments it
// walks every known field.
var trainCmd = &cobra.Command{
	Use:   "train [field...]",
	Short: "Retrain the swipe model for one or more job fields",
	Long: `Runs a full retrain from all recorded swipes. Fields with no swipes, or
swipes in only one direction, are skipped and keep their current model.
With --enqueue the retrain is queued for the worker instead of running here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		fields, err := clix.ParseFields(args)
		if err != nil {
			return err
		}

		ok := color.New(color.FgGreen)
		skip := color.New(color.FgYellow)

		for _, field := range fields {
			if trainEnqueue {
				if err := appInstance.JobClient.EnqueueRetrainJob(ctx, field); err != nil {
					return err
				}
				fmt.Printf("  %-12s queued for retraining\n", field)
				continue
			}

			used, err := appInstance.TrainingService.Train(ctx, field)
			if err != nil {
				return fmt.Errorf("training field %q: %w", field, err)
			}
			if used == 0 {
				skip.Printf("  %-12s skipped (needs swipes in both directions)\n", field)
				continue
			}
			ok.Printf("  %-12s trained on %d swipes\n", field, used)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().BoolVar(&trainEnqueue, "enqueue", false, "Queue the retrain for the worker instead of running it now")
}
