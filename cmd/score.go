package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumemash/internal/clix"
	"resumemash/internal/util"
)

var scoreField string

// scoreCmd scores a resume text file against a field's current model.
var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Score a resume text file against a job field's model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}
		field, err := clix.ParseJobField(cmd.Flags())
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume file: %w", err)
		}
		text, err := util.CleanFileContent(raw, args[0])
		if err != nil {
			return err
		}

		result, err := appInstance.ScoringService.Score(ctx, text, field)
		if err != nil {
			return err
		}
		if result == nil {
			color.Yellow("No model trained for field %q yet, not enough swipe data.", field)
			return nil
		}

		pct := int(math.Round(result.Probability * 100))
		c := color.New(color.FgRed)
		switch {
		case pct >= 80:
			c = color.New(color.FgGreen)
		case pct >= 50:
			c = color.New(color.FgYellow)
		}
		c.Printf("Mash probability: %d%%\n", pct)
		fmt.Printf("Model version %s, trained %s on %d swipes\n",
			result.ModelVersion, result.TrainedAt.Format("2006-01-02 15:04:05"), result.SampleCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreField, "field", "", "Job field whose model to score against (required)")
	scoreCmd.MarkFlagRequired("field")
}
