package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// fieldsCmd prints per-field data volume, label split and model status. The
// mash/pass split is the quickest way to spot a field blocked on
// single-direction swipes.
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Show swipe counts and model status per job field",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		stats, err := appInstance.FieldService.AllFieldStats(ctx)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field", "Resumes", "Swipes", "Mash", "Pass", "Model", "Trained At", "Samples"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, s := range stats {
			modelCol, trainedCol, samplesCol := "-", "-", "-"
			if s.Model != nil {
				modelCol = s.Model.Version[:8]
				trainedCol = s.Model.TrainedAt.Format("2006-01-02 15:04")
				samplesCol = strconv.Itoa(s.Model.SampleCount)
			}
			table.Append([]string{
				s.JobField,
				strconv.Itoa(s.ResumeCount),
				strconv.Itoa(s.SwipeCount),
				strconv.Itoa(s.MashCount),
				strconv.Itoa(s.PassCount),
				modelCol,
				trainedCol,
				samplesCol,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
