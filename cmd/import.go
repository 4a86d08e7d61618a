package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"resumemash/internal/clix"
	"resumemash/internal/fileingest"
	"resumemash/internal/services"
	"resumemash/internal/util"
)

var (
	importField          string
	importUserID         int64
	importEnqueueRetrain bool
)

// importCmd bulk-loads a directory of plain-text resumes for one candidate.
// Duplicate content is skipped via the per-user text hash, so re-running the
// command over the same directory is safe.
var importCmd = &cobra.Command{
	Use:   "import [directory]",
	Short: "Bulk import .txt and .md resume files from a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		field, err := clix.ParseJobField(cmd.Flags())
		if err != nil {
			return err
		}

		files, err := fileingest.DiscoverResumeFiles(ctx, dir)
		if err != nil {
			return fmt.Errorf("failed to discover resume files: %w", err)
		}
		if len(files) == 0 {
			fmt.Printf("No .txt or .md files found under %s\n", dir)
			return nil
		}
		fmt.Printf("Discovered %d resume files under %s\n", len(files), dir)

		var importedCount, existedCount, errorCount int
		defer func() {
			fmt.Printf("\nProcessed %d files: %d imported, %d already present, %d failed\n",
				len(files), importedCount, existedCount, errorCount)
		}()

		for _, f := range files {
			binary, err := util.IsLikelyBinary(f.Path)
			if err != nil {
				errorCount++
				fmt.Printf("  - %s %s: %v\n", color.RedString("ERROR"), f.Path, err)
				continue
			}
			if binary {
				errorCount++
				fmt.Printf("  - %s %s: looks binary, skipping\n", color.RedString("ERROR"), f.Path)
				continue
			}

			raw, err := fileingest.ReadFileContent(f.Path)
			if err != nil {
				errorCount++
				fmt.Printf("  - %s %s: %v\n", color.RedString("ERROR"), f.Path, err)
				continue
			}
			text, err := util.CleanFileContent(raw, f.Path)
			if err != nil {
				errorCount++
				fmt.Printf("  - %s %s: %v\n", color.RedString("ERROR"), f.Path, err)
				continue
			}

			resume, existed, err := appInstance.ResumeService.UploadResume(ctx, services.UploadResumeParams{
				UserID:   importUserID,
				Filename: f.Name,
				Text:     text,
				JobField: field,
			})
			if err != nil {
				errorCount++
				fmt.Printf("  - %s %s: %v\n", color.RedString("ERROR"), f.Path, err)
				continue
			}

			if existed {
				existedCount++
				fmt.Printf("  - %s %s ID:%d\n", color.YellowString("Existed"), f.Path, resume.ID)
			} else {
				importedCount++
				fmt.Printf("  - %s %s ID:%d\n", color.GreenString("Imported"), f.Path, resume.ID)
			}
		}

		if importEnqueueRetrain && importedCount > 0 {
			if err := appInstance.JobClient.EnqueueRetrainJob(ctx, field); err != nil {
				return fmt.Errorf("failed to enqueue retrain for field %q: %w", field, err)
			}
			fmt.Printf("\nEnqueued retrain job for field %q\n", field)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importField, "field", "", "Job field to file the resumes under (default \"unspecified\")")
	importCmd.Flags().Int64Var(&importUserID, "user", 0, "Candidate user ID owning the resumes (required)")
	importCmd.Flags().BoolVar(&importEnqueueRetrain, "enqueue-retrain", false, "Enqueue a background retrain for the field after import")
	importCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(importCmd)
}
