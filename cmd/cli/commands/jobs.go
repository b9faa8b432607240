package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/tracker"
)

// Flag names
const (
	flagID       = "id"
	flagSearch   = "search"
	flagStatus   = "status"
	flagTitle    = "title"
	flagCompany  = "company"
	flagLocation = "location"
	flagSalary   = "salary"
	flagNotes    = "notes"
)

func newJobsCmd() *cobra.Command {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage job applications",
	}

	jobsCmd.AddCommand(newListJobsCmd())
	jobsCmd.AddCommand(newGetJobCmd())
	jobsCmd.AddCommand(newCreateJobCmd())
	jobsCmd.AddCommand(newUpdateJobCmd())
	jobsCmd.AddCommand(newDeleteJobCmd())
	jobsCmd.AddCommand(newStatsCmd())
	return jobsCmd
}

func newListJobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs, optionally filtered by a search term and status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			search, _ := cmd.Flags().GetString(flagSearch)
			status, _ := cmd.Flags().GetString(flagStatus)

			snapshot, err := jobCache.FetchAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("error fetching jobs: %w", err)
			}

			filtered, err := tracker.FilterByName(snapshot.Jobs, search, status)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := printJSON(out, filtered); err != nil {
				return err
			}
			if search != "" || status != "" {
				fmt.Fprintf(out, "%d of %d jobs\n", len(filtered), len(snapshot.Jobs))
			}
			return nil
		},
	}

	cmd.Flags().StringP(flagSearch, "q", "", "Case-insensitive text matched against title, company and location")
	cmd.Flags().StringP(flagStatus, "t", "", "Only show jobs with this status (applied, interview, offer, rejected, saved)")
	return cmd
}

func newGetJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a specific job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			job, err := jobCache.Get(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error fetching job: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), job)
		},
	}

	cmd.Flags().UintP(flagID, "i", 0, "Job ID to fetch")
	mustMarkRequired(cmd, flagID)
	return cmd
}

func newCreateJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new job application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			title, _ := flags.GetString(flagTitle)
			company, _ := flags.GetString(flagCompany)
			location, _ := flags.GetString(flagLocation)
			statusName, _ := flags.GetString(flagStatus)
			salary, _ := flags.GetFloat64(flagSalary)
			notes, _ := flags.GetString(flagNotes)

			status, err := models.ParseJobStatus(statusName)
			if err != nil {
				return err
			}

			job, err := jobCache.Create(cmd.Context(), types.CreateJobRequest{
				Title:    title,
				Company:  company,
				Status:   status,
				Location: location,
				Salary:   salary,
				Notes:    notes,
			})
			return printMutation(cmd.OutOrStdout(), job, err, "error creating job")
		},
	}

	addJobFieldFlags(cmd)
	for _, name := range []string{flagTitle, flagCompany, flagLocation, flagStatus} {
		mustMarkRequired(cmd, name)
	}
	return cmd
}

func newUpdateJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change fields of an existing job. Only the flags given are sent.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			req, err := updateRequestFromFlags(cmd)
			if err != nil {
				return err
			}
			if req.IsEmpty() {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			job, err := jobCache.Update(cmd.Context(), id, req)
			return printMutation(cmd.OutOrStdout(), job, err, "error updating job")
		},
	}

	cmd.Flags().UintP(flagID, "i", 0, "Job ID to update")
	mustMarkRequired(cmd, flagID)
	addJobFieldFlags(cmd)
	return cmd
}

func newDeleteJobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetUint(flagID)

			err := jobCache.Remove(cmd.Context(), id)
			if err == nil || errors.Is(err, tracker.ErrRefreshFailed) {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted job %d\n", id)
			}
			if err != nil {
				return fmt.Errorf("error deleting job: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().UintP(flagID, "i", 0, "Job ID to delete")
	mustMarkRequired(cmd, flagID)
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show a summary of all job applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := jobCache.FetchAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("error fetching jobs: %w", err)
			}

			stats := tracker.Aggregate(snapshot.Jobs)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Applications: %d\n", stats.Total)
			fmt.Fprintf(out, "Interviews: %d\n", stats.Count(models.JobStatusInterview))
			fmt.Fprintf(out, "Offers: %d\n", stats.Count(models.JobStatusOffer))
			fmt.Fprintf(out, "Success Rate: %d%%\n", stats.SuccessRate)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Status Breakdown:")
			for _, status := range models.JobStatuses() {
				style := tracker.StyleFor(status)
				fmt.Fprintf(out, "  [%s] %s: %d\n", style.Icon, style.Label, stats.Count(status))
			}
			return nil
		},
	}
}

func addJobFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagTitle, "", "Job title")
	cmd.Flags().String(flagCompany, "", "Company name")
	cmd.Flags().String(flagLocation, "", "Job location")
	cmd.Flags().String(flagStatus, "", "Application status (applied, interview, offer, rejected, saved)")
	cmd.Flags().Float64(flagSalary, 0, "Salary, must not be negative")
	cmd.Flags().String(flagNotes, "", "Free-form notes")
}

// updateRequestFromFlags includes only the flags the user set
func updateRequestFromFlags(cmd *cobra.Command) (types.UpdateJobRequest, error) {
	var req types.UpdateJobRequest
	flags := cmd.Flags()

	stringField := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	req.Title = stringField(flagTitle)
	req.Company = stringField(flagCompany)
	req.Location = stringField(flagLocation)
	req.Notes = stringField(flagNotes)

	if name := stringField(flagStatus); name != nil {
		status, err := models.ParseJobStatus(*name)
		if err != nil {
			return req, err
		}
		req.Status = &status
	}
	if flags.Changed(flagSalary) {
		salary, _ := flags.GetFloat64(flagSalary)
		req.Salary = &salary
	}
	return req, nil
}

// printMutation prints the job when the mutation itself went through, even if
// the refresh afterwards failed
func printMutation(out io.Writer, job models.Job, err error, msg string) error {
	if err == nil || errors.Is(err, tracker.ErrRefreshFailed) {
		if printErr := printJSON(out, job); printErr != nil {
			return printErr
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return nil
}

func printJSON(out io.Writer, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Fprintln(out, string(prettyJSON))
	return nil
}

func mustMarkRequired(cmd *cobra.Command, name string) {
	if err := cmd.MarkFlagRequired(name); err != nil {
		panic(fmt.Errorf("failed to mark %s flag as required for %s command: %w", name, cmd.Name(), err))
	}
}
