package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/service"
	"github.com/spf13/cobra"
)

// DraftSlot - сохраненный черновик одного заявителя
type DraftSlot interface {
	Load(ctx context.Context) (*models.ReportDraft, error)
	Clear(ctx context.Context) error
}

// runtime - то, с чем работают команды. В main собирается поверх app.App.
type runtime struct {
	drafts func(reporter string) DraftSlot
	intake service.IntakeService
	close  func()
}

type opener func(ctx context.Context) (*runtime, error)

var errReporterFlag = errors.New("--reporter is required")

func newRootCmd(open opener) *cobra.Command {
	var reporter string

	rootCmd := &cobra.Command{
		Use:           "intakectl",
		Short:         "Operate saved report drafts",
		Long:          `Inspect, clear and submit the saved report drafts of the intake gateway.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&reporter, "reporter", "", "reporter id the draft belongs to")

	// withRuntime открывает зависимости на время одной команды
	withRuntime := func(fn func(cmd *cobra.Command, rt *runtime, reporter string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			r := strings.TrimSpace(reporter)
			if r == "" {
				return errReporterFlag
			}
			rt, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()
			return fn(cmd, rt, r)
		}
	}

	draftCmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage the saved draft of a reporter",
	}

	draftShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved draft as JSON",
		RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, reporter string) error {
			d, err := rt.drafts(reporter).Load(cmd.Context())
			if err != nil {
				return err
			}
			// отсутствие черновика хранилище возвращает как (nil, nil)
			if d == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "no saved draft for %s\n", reporter)
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}),
	}

	draftClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved draft",
		RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, reporter string) error {
			if err := rt.drafts(reporter).Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "draft cleared for %s\n", reporter)
			return nil
		}),
	}

	submitCmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the saved draft to the reports backend",
		Long: `Restores the saved draft and submits it with the same retry policy as the gateway.
The draft must already carry a broadcast consent decision.`,
		RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, reporter string) error {
			res, err := rt.intake.Submit(cmd.Context(), reporter)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report submitted after %d attempt(s)\n", res.Attempts)
			if len(res.Report) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(res.Report))
			}
			return nil
		}),
	}

	draftCmd.AddCommand(draftShowCmd, draftClearCmd)
	rootCmd.AddCommand(draftCmd, submitCmd)
	return rootCmd
}
