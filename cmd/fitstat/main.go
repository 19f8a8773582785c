package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fitstat/internal/bootstrap"
	trainingdto "fitstat/internal/modules/training/dto"
	"fitstat/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:   "fitstat",
		Short: "Workout statistics from sensor packages",
		Long: `Workout statistics from sensor packages.

Environment:
  FITSTAT_HOME          journal directory when --home is not given
  FITSTAT_DB_PATH       journal index location (default <home>/.fitstat/fitstat.db)
  FITSTAT_SKIP_INVALID  "true" makes report and tui skip bad packages

The environment is parsed before every command; a malformed value (for
example FITSTAT_SKIP_INVALID=maybe) fails the command, even calc.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", ".", "directory holding the workout journal")

	root.AddCommand(newReportCmd(root, &homePath))
	root.AddCommand(newCalcCmd(root, &homePath))
	root.AddCommand(newCodesCmd(root, &homePath))
	root.AddCommand(newHistoryCmd(root, &homePath))
	root.AddCommand(newTUICmd(root, &homePath))
	return root
}

func loadConfig(root *cobra.Command, homePath string) (config.Config, error) {
	return config.Load(homePath, root.PersistentFlags().Changed("home"))
}

func loadApp(root *cobra.Command, homePath string, journal bool) (*bootstrap.App, error) {
	cfg, err := loadConfig(root, homePath)
	if err != nil {
		return nil, err
	}
	if journal {
		return bootstrap.NewWithJournal(cfg)
	}
	return bootstrap.New(cfg)
}

func newReportCmd(root *cobra.Command, homePath *string) *cobra.Command {
	var file string
	var skipInvalid, save bool

	report := &cobra.Command{
		Use:   "report",
		Short: "Print a summary line for every package (built-in samples unless --file is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(root, *homePath, save)
			if err != nil {
				return err
			}
			skip := skipInvalid || (!cmd.Flags().Changed("skip-invalid") && app.Config.SkipInvalid)
			out, reportErr := app.TrainingCLI.Report(context.Background(), file, skip, save)
			printReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), out, save)
			return reportErr
		},
	}
	report.Flags().StringVar(&file, "file", "", "YAML packages file")
	report.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "report and skip bad packages instead of stopping")
	report.Flags().BoolVar(&save, "save", false, "journal every summary under --home")
	return report
}

func printReport(stdout, stderr io.Writer, out trainingdto.ReportOutput, saved bool) {
	skipped := map[int]trainingdto.SkippedOutput{}
	for _, s := range out.Skipped {
		skipped[s.Index] = s
	}
	next := 0
	for _, s := range out.Summaries {
		for ; next < s.Index; next++ {
			if sk, ok := skipped[next]; ok {
				_, _ = fmt.Fprintf(stderr, "skipped package #%d (%s): %s\n", sk.Index+1, sk.Code, sk.Reason)
			}
		}
		next = s.Index + 1
		_, _ = fmt.Fprintln(stdout, s.Message)
		if saved && s.NotePath != "" {
			_, _ = fmt.Fprintf(stderr, "journaled %s note=%s\n", s.JournalID, s.NotePath)
		}
	}
	for _, sk := range out.Skipped {
		if sk.Index >= next {
			_, _ = fmt.Fprintf(stderr, "skipped package #%d (%s): %s\n", sk.Index+1, sk.Code, sk.Reason)
		}
	}
}

func newCalcCmd(root *cobra.Command, homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <CODE> <value>...",
		Short: "Summarise a single package, e.g. calc RUN 15000 1 75",
		Long:  "Summarise a single package. Run `fitstat codes` for the values each code expects.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(root, *homePath, false)
			if err != nil {
				return err
			}
			out, err := app.TrainingCLI.Calc(context.Background(), args[0], args[1:])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
}

func newCodesCmd(root *cobra.Command, homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List activity codes and the values each expects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(root, *homePath, false)
			if err != nil {
				return err
			}
			formats, err := app.TrainingCLI.Formats(context.Background())
			if err != nil {
				return err
			}
			for _, f := range formats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", f.Code, strings.Join(f.Fields, " "))
			}
			return nil
		},
	}
}

func newHistoryCmd(root *cobra.Command, homePath *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Journaled workout queries"}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List journaled workouts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(root, *homePath, true)
			if err != nil {
				return err
			}
			entries, err := app.JournalCLI.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no workouts")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.3f km\t%.3f kcal\n",
					e.ID, e.RecordedAt.Format("2006-01-02T15:04:05Z07:00"), e.TrainingType, e.DistanceKm, e.Calories)
			}
			return nil
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "maximum number of workouts")

	var entryID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show one journaled workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(entryID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(root, *homePath, true)
			if err != nil {
				return err
			}
			e, err := app.JournalCLI.Get(context.Background(), entryID)
			if err != nil {
				return err
			}
			body := e.NoteBody
			if body == "" {
				body = e.Message
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ncode: %s\nrecorded: %s\nnote: %s\n\n%s\n",
				e.ID, e.Code, e.RecordedAt.Format("2006-01-02T15:04:05Z07:00"), e.NotePath, body)
			return nil
		},
	}
	show.Flags().StringVar(&entryID, "id", "", "workout id")

	history.AddCommand(list, show)
	return history
}

func newTUICmd(root *cobra.Command, homePath *string) *cobra.Command {
	var file string
	var skipInvalid bool

	tui := &cobra.Command{
		Use:   "tui",
		Short: "Browse a report in the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(root, *homePath, false)
			if err != nil {
				return err
			}
			skip := skipInvalid || (!cmd.Flags().Changed("skip-invalid") && app.Config.SkipInvalid)
			return bootstrap.RunTUI(app, file, skip)
		},
	}
	tui.Flags().StringVar(&file, "file", "", "YAML packages file")
	tui.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "skip bad packages instead of stopping")
	return tui
}
