package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	journalinadapter "fitstat/internal/modules/journal/adapter/in"
	journaloutadapter "fitstat/internal/modules/journal/adapter/out"
	journalin "fitstat/internal/modules/journal/port/in"
	journalservice "fitstat/internal/modules/journal/service"
	journalusecase "fitstat/internal/modules/journal/usecase"
	traininginadapter "fitstat/internal/modules/training/adapter/in"
	trainingoutadapter "fitstat/internal/modules/training/adapter/out"
	trainingservice "fitstat/internal/modules/training/service"
	trainingusecase "fitstat/internal/modules/training/usecase"
	"fitstat/internal/platform/clock"
	"fitstat/internal/platform/config"
	"fitstat/internal/platform/id"
	"fitstat/internal/platform/tx"
	uiapp "fitstat/internal/ui/app"
)

type App struct {
	TrainingCLI traininginadapter.CLIHandler
	JournalCLI  journalinadapter.CLIHandler
	Config      config.Config
}

// New wires the calculator without touching the filesystem. Commands that
// persist or read history use NewWithJournal.
func New(cfg config.Config) (*App, error) {
	return build(cfg, nil), nil
}

// NewWithJournal also opens the sqlite index and note store under the home path.
func NewWithJournal(cfg config.Config) (*App, error) {
	index, err := journaloutadapter.NewSQLiteEntryIndex(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new journal index: %w", err)
	}
	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clock.SystemClock{}, id.UUID{}, journaloutadapter.NewVaultNoteStore(cfg.NotesPath), index),
		tx.NoopManager{},
	)
	app := build(cfg, journalUC)
	app.JournalCLI = journalinadapter.NewCLIHandler(journalUC)
	return app, nil
}

func build(cfg config.Config, journal journalin.Usecase) *App {
	trainingSvc := trainingservice.NewTrainingService(trainingoutadapter.NewYAMLPackageSource())
	trainingUC := trainingusecase.NewInteractor(trainingSvc, journal)
	return &App{
		TrainingCLI: traininginadapter.NewCLIHandler(trainingUC),
		Config:      cfg,
	}
}

func RunTUI(app *App, packagesPath string, skipInvalid bool) error {
	model := uiapp.NewModel(app.TrainingCLI, packagesPath, skipInvalid)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
