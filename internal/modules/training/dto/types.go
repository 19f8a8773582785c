package dto

// Mode controls how the report treats a package that cannot be read.
type Mode string

const (
	// ModeStrict stops the report at the first bad package.
	ModeStrict Mode = "strict"
	// ModeSkip reports the bad package and carries on with the rest.
	ModeSkip Mode = "skip"
)

type PackageInput struct {
	Code string
	Data []float64
}

type ReportInput struct {
	Path     string
	Packages []PackageInput
	Mode     Mode
	Save     bool
}

type CalcInput struct {
	Code string
	Data []float64
}

type SummaryOutput struct {
	Index        int
	Code         string
	TrainingType string
	DurationH    float64
	DistanceKm   float64
	SpeedKmh     float64
	Calories     float64
	Message      string
	JournalID    string
	NotePath     string
}

// FormatOutput describes the positional values a code expects.
type FormatOutput struct {
	Code   string
	Fields []string
}

type SkippedOutput struct {
	Index  int
	Code   string
	Reason string
}

type ReportOutput struct {
	Summaries []SummaryOutput
	Skipped   []SkippedOutput
}
