package briefing

// DateLayout is how daily notes are named.
const DateLayout = "2006-01-02"

// Options locates notes and outputs in the vault.
type Options struct {
	DailyNotesFolder string
	OutputFolder     string
	MonthlyFolder    string
	DaysToAnalyze    int
}

// Result describes one written document.
type Result struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	// Notes is how many source notes went into the prompt.
	Notes int `json:"notes"`
	// Tasks is how many classified tasks went into the prompt.
	Tasks int `json:"tasks"`
}
