package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	OutputDir     string
	Interactive   bool
	ListModels    bool
	ListLanguages bool

	// Translation memory flags
	MemoryFile    string
	MemoryBackend string

	// Translation provider flags
	Provider    string
	Model       string
	Temperature float64
	MaxRetries  int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		MemoryFile:    "translation_memory.json",
		MemoryBackend: "json",
		Provider:      "openai",
		Temperature:   0.3,
		MaxRetries:    2,
	}
}
