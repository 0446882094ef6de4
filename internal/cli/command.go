package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/csvtrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvtrans [input.csv] [language...]",
		Short: "CSV Translation Tool",
		Long: `csvtrans translates the text column of CSV files into one or more
target languages using the OpenAI (or Gemini) API.

Previously translated cells are reused from a persistent translation
memory, and embedded HTML tags and {PLACEHOLDER} tokens are verified to
survive the translation.

Examples:
  csvtrans questions.csv "French (France)"
  csvtrans questions.csv "Spanish (Spain)" "French (Canada)" -o ./translations
  csvtrans questions.csv --interactive
  csvtrans --list-languages`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.csvtrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory (default: next to the input file)")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Select target languages interactively")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List the built-in target language catalog")

	// Translation memory flags
	cmd.Flags().StringVar(&flags.MemoryFile, "memory", flags.MemoryFile, "Translation memory file")
	cmd.Flags().StringVar(&flags.MemoryBackend, "memory-backend", flags.MemoryBackend, "Translation memory backend (json or sqlite)")

	// Provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider (openai or gemini)")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model identifier (default: provider-specific)")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature for translation requests")
	cmd.Flags().IntVar(&flags.MaxRetries, "max-retries", flags.MaxRetries, "Retries for transient remote failures")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("memory.file", cmd.Flags().Lookup("memory"))
	viper.BindPFlag("memory.backend", cmd.Flags().Lookup("memory-backend"))
	viper.BindPFlag("translator.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translator.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translator.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("translator.max_retries", cmd.Flags().Lookup("max-retries"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".csvtrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".csvtrans")
	}

	// Environment variables
	viper.SetEnvPrefix("CSVTRANS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translator.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translator.gemini_key")
}

// GetAPIKey returns the credential for the configured provider
func GetAPIKey(provider string) string {
	if provider == "gemini" {
		return GetGeminiKey()
	}
	return GetOpenAIKey()
}
