package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/csvtrans/internal/cli"
	"codeberg.org/snonux/csvtrans/internal/languages"
	"codeberg.org/snonux/csvtrans/internal/memory"
	"codeberg.org/snonux/csvtrans/internal/models"
	"codeberg.org/snonux/csvtrans/internal/processor"
	"codeberg.org/snonux/csvtrans/internal/translator"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-languages flag
	if flags.ListLanguages {
		languages.PrintCatalog(os.Stdout)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if len(args) == 0 {
		return fmt.Errorf("no input file given, see --help")
	}
	inputPath := args[0]

	// Target languages come from the arguments or the interactive menu
	targets := args[1:]
	if flags.Interactive || len(targets) == 0 {
		var err error
		targets, err = languages.Select(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	// Settings are resolved through viper so config file values take
	// effect; explicitly set flags still win via the pflag binding
	providerName := viper.GetString("translator.provider")
	if providerName == "" {
		providerName = flags.Provider
	}
	memoryFile := viper.GetString("memory.file")
	if memoryFile == "" {
		memoryFile = flags.MemoryFile
	}
	memoryBackend := viper.GetString("memory.backend")
	if memoryBackend == "" {
		memoryBackend = flags.MemoryBackend
	}

	// Default the output directory to the input file's directory
	outputDir := viper.GetString("output.directory")
	if outputDir == "" {
		outputDir = flags.OutputDir
	}
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}

	fmt.Printf("Input file: %s\n", inputPath)
	fmt.Printf("Target languages: %v\n", targets)

	model := viper.GetString("translator.model")
	if model == "" {
		model = flags.Model
	}
	temperature := flags.Temperature
	if viper.IsSet("translator.temperature") {
		temperature = viper.GetFloat64("translator.temperature")
	}
	maxRetries := flags.MaxRetries
	if viper.IsSet("translator.max_retries") {
		maxRetries = viper.GetInt("translator.max_retries")
	}

	provider, err := translator.NewProvider(&translator.Config{
		Provider:    providerName,
		APIKey:      cli.GetAPIKey(providerName),
		Model:       model,
		Temperature: float32(temperature),
		MaxRetries:  maxRetries,
	})
	if err != nil {
		return err
	}

	store, err := memory.NewStore(&memory.Config{
		Backend: memoryBackend,
		Path:    memoryFile,
	})
	if err != nil {
		return err
	}

	// Interrupts cancel the run between cells; translations already in
	// memory are flushed below
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proc := processor.New(provider, store, outputDir)
	runErr := proc.Run(ctx, inputPath, targets)

	if err := store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save translation memory: %v\n", err)
	}

	if runErr != nil {
		return runErr
	}

	fmt.Printf("\nDone! Translations saved to: %s\n", outputDir)
	return nil
}
