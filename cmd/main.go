// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"bill-redactor/internal/config"
	"bill-redactor/internal/help"
	"bill-redactor/internal/matchers/account"
	"bill-redactor/internal/matchers/calldetail"
	"bill-redactor/internal/matchers/phone"
	"bill-redactor/internal/observability"
	"bill-redactor/internal/pdfengine"
	"bill-redactor/internal/redact"
	"bill-redactor/internal/version"
)

// multiFlag collects repeated occurrences of a string flag
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	// Load configuration (will use defaults if file not found)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("") // Load default config
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	verbose bool
	debug   bool
	noColor bool
	maxHits int
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	verbose bool
	debug   bool
	noColor bool
	maxHits int

	// profileTargets carries the active profile's target list, applied
	// only when no target flags are set
	profileTargets []string
}

// resolveConfiguration resolves final configuration values from config file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Verbose
	final.verbose = false // default fallback
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false // default fallback
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false // default fallback
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Max hits
	final.maxHits = 100 // default fallback
	if cfg != nil && cfg.Defaults.MaxHits > 0 {
		final.maxHits = cfg.Defaults.MaxHits
	}
	if activeProfile != nil && activeProfile.MaxHits > 0 {
		final.maxHits = activeProfile.MaxHits
	}
	if isFlagSet("max-hits") && flags.maxHits > 0 {
		final.maxHits = flags.maxHits
	}

	if activeProfile != nil {
		final.profileTargets = activeProfile.Targets
	}

	return final
}

// handleProfiles handles profile listing and selection
func handleProfiles(cfg *config.Config, listProfiles bool, profileName, configFile string) *config.Profile {
	if listProfiles {
		if len(cfg.ListProfiles()) == 0 {
			fmt.Println("No profiles found in configuration")
		} else {
			fmt.Println("Available profiles:")
			for _, name := range cfg.ListProfiles() {
				profile := cfg.GetProfile(name)
				if profile.Description != "" {
					fmt.Printf("  %s - %s\n", name, profile.Description)
				} else {
					fmt.Printf("  %s\n", name)
				}
			}
		}
		os.Exit(0)
	}

	if profileName == "" {
		return nil
	}

	profile := cfg.GetProfile(profileName)
	if profile == nil {
		fmt.Fprintf(os.Stderr, "Error: Profile '%s' not found", profileName)
		if configFile != "" {
			fmt.Fprintf(os.Stderr, " in %s", configFile)
		}
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Use -list-profiles to see available profiles")
		os.Exit(1)
	}

	return profile
}

// targetFlags holds the target selection flags
type targetFlags struct {
	patterns    []string
	regexes     []string
	phones      bool
	account     bool
	callDetails bool
	verizon     bool
}

// anySet reports whether at least one target flag was given
func (tf *targetFlags) anySet() bool {
	return len(tf.patterns) > 0 || len(tf.regexes) > 0 ||
		tf.phones || tf.account || tf.callDetails || tf.verizon
}

// buildTargets converts target flags into the redaction target list.
// Order is stable: patterns, regexes, then the named targets. The
// verizon shorthand expands in place and ignores redundant individual
// flags for targets it already covers.
func buildTargets(tf *targetFlags, cfg *config.Config) ([]redact.Target, error) {
	var targets []redact.Target

	for _, pattern := range tf.patterns {
		targets = append(targets, redact.NewLiteralTarget(pattern))
	}

	for _, expr := range tf.regexes {
		target, err := redact.NewRegexTarget(expr)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	accountTarget := func() redact.Target {
		if cfg != nil {
			return redact.NewAccountTargetWithOptions(
				cfg.Matchers.Account.Keywords,
				cfg.Matchers.Account.LookbackLines)
		}
		return redact.NewAccountTarget()
	}

	if tf.verizon {
		targets = append(targets, accountTarget(),
			redact.NewPhoneNumbersTarget(), redact.NewCallDetailsTarget())
		return targets, nil
	}

	if tf.account {
		targets = append(targets, accountTarget())
	}
	if tf.phones {
		targets = append(targets, redact.NewPhoneNumbersTarget())
	}
	if tf.callDetails {
		targets = append(targets, redact.NewCallDetailsTarget())
	}

	return targets, nil
}

// targetsFromProfile maps a profile's target names onto target flags
func targetsFromProfile(names []string) *targetFlags {
	tf := &targetFlags{}
	for _, name := range names {
		switch name {
		case "account":
			tf.account = true
		case "phones":
			tf.phones = true
		case "call-details":
			tf.callDetails = true
		case "verizon":
			tf.verizon = true
		}
	}
	return tf
}

func main() {
	// Parse command line flags
	inputFile := flag.String("input", "", "Path to the input PDF file")
	outputFile := flag.String("output", "", "Path to the redacted output PDF")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")

	var patterns multiFlag
	var regexes multiFlag
	flag.Var(&patterns, "pattern", "Remove exact occurrences of text (repeatable)")
	flag.Var(&regexes, "regex", "Remove matches of a regular expression (repeatable)")
	phonesFlag := flag.Bool("phones", false, "Remove North American (NANP) phone numbers")
	accountFlag := flag.Bool("account", false, "Remove 14-digit account numbers")
	callDetailsFlag := flag.Bool("call-details", false, "Remove call-record time and location columns")
	verizonFlag := flag.Bool("verizon", false, "Shorthand for -account -phones -call-details")

	maxHits := flag.Int("max-hits", 100, "Maximum removals across the document")
	extractOnly := flag.Bool("extract", false, "Print extracted text and exit (no redaction)")
	verbose := flag.Bool("verbose", false, "Display a per-page removal summary")
	debug := flag.Bool("debug", false, "Enable debug logging of extraction, planning, and removal")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stderr) || os.Getenv("CI") != "" {
		*noColor = true
	}

	// Create debug observer early for configuration logging
	var mainDebugObs *observability.DebugObserver
	if *debug {
		mainDebugObs = observability.NewDebugObserver(os.Stderr)
		mainDebugObs.LogDetail("main", fmt.Sprintf("Command line arguments: %v", os.Args))
	}

	// Load configuration
	cfg := loadConfiguration(*configFile)

	// Handle profile operations
	activeProfile := handleProfiles(cfg, *listProfiles, *profileName, *configFile)

	// Resolve final configuration values
	finalConfig := resolveConfiguration(cfg, activeProfile, &configFlags{
		verbose: *verbose,
		debug:   *debug,
		noColor: *noColor,
		maxHits: *maxHits,
	})

	if finalConfig.noColor {
		color.NoColor = true
	}

	// Handle version command
	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Handle help commands
	if *showHelp {
		helpSystem := help.NewSystem(finalConfig.noColor)
		helpSystem.RegisterProvider(phone.NewMatcher())
		helpSystem.RegisterProvider(account.NewMatcher())
		helpSystem.RegisterProvider(calldetail.NewMatcher())

		args := flag.Args()
		if len(args) == 0 {
			helpSystem.ShowGeneralHelp()
			return
		} else if len(args) == 1 {
			if strings.ToLower(args[0]) == "targets" {
				helpSystem.ShowTargetsHelp()
				return
			}
			if helpSystem.ShowTargetHelp(args[0]) {
				return
			}
			os.Exit(1)
		} else {
			fmt.Println("Error: Too many arguments for help command")
			fmt.Println("Use 'bill-redactor -help', 'bill-redactor -help targets', or 'bill-redactor -help <target>'")
			os.Exit(1)
		}
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: Input file is required")
		fmt.Fprintln(os.Stderr, "Use 'bill-redactor -help' for usage information")
		os.Exit(1)
	}

	// Build the service
	level := observability.LevelOff
	if finalConfig.verbose {
		level = observability.LevelMetrics
	}
	if finalConfig.debug {
		level = observability.LevelDebug
	}
	observer := observability.NewObserver(level, os.Stderr)
	observer.DebugObserver = mainDebugObs

	engine := pdfengine.NewEngine()
	strategy := redact.NewSecureStrategy().
		WithMaxHits(finalConfig.maxHits).
		WithVerbose(finalConfig.verbose)
	strategy.SetObserver(observer)

	service := redact.NewService(engine, strategy)
	service.SetObserver(observer)

	// Extract-only mode
	if *extractOnly {
		if *outputFile != "" {
			fmt.Fprintln(os.Stderr, "Error: -extract cannot be used with -output")
			fmt.Fprintln(os.Stderr, "Extract mode outputs directly to stdout.")
			os.Exit(1)
		}
		text, err := service.ExtractText(*inputFile)
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	if *outputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: Output file is required")
		fmt.Fprintln(os.Stderr, "Use 'bill-redactor -help' for usage information")
		os.Exit(1)
	}

	// Assemble targets: flags win, otherwise the active profile decides
	tf := &targetFlags{
		patterns:    patterns,
		regexes:     regexes,
		phones:      *phonesFlag,
		account:     *accountFlag,
		callDetails: *callDetailsFlag,
		verizon:     *verizonFlag,
	}
	if !tf.anySet() && len(finalConfig.profileTargets) > 0 {
		tf = targetsFromProfile(finalConfig.profileTargets)
	}

	targets, err := buildTargets(tf, cfg)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if mainDebugObs != nil {
		for _, target := range targets {
			mainDebugObs.LogDetail("main", fmt.Sprintf("Target: %s", target.Describe()))
		}
	}

	result, err := service.Redact(*inputFile, *outputFile, targets)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	printSummary(result, *outputFile, finalConfig.verbose)
}

// printSummary reports the outcome of a redaction run
func printSummary(result *redact.Result, outputPath string, verbose bool) {
	success := color.New(color.FgGreen)
	warning := color.New(color.FgYellow)

	success.Printf("Redacted %d instance(s) across %d page(s)\n",
		result.InstancesRemoved, result.PagesModified)
	fmt.Printf("Output written to %s\n", outputPath)

	if verbose {
		fmt.Printf("Pages processed: %d\n", result.PagesProcessed)
		fmt.Printf("Plan entries: %d\n", result.PlanEntries)
		if result.PlanEntries > result.InstancesRemoved {
			warning.Printf("Note: %d planned literal(s) could not be lined up in the content streams\n",
				result.PlanEntries-result.InstancesRemoved)
		}
	}

	if result.Truncated {
		warning.Println("Warning: removal plan was truncated at the max-hits ceiling; the output may retain sensitive text")
		warning.Println("Re-run with a higher -max-hits value to remove everything")
	}
}

// printError reports a failure with the page context structured errors carry
func printError(err error) {
	errColor := color.New(color.FgRed)
	errColor.Fprintf(os.Stderr, "Error: %v\n", err)

	if redact.IsKind(err, redact.ErrorNoTargets) {
		fmt.Fprintln(os.Stderr, "Specify at least one target: -pattern, -regex, -phones, -account, -call-details, or -verizon")
	}
}

// isFlagSet checks whether a flag was explicitly provided on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
