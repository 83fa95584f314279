// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// TargetInfo contains standardized information about a redaction target
type TargetInfo struct {
	Name                  string   // Name of the target (e.g., "PHONES")
	Flag                  string   // Command-line flag that enables the target
	ShortDescription      string   // Short description for the targets list
	DetailedDescription   string   // Detailed description of what the target detects
	Patterns              []string // Shapes the target looks for
	FalsePositiveControls []string // Rules that keep lookalike text out of the plan
	Examples              []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetTargetInfo() TargetInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	noColor   bool
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		noColor:   noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"warning":  color.New(color.FgYellow),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetTargetInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("Bill Redactor - PDF Billing Statement Redaction Tool")
	fmt.Println("====================================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  bill-redactor -input <bill.pdf> -output <redacted.pdf> [targets] [options]")
	fmt.Println("  bill-redactor -input <bill.pdf> -extract  # Extract text only")
	fmt.Println()

	h.colors["header"].Println("TARGETS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  -pattern\t<text>\tRemove exact occurrences of text (repeatable)")
	fmt.Fprintln(w, "  -regex\t<pattern>\tRemove matches of a regular expression (repeatable)")
	fmt.Fprintln(w, "  -phones\t\tRemove North American (NANP) phone numbers")
	fmt.Fprintln(w, "  -account\t\tRemove 14-digit account numbers (9-5 grouped or contiguous)")
	fmt.Fprintln(w, "  -call-details\t\tRemove call-record time and location columns")
	fmt.Fprintln(w, "  -verizon\t\tShorthand for -account -phones -call-details")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("OPTIONS:")

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  -input\t<path>\tPath to the input PDF file (required)")
	fmt.Fprintln(w, "  -output\t<path>\tPath to the redacted output PDF (required unless -extract)")
	fmt.Fprintln(w, "  -extract\t\tPrint extracted text and exit (no redaction)")
	fmt.Fprintln(w, "  -max-hits\t<n>\tMaximum removals across the document (default: 100)")
	fmt.Fprintln(w, "  -config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  -profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  -list-profiles\t\tList available profiles in config file")
	fmt.Fprintln(w, "  -verbose\t\tDisplay a per-page removal summary")
	fmt.Fprintln(w, "  -debug\t\tEnable debug logging of extraction, planning, and removal")
	fmt.Fprintln(w, "  -no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  -version\t\tShow version information")
	fmt.Fprintln(w, "  -help\t\tShow this help message")
	fmt.Fprintln(w, "  -help targets\t\tList all available targets")
	fmt.Fprintln(w, "  -help <target>\t\tShow detailed help for a specific target")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    bill-redactor -input bill.pdf -output redacted.pdf -verizon")
	h.colors["example"].Println("    bill-redactor -input bill.pdf -output redacted.pdf -phones -verbose")
	fmt.Println("  Custom Targets:")
	h.colors["example"].Println("    bill-redactor -input bill.pdf -output redacted.pdf -pattern \"John Doe\" -pattern \"42 Main St\"")
	h.colors["example"].Println("    bill-redactor -input bill.pdf -output redacted.pdf -regex \"CUST-\\d+\"")
	fmt.Println("  Configuration and Profiles:")
	h.colors["example"].Println("    bill-redactor -input bill.pdf -output redacted.pdf -config bill-redactor.yaml -profile verizon")
	h.colors["example"].Println("    bill-redactor -list-profiles -config bill-redactor.yaml")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.config/bill-redactor/config.yaml")
	fmt.Println("  Project config: bill-redactor.yaml or .bill-redactor.yaml (in current directory)")
}

// ShowTargetsHelp displays information about all available targets
func (h *System) ShowTargetsHelp() {
	h.colors["title"].Println("Available Targets in Bill Redactor")
	fmt.Println("==================================")
	fmt.Println()
	fmt.Println("The following targets are available for detecting sensitive data:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  TARGET\tFLAG\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  ------\t----\t-----------")

	var names []string
	for _, provider := range h.providers {
		names = append(names, provider.GetTargetInfo().Name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := h.providers[strings.ToLower(name)].GetTargetInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\t%s\n", info.Flag, info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific target, use:")
	h.colors["example"].Println("  bill-redactor -help <target>")
}

// ShowTargetHelp displays detailed help for a specific target
func (h *System) ShowTargetHelp(targetName string) bool {
	provider, exists := h.providers[strings.ToLower(targetName)]
	if !exists {
		h.colors["negative"].Printf("Error: Target '%s' not found.\n", targetName)
		fmt.Println("Use 'bill-redactor -help targets' to see a list of available targets.")
		return false
	}

	info := provider.GetTargetInfo()

	h.colors["title"].Printf("%s Target\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+7))
	fmt.Println()
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.Patterns) > 0 {
		h.colors["header"].Println("PATTERNS DETECTED:")
		for _, pattern := range info.Patterns {
			fmt.Print("  - ")
			h.colors["item"].Println(pattern)
		}
		fmt.Println()
	}

	if len(info.FalsePositiveControls) > 0 {
		h.colors["header"].Println("FALSE POSITIVE CONTROLS:")
		for _, control := range info.FalsePositiveControls {
			fmt.Print("  - ")
			h.colors["item"].Println(control)
		}
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("EXAMPLES:")
		for _, example := range info.Examples {
			fmt.Print("  ")
			h.colors["example"].Println(example)
		}
	}

	return true
}
