// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/priyansh/legal-doc-agent/internal/assemble"
	"github.com/priyansh/legal-doc-agent/internal/styles"
	"github.com/priyansh/legal-doc-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedData outputs the metadata fields pulled from the scenario.
func (p *Printer) PrintExtractedData(data types.ExtractedData, filled []string) {
	if len(data) == 0 {
		return
	}

	var sb strings.Builder
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := data[key]
		if value == "" {
			value = "(blank)"
		}
		sb.WriteString(fmt.Sprintf("%-14s %s\n", key+":", value))
	}

	if len(filled) > 0 {
		sb.WriteString(fmt.Sprintf("\nFilled with defaults: %s", strings.Join(filled, ", ")))
	}

	p.printBox("EXTRACTED SCENARIO DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStyleProfile outputs the resolved style profile.
func (p *Printer) PrintStyleProfile(profile styles.Profile) {
	if len(profile) == 0 {
		return
	}

	var sb strings.Builder
	names := make([]string, 0, len(profile))
	for name := range profile {
		names = append(names, name)
	}
	sort.Strings(names)

	count := min(len(names), maxItemsToShow)
	for i := 0; i < count; i++ {
		spec := profile[names[i]]
		sb.WriteString(fmt.Sprintf("%-12s %s %g pt, %s\n", names[i], spec.Font, spec.Size, spec.Align))
	}
	if len(names) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more styles", len(names)-maxItemsToShow))
	}

	p.printBox("RESOLVED STYLE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInstructions outputs a summary of the assembled render instructions.
func (p *Printer) PrintInstructions(instructions []assemble.RenderInstruction) {
	if len(instructions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total instructions: %d\n\n", len(instructions)))

	count := min(len(instructions), maxItemsToShow)
	for i := 0; i < count; i++ {
		inst := instructions[i]
		text := inst.Text
		if inst.Kind == assemble.KindSignatureBlock && inst.Signature != nil {
			if inst.Signature.Single {
				text = "single-party block"
			} else {
				text = "dual-party block"
			}
		}
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-16s %s\n", inst.Kind, text))
	}
	if len(instructions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(instructions)-maxItemsToShow))
	}

	p.printBox("RENDER INSTRUCTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the final metadata for a completed run.
func (p *Printer) PrintRunSummary(metadata *types.GenerationMetadata) {
	if metadata == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:        %s\n", metadata.Category))
	sb.WriteString(fmt.Sprintf("Language:    %s\n", metadata.Language))
	sb.WriteString(fmt.Sprintf("Sections:    %d\n", metadata.SectionsGenerated))
	sb.WriteString(fmt.Sprintf("Translation: %s\n", metadata.TranslationStatus))
	sb.WriteString(fmt.Sprintf("Duration:    %dms\n", metadata.ProcessingTimeMS))
	sb.WriteString(fmt.Sprintf("Output:      %s", metadata.FinalFilename))

	p.printBox("DOCUMENT GENERATION COMPLETE", sb.String())
}
