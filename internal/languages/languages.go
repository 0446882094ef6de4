// Package languages holds the catalog of well-known target languages and
// the interactive selection menu. Regional variants are separate entries
// and are never merged.
package languages

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Catalog lists the well-known target language identifiers, in menu order
var Catalog = []string{
	"Spanish (Spain)",
	"Spanish (Latin America)",
	"French (France)",
	"French (Canada)",
	"German",
	"Italian",
	"Portuguese (Brazil)",
	"Portuguese (Portugal)",
	"Chinese (Simplified)",
	"Chinese (Traditional)",
	"Japanese",
	"Korean",
	"Arabic",
	"Russian",
	"Dutch",
	"Polish",
}

// PrintCatalog writes the numbered language menu to w
func PrintCatalog(w io.Writer) {
	fmt.Fprintln(w, "\nAvailable languages (enter numbers separated by commas):")
	for i, lang := range Catalog {
		fmt.Fprintf(w, "%d. %s\n", i+1, lang)
	}
	fmt.Fprintf(w, "%d. Custom (enter language name)\n", len(Catalog)+1)
}

// Select runs the interactive language menu, reading the selection from r
// and writing prompts to w. Entries may be menu numbers, the custom
// option, or free-form language names; at least one language must result.
func Select(r io.Reader, w io.Writer) ([]string, error) {
	PrintCatalog(w)

	scanner := bufio.NewScanner(r)

	fmt.Fprint(w, "\nEnter your selection: ")
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read selection: %w", err)
		}
		return nil, fmt.Errorf("no selection made")
	}
	selection := strings.TrimSpace(scanner.Text())
	if selection == "" {
		return nil, fmt.Errorf("no selection made")
	}

	customOption := fmt.Sprintf("%d", len(Catalog)+1)

	var selected []string
	for _, part := range strings.Split(selection, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if part == customOption {
			fmt.Fprint(w, "Enter custom language name: ")
			if !scanner.Scan() {
				continue
			}
			if custom := strings.TrimSpace(scanner.Text()); custom != "" {
				selected = append(selected, custom)
			}
			continue
		}

		if index, ok := menuIndex(part); ok {
			selected = append(selected, Catalog[index])
		} else {
			// Free-form entry, take it as a custom language name
			selected = append(selected, part)
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no valid languages selected")
	}

	return selected, nil
}

// menuIndex maps a menu number string to a Catalog index
func menuIndex(part string) (int, bool) {
	n := 0
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		// Anything past the catalog is a custom entry; bailing out
		// here also keeps long digit strings from overflowing
		if n > len(Catalog) {
			return 0, false
		}
	}
	if n < 1 {
		return 0, false
	}
	return n - 1, true
}
