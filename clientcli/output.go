package clientcli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Formatter formats results for output.
type Formatter interface {
	FormatText(w io.Writer, text string) error
	FormatSum(w io.Writer, result *SumResult) error
	FormatCipher(w io.Writer, result *CipherResult) error
	FormatLotto(w io.Writer, result *LottoResult) error
	FormatError(w io.Writer, err error) error
	FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error
	FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
// Quiet drops labels and prints only the answer.
type HumanFormatter struct {
	Quiet bool
}

// FormatText writes a plain server answer.
func (f *HumanFormatter) FormatText(w io.Writer, text string) error {
	_, _ = fmt.Fprintln(w, text)
	return nil
}

// FormatSum formats a sum result as human-readable text.
func (f *HumanFormatter) FormatSum(w io.Writer, result *SumResult) error {
	if f.Quiet {
		_, _ = fmt.Fprintln(w, formatFloat(result.Sum))
		return nil
	}
	_, _ = fmt.Fprintf(w, "%s + %s = %s\n", formatFloat(result.A), formatFloat(result.B), formatFloat(result.Sum))
	return nil
}

// FormatCipher formats a cipher result as human-readable text.
func (f *HumanFormatter) FormatCipher(w io.Writer, result *CipherResult) error {
	if f.Quiet {
		_, _ = fmt.Fprintln(w, result.Ciphertext)
		return nil
	}
	_, _ = fmt.Fprintf(w, "Shift:      %d\n", result.Shift)
	_, _ = fmt.Fprintf(w, "Ciphertext: %s\n", result.Ciphertext)
	return nil
}

// FormatLotto formats a lotto result as human-readable text.
func (f *HumanFormatter) FormatLotto(w io.Writer, result *LottoResult) error {
	if !f.Quiet {
		_, _ = fmt.Fprintf(w, "Your numbers:    %s\n", joinInts(result.Guesses))
		_, _ = fmt.Fprintf(w, "Winning numbers: %s\n", joinInts(result.WinningNumbers))
		_, _ = fmt.Fprintf(w, "Missed:          %d\n", len(result.Misses))
	}
	_, _ = fmt.Fprintln(w, result.Message)
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// FormatProfileList formats a list of profiles as human-readable text.
func (f *HumanFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	// Calculate column widths
	maxNameLen := 4 // "NAME"
	for i := range profiles {
		if len(profiles[i].Name) > maxNameLen {
			maxNameLen = len(profiles[i].Name)
		}
	}
	if maxNameLen > 20 {
		maxNameLen = 20
	}

	// Print header
	_, _ = fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "NAME", "ENDPOINT")
	_, _ = fmt.Fprintf(w, "  %s  %s\n", strings.Repeat("-", maxNameLen), strings.Repeat("-", 8))

	// Print profiles
	for i := range profiles {
		p := &profiles[i]
		marker := " "
		if p.Name == defaultName {
			marker = "*"
		}

		name := p.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s %-*s  %s\n", marker, maxNameLen, name, p.Endpoint)
	}

	return nil
}

// FormatProfileShow formats a single profile as human-readable text.
func (f *HumanFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	_, _ = fmt.Fprintf(w, "Name:     %s", profile.Name)
	if isDefault {
		_, _ = fmt.Fprintf(w, " (default)")
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Endpoint: %s\n", profile.Endpoint)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatText formats a plain server answer as JSON.
func (f *JSONFormatter) FormatText(w io.Writer, text string) error {
	output := struct {
		Result string `json:"result"`
	}{
		Result: text,
	}
	return writeJSON(w, output)
}

// FormatSum formats a sum result as JSON.
func (f *JSONFormatter) FormatSum(w io.Writer, result *SumResult) error {
	return writeJSON(w, result)
}

// FormatCipher formats a cipher result as JSON.
func (f *JSONFormatter) FormatCipher(w io.Writer, result *CipherResult) error {
	return writeJSON(w, result)
}

// FormatLotto formats a lotto result as JSON.
func (f *JSONFormatter) FormatLotto(w io.Writer, result *LottoResult) error {
	return writeJSON(w, result)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

// FormatProfileList formats a list of profiles as JSON.
func (f *JSONFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	type jsonProfile struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		Default  bool   `json:"default,omitempty"`
	}

	output := struct {
		Profiles []jsonProfile `json:"profiles"`
	}{
		Profiles: make([]jsonProfile, len(profiles)),
	}

	for i := range profiles {
		output.Profiles[i] = jsonProfile{
			Name:     profiles[i].Name,
			Endpoint: profiles[i].Endpoint,
			Default:  profiles[i].Name == defaultName,
		}
	}

	return writeJSON(w, output)
}

// FormatProfileShow formats a single profile as JSON.
func (f *JSONFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	output := struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		Default  bool   `json:"default"`
	}{
		Name:     profile.Name,
		Endpoint: profile.Endpoint,
		Default:  isDefault,
	}
	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
