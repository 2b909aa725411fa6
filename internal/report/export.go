package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats returns the supported export formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
}

// Ext returns the file extension used when saving in this format.
func (f Format) Ext() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatText:
		return WriteText(w, r)
	}
	return fmt.Errorf("unknown report format %q", f)
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}
	return nil
}

// WriteYAML writes r as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report yaml: %w", err)
	}
	return enc.Close()
}

// WriteText writes a plain-text rendition of r suitable for sharing.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	b.WriteString("Excel Skills Assessment Report\n")
	b.WriteString("==============================\n\n")

	c := r.Candidate
	if c.Name != "" {
		fmt.Fprintf(&b, "Candidate:   %s\n", c.Name)
	}
	if c.Email != "" {
		fmt.Fprintf(&b, "Email:       %s\n", c.Email)
	}
	if c.Position != "" {
		fmt.Fprintf(&b, "Position:    %s\n", c.Position)
	}
	if c.Experience != "" {
		fmt.Fprintf(&b, "Experience:  %s\n", c.Experience.Label())
	}
	if r.SessionID != "" {
		fmt.Fprintf(&b, "Session:     %s\n", r.SessionID)
	}
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "Generated:   %s\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	}

	fmt.Fprintf(&b, "\nOverall score:  %d/100\n", r.OverallScore)
	fmt.Fprintf(&b, "Recommendation: %s\n", r.Recommendation)

	b.WriteString("\nPerformance by category\n")
	writeGroups(&b, r.CategoryAverages)
	b.WriteString("\nPerformance by difficulty\n")
	writeGroups(&b, r.DifficultyAverages)

	b.WriteString("\nKey strengths\n")
	writeList(&b, r.Strengths, r.StrengthsNote())
	b.WriteString("\nAreas for improvement\n")
	writeList(&b, r.Improvements, r.ImprovementsNote())

	if len(r.Responses) > 0 {
		b.WriteString("\nResponses\n")
		for i, e := range r.Responses {
			ev := e.Evaluation
			fmt.Fprintf(&b, "\n%d. [%s, %s] %s\n", i+1, e.Category, e.Difficulty, e.Question)
			fmt.Fprintf(&b, "   Answer: %s\n", e.Answer)
			fmt.Fprintf(&b, "   Score %d (concept %d, detail %d, structure %d, example %d), keywords %d/%d\n",
				ev.Score, ev.ConceptScore, ev.DetailScore, ev.StructureScore, ev.ExampleScore,
				ev.KeywordMatches, ev.TotalKeywords)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report text: %w", err)
	}
	return nil
}

func writeGroups(b *strings.Builder, groups []GroupAverage) {
	width := 0
	for _, g := range groups {
		width = max(width, len(g.Label))
	}
	for _, g := range groups {
		fmt.Fprintf(b, "  %-*s  %3d%%  (%d)\n", width, g.Label, g.Average, g.Count)
	}
}

func writeList(b *strings.Builder, items []string, fallback string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "  %s\n", fallback)
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
