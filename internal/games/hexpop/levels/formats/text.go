package formats

import (
	"strconv"
	"strings"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Colors   int // Shooter palette size; 0 means derive from the grid
	Grid     Grid
	Metadata map[string]string
}

// ParseText parses a plain text level.
// Lines starting with '#' are comments; comments of the form "# key: value"
// become metadata, and the keys id, name and colors fill the level header.
// Everything else is the cell grid; a comment line inside the grid reads
// as an empty row.
func ParseText(data []byte) (Level, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	level := Level{Metadata: make(map[string]string)}
	var body []string
	firstLine := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			key, value, ok := strings.Cut(strings.TrimPrefix(trimmed, "#"), ":")
			if ok {
				level.Metadata[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
			}
			// Keep comment positions blank so grid line numbers stay exact.
			line = ""
		}
		if firstLine == 0 && line != "" {
			firstLine = i + 1
		}
		if firstLine != 0 {
			body = append(body, line)
		}
	}
	if firstLine == 0 {
		firstLine = 1
	}

	grid, err := ParseGrid(strings.Join(body, "\n"), firstLine)
	if err != nil {
		return Level{}, err
	}
	level.Grid = grid

	level.ID = level.Metadata["id"]
	level.Name = level.Metadata["name"]
	if c, err := strconv.Atoi(level.Metadata["colors"]); err == nil {
		level.Colors = c
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".lvl", ".yaml", ".yml"}
}
