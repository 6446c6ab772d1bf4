package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/mortgage-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// allFormats are written by the "all" pseudo-format.
var allFormats = []string{"console", "csv", "detailed-csv", "json", "html", "pdf"}

// GenerateReport writes the report in the given format into dir and returns the files written.
// The "all" format writes every file-oriented formatter; an ARM run adds the trial CSV.
func GenerateReport(report *domain.SimulationReport, format, dir string) ([]string, error) {
	if report == nil {
		return nil, domain.NewInputError("report", "is nil")
	}
	if NormalizeFormatName(format) == "all" {
		formats := allFormats
		if report.Arm != nil {
			formats = append(append([]string(nil), allFormats...), "arm-csv")
		}
		var written []string
		for _, name := range formats {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir, ExtensionFor(name))
			if err != nil {
				return written, fmt.Errorf("%s report: %w", name, err)
			}
			written = append(written, path)
		}
		return written, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	path, err := WriteFormatted(f, report, dir, ExtensionFor(format))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
