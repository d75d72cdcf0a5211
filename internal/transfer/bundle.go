package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BundleVersion is written into every export.
const BundleVersion = 1

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (expected json or yaml)", s)
}

// FormatFromPath picks the format from the file extension; unknown
// extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Bundle is the portable form of the record store. Dates are kept as raw
// strings so a bundle exported from another backend can be inspected even
// when some dates are malformed.
type Bundle struct {
	Version    int               `json:"version" yaml:"version"`
	ExportedAt string            `json:"exported_at,omitempty" yaml:"exported_at,omitempty"`
	Records    []RecordImport    `json:"records" yaml:"records"`
	Equipment  []EquipmentImport `json:"equipment" yaml:"equipment"`
	Checklists []ChecklistImport `json:"checklists" yaml:"checklists"`
}

// RecordImport is a risk assessment, CPP or first-aid kit.
type RecordImport struct {
	Ref        string  `json:"ref" yaml:"ref"`
	Kind       string  `json:"kind" yaml:"kind"`
	Name       string  `json:"name" yaml:"name"`
	Reference  string  `json:"reference,omitempty" yaml:"reference,omitempty"`
	TargetDate *string `json:"target_date,omitempty" yaml:"target_date,omitempty"`
	Notes      string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type EquipmentImport struct {
	Ref            string  `json:"ref" yaml:"ref"`
	Name           string  `json:"name" yaml:"name"`
	SerialNumber   string  `json:"serial_number,omitempty" yaml:"serial_number,omitempty"`
	Location       string  `json:"location,omitempty" yaml:"location,omitempty"`
	CalibrationDue *string `json:"calibration_due,omitempty" yaml:"calibration_due,omitempty"`
	ServiceDue     *string `json:"service_due,omitempty" yaml:"service_due,omitempty"`
}

// ChecklistImport references its equipment by the equipment's ref.
type ChecklistImport struct {
	Ref          string `json:"ref" yaml:"ref"`
	EquipmentRef string `json:"equipment_ref" yaml:"equipment_ref"`
	CheckDate    string `json:"check_date" yaml:"check_date"`
	Frequency    string `json:"frequency" yaml:"frequency"`
	Passed       *bool  `json:"passed,omitempty" yaml:"passed,omitempty"`
	Inspector    string `json:"inspector,omitempty" yaml:"inspector,omitempty"`
	Notes        string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Load reads a bundle file, choosing the decoder by extension.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, FormatFromPath(path))
}

func Decode(data []byte, f Format) (*Bundle, error) {
	var b Bundle
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("parsing yaml bundle: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("parsing json bundle: %w", err)
		}
	}
	return &b, nil
}

func Encode(w io.Writer, b *Bundle, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encoding yaml bundle: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encoding json bundle: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q", f)
}
