package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank file format major version this build understands.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned when a bank file declares a version this
// build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

//go:embed bank.schema.json
var bankSchemaJSON []byte

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

// bankFile is the on-disk layout of a question bank (YAML or JSON).
type bankFile struct {
	Version   string     `yaml:"version"`
	Questions []Question `yaml:"questions"`
}

// LoadFile reads a bank file from disk. See Parse.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML or JSON question bank, checks it against the bank
// schema and version, and runs the same validation as the compiled-in seed.
func Parse(data []byte) (*Bank, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	if err := validateAgainstSchema(doc); err != nil {
		return nil, err
	}

	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	return New(f.Version, f.Questions)
}

// checkVersion accepts any valid semantic version with the supported major.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}

func validateAgainstSchema(doc any) error {
	schema, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	// The validator wants JSON-shaped values (json.Number for numbers), so
	// round-trip the YAML document through JSON.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("bank is not JSON-compatible: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("re-read bank: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("bank schema validation failed: %w", err)
	}
	return nil
}

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(bankSchemaJSON))
		if err != nil {
			bankSchemaErr = err
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://question-bank.json"
		if err := c.AddResource(url, def); err != nil {
			bankSchemaErr = err
			return
		}
		bankSchema, bankSchemaErr = c.Compile(url)
	})
	return bankSchema, bankSchemaErr
}
