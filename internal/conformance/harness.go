// Package conformance checks the registered record kinds against schema
// fixtures: YAML/JSON files declaring, for each kind, its schema title,
// discriminator literal, property set, and example payloads. The harness
// introspects the kind registry, so a profile package only needs to
// register its kinds to be covered.
package conformance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ga4gh/va-spec-go/internal/config"
	"github.com/ga4gh/va-spec-go/pkg/vaspec"

	_ "github.com/ga4gh/va-spec-go/pkg/vaspec/aac2017"
	_ "github.com/ga4gh/va-spec-go/pkg/vaspec/acmg2015"
	_ "github.com/ga4gh/va-spec-go/pkg/vaspec/ccv2022"
)

// Example is one fixture payload with its expected construction outcome.
type Example struct {
	Description string         `yaml:"description" json:"description"`
	Payload     map[string]any `yaml:"payload" json:"payload"`
	Valid       bool           `yaml:"valid" json:"valid"`
}

// Fixture declares the schema facts checked for one record kind.
type Fixture struct {
	Name       string    `yaml:"name" json:"name"`
	Type       string    `yaml:"type" json:"type"`
	Properties []string  `yaml:"properties" json:"properties"`
	Examples   []Example `yaml:"examples" json:"examples"`
}

// Failure describes one conformance check failure.
type Failure struct {
	Kind   string
	Check  string
	Detail string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Kind, f.Check, f.Detail)
}

// Report aggregates a harness run.
type Report struct {
	FixturesChecked int
	ExamplesChecked int
	Failures        []Failure
}

// OK reports whether the run found no failures.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Harness runs conformance checks for a fixture directory.
type Harness struct {
	cfg *config.ConformanceConfig
	log *logrus.Logger
}

// NewHarness creates a harness for the given configuration.
func NewHarness(cfg *config.ConformanceConfig, log *logrus.Logger) *Harness {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Harness{cfg: cfg, log: log}
}

// Run loads every fixture in the configured directory and checks it
// against the kind registry.
func (h *Harness) Run() (*Report, error) {
	fixtures, err := h.LoadFixtures()
	if err != nil {
		return nil, err
	}
	report := &Report{}
	for _, fixture := range fixtures {
		h.checkFixture(fixture, report)
	}
	h.log.WithFields(logrus.Fields{
		"fixtures": report.FixturesChecked,
		"examples": report.ExamplesChecked,
		"failures": len(report.Failures),
	}).Info("conformance run complete")
	return report, nil
}

// LoadFixtures reads every .yaml/.yml/.json fixture under the configured
// fixture directory.
func (h *Harness) LoadFixtures() ([]Fixture, error) {
	var fixtures []Fixture
	err := filepath.WalkDir(h.cfg.FixtureDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read fixture %s: %w", path, err)
		}
		var fixture Fixture
		if ext == ".json" {
			err = json.Unmarshal(data, &fixture)
		} else {
			err = yaml.Unmarshal(data, &fixture)
		}
		if err != nil {
			return fmt.Errorf("failed to parse fixture %s: %w", path, err)
		}
		fixtures = append(fixtures, fixture)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })
	return fixtures, nil
}

func (h *Harness) checkFixture(fixture Fixture, report *Report) {
	report.FixturesChecked++
	log := h.log.WithField("kind", fixture.Name)

	kind, ok := vaspec.LookupKind(fixture.Name)
	if !ok {
		report.Failures = append(report.Failures, Failure{
			Kind:   fixture.Name,
			Check:  "registration",
			Detail: "kind is not registered",
		})
		log.Warn("fixture names an unregistered kind")
		return
	}

	if kind.Type != fixture.Type {
		report.Failures = append(report.Failures, Failure{
			Kind:   fixture.Name,
			Check:  "discriminator",
			Detail: fmt.Sprintf("registry declares %q, fixture declares %q", kind.Type, fixture.Type),
		})
	}

	if missing, extra := diffFields(fixture.Properties, kind.Fields); len(missing) > 0 || len(extra) > 0 {
		report.Failures = append(report.Failures, Failure{
			Kind:  fixture.Name,
			Check: "field-set",
			Detail: fmt.Sprintf("missing from registry: %v, not in schema: %v",
				missing, extra),
		})
	}

	for i, example := range fixture.Examples {
		report.ExamplesChecked++
		h.checkExample(fixture.Name, kind, i, example, report)
	}
}

func (h *Harness) checkExample(name string, kind vaspec.Kind, index int, example Example, report *Report) {
	payload, err := json.Marshal(example.Payload)
	if err != nil {
		report.Failures = append(report.Failures, Failure{
			Kind:   name,
			Check:  fmt.Sprintf("example[%d]", index),
			Detail: fmt.Sprintf("payload does not encode: %v", err),
		})
		return
	}
	record, err := kind.Parse(payload)
	if example.Valid && err != nil {
		report.Failures = append(report.Failures, Failure{
			Kind:   name,
			Check:  fmt.Sprintf("example[%d]", index),
			Detail: fmt.Sprintf("valid payload rejected: %v", err),
		})
		return
	}
	if !example.Valid {
		if err == nil {
			report.Failures = append(report.Failures, Failure{
				Kind:   name,
				Check:  fmt.Sprintf("example[%d]", index),
				Detail: "invalid payload accepted",
			})
		}
		return
	}
	// Discriminator fidelity: a constructed record always carries its
	// registered literal, whether or not the payload supplied one.
	serialized, err := json.Marshal(record)
	if err != nil {
		report.Failures = append(report.Failures, Failure{
			Kind:   name,
			Check:  fmt.Sprintf("example[%d]", index),
			Detail: fmt.Sprintf("constructed record does not serialize: %v", err),
		})
		return
	}
	var doc map[string]any
	if err := json.Unmarshal(serialized, &doc); err != nil {
		report.Failures = append(report.Failures, Failure{
			Kind:   name,
			Check:  fmt.Sprintf("example[%d]", index),
			Detail: fmt.Sprintf("serialized record is not an object: %v", err),
		})
		return
	}
	if doc["type"] != kind.Type {
		report.Failures = append(report.Failures, Failure{
			Kind:   name,
			Check:  fmt.Sprintf("example[%d]", index),
			Detail: fmt.Sprintf("constructed type is %v, want %q", doc["type"], kind.Type),
		})
	}
	if h.cfg.Strict {
		for field := range doc {
			if !contains(kind.Fields, field) {
				report.Failures = append(report.Failures, Failure{
					Kind:   name,
					Check:  fmt.Sprintf("example[%d]", index),
					Detail: fmt.Sprintf("serialized field %q is not in the registered field set", field),
				})
			}
		}
	}
}

// diffFields compares a fixture's property set against the registered
// field set, returning schema properties missing from the registry and
// registered fields absent from the schema.
func diffFields(schema, registered []string) (missing, extra []string) {
	for _, f := range schema {
		if !contains(registered, f) {
			missing = append(missing, f)
		}
	}
	for _, f := range registered {
		if !contains(schema, f) {
			extra = append(extra, f)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
