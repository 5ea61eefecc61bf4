// Package vocab holds the controlled vocabulary registry: the permitted
// coded values for each guideline system, broken down by semantic field
// category. The registry is built once at package initialization and is
// read-only afterwards; derived registries with overlay rows can be created
// before first use via WithOverlay.
package vocab

import "fmt"

// System identifies a guideline code system. The literal values are the
// exact `primaryCoding.system` strings required on profile-bound fields.
type System string

const (
	ACMG       System = "ACMG Guidelines, 2015"
	AMPAscoCap System = "AMP/ASCO/CAP (AAC) Guidelines, 2017"
	ClinGen    System = "ClinGen Low Penetrance and Risk Allele Recommendations, 2024"
	CCV        System = "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022"
)

// Category identifies the semantic field category a permitted code set
// applies to.
type Category string

const (
	CategoryClassification   Category = "classification"
	CategoryStrength         Category = "strength"
	CategoryEvidenceStrength Category = "evidence_strength"
	CategoryEvidenceOutcome  Category = "evidence_outcome"
)

// UnknownSystemError reports a registry query for an unregistered system
// key. This indicates a catalog/registry mismatch rather than a data error.
type UnknownSystemError struct {
	System System
}

// Error implements the error interface.
func (e *UnknownSystemError) Error() string {
	return fmt.Sprintf("unknown vocabulary system %q", string(e.System))
}

// Registry maps system and category to an ordered set of permitted codes.
type Registry struct {
	entries map[System]map[Category][]string
}

// Statement strength codes shared by the ACMG 2015 and CCV 2022 profiles.
var strengths = []string{"definitive", "likely"}

// Evidence-line strength codes shared by the ACMG 2015 and CCV 2022
// profiles.
var evidenceStrengths = []string{
	"standalone", "very strong", "strong", "moderate", "supporting",
}

var defaultRegistry = &Registry{
	entries: map[System]map[Category][]string{
		ACMG: {
			CategoryClassification: {
				"pathogenic", "likely pathogenic", "benign",
				"likely benign", "uncertain significance",
			},
			CategoryStrength:         strengths,
			CategoryEvidenceStrength: evidenceStrengths,
			CategoryEvidenceOutcome: {
				"PS3", "PS3_moderate", "PS3_supporting", "PS3_not_met",
				"BS3", "BS3_moderate", "BS3_supporting", "BS3_not_met",
			},
		},
		AMPAscoCap: {
			CategoryClassification: {"Tier I", "Tier II", "Tier III", "Tier IV"},
			CategoryStrength:       {"Level A", "Level B", "Level C", "Level D"},
		},
		ClinGen: {
			CategoryClassification: {
				"pathogenic, low penetrance",
				"likely pathogenic, low penetrance",
				"established risk allele",
				"likely risk allele",
				"uncertain risk allele",
			},
			CategoryStrength: strengths,
		},
		CCV: {
			CategoryClassification: {
				"oncogenic", "likely oncogenic", "benign",
				"likely benign", "uncertain significance",
			},
			CategoryStrength:         strengths,
			CategoryEvidenceStrength: evidenceStrengths,
			CategoryEvidenceOutcome: {
				"OS2", "OS2_moderate", "OS2_supporting", "OS2_not_met",
				"SBS2", "SBS2_moderate", "SBS2_supporting", "SBS2_not_met",
			},
		},
	},
}

// active is the registry the package-level queries consult, and therefore
// the registry every construction-time coded-field check reads. It starts
// as the built-in catalog; Install swaps in a derived registry.
var active = defaultRegistry

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Install makes r the registry consulted by the package-level queries,
// e.g. a derived registry carrying overlay codes. Install follows the
// initialize-once lifecycle: call it before constructing records; it is
// not synchronized against concurrent queries.
func Install(r *Registry) {
	active = r
}

// PermittedCodes returns the ordered permitted code set registered for the
// system and category on the installed registry.
func PermittedCodes(system System, category Category) ([]string, error) {
	return active.PermittedCodes(system, category)
}

// IsPermitted reports membership of code in the installed registry's
// permitted set for the system and category.
func IsPermitted(system System, category Category, code string) (bool, error) {
	return active.IsPermitted(system, category, code)
}

// PermittedCodes returns a copy of the ordered permitted code set for the
// system and category. An unregistered system yields UnknownSystemError;
// a registered system with no codes for the category yields an empty set.
func (r *Registry) PermittedCodes(system System, category Category) ([]string, error) {
	categories, ok := r.entries[system]
	if !ok {
		return nil, &UnknownSystemError{System: system}
	}
	codes := categories[category]
	out := make([]string, len(codes))
	copy(out, codes)
	return out, nil
}

// IsPermitted reports membership of code in the permitted set for the
// system and category.
func (r *Registry) IsPermitted(system System, category Category, code string) (bool, error) {
	categories, ok := r.entries[system]
	if !ok {
		return false, &UnknownSystemError{System: system}
	}
	for _, c := range categories[category] {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}

// Systems returns the registered system keys.
func (r *Registry) Systems() []System {
	out := make([]System, 0, len(r.entries))
	for s := range r.entries {
		out = append(out, s)
	}
	return out
}

// Overlay holds additional permitted codes to merge into a registry,
// keyed by system and category.
type Overlay map[System]map[Category][]string

// WithOverlay returns a new registry containing the receiver's rows plus the
// overlay's codes appended to the matching sets. The receiver is not
// modified; derived registries must be built before first use, the same
// initialize-once lifecycle the default registry follows.
func (r *Registry) WithOverlay(o Overlay) *Registry {
	merged := make(map[System]map[Category][]string, len(r.entries))
	for system, categories := range r.entries {
		mc := make(map[Category][]string, len(categories))
		for category, codes := range categories {
			mc[category] = append([]string(nil), codes...)
		}
		merged[system] = mc
	}
	for system, categories := range o {
		mc, ok := merged[system]
		if !ok {
			mc = make(map[Category][]string, len(categories))
			merged[system] = mc
		}
		for category, codes := range categories {
			for _, code := range codes {
				if !contains(mc[category], code) {
					mc[category] = append(mc[category], code)
				}
			}
		}
	}
	return &Registry{entries: merged}
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
