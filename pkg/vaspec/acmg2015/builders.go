package acmg2015

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
	"github.com/ga4gh/va-spec-go/pkg/vaspec"
	"github.com/ga4gh/va-spec-go/pkg/vocab"
)

// Functional-evidence criterion codes from the ACMG 2015 guidelines.
const (
	CriterionPS3 = "PS3"
	CriterionBS3 = "BS3"
)

// Strength-of-evidence codes for the criterion builders.
const (
	StrengthStrong     = "strong"
	StrengthModerate   = "moderate"
	StrengthSupporting = "supporting"
)

// GuidelineDocument returns the publication record for the ACMG 2015
// guidelines (Richards et al., Genet Med 2015).
func GuidelineDocument() *vaspec.Document {
	return &vaspec.Document{
		Entity: gkscore.Entity{
			Type: vaspec.TypeDocument,
			Name: "ACMG 2015 Guidelines",
		},
		PMID: 25741868,
		DOI:  "10.1038/gim.2015.30",
		URLs: []string{
			"https://doi.org/10.1038/gim.2015.30",
			"https://www.nature.com/articles/gim201530",
		},
	}
}

// criterionMethod builds the Method record for one ACMG 2015 criterion,
// reported in the guideline document.
func criterionMethod(code string) *vaspec.Method {
	doc := GuidelineDocument()
	return &vaspec.Method{
		Entity: gkscore.Entity{
			Type: vaspec.TypeMethod,
			Name: fmt.Sprintf("ACMG 2015 %s Criterion", code),
		},
		ReportedIn: &vaspec.DocumentRef{Document: doc},
	}
}

// PS3 builds the evidence line for the ACMG 2015 PS3 criterion:
// well-established functional studies show a deleterious effect. When the
// criterion is met the line supports pathogenicity at the given strength
// (strong by default in the guidelines); when unmet the line is neutral
// with a PS3_not_met outcome.
func PS3(criteriaMet bool, strength string) (*VariantPathogenicityFunctionalImpactEvidenceLine, error) {
	return criterionEvidenceLine(CriterionPS3, vaspec.DirectionSupports, criteriaMet, strength)
}

// BS3 builds the evidence line for the ACMG 2015 BS3 criterion:
// well-established functional studies show no deleterious effect. When the
// criterion is met the line disputes pathogenicity at the given strength;
// when unmet the line is neutral with a BS3_not_met outcome.
func BS3(criteriaMet bool, strength string) (*VariantPathogenicityFunctionalImpactEvidenceLine, error) {
	return criterionEvidenceLine(CriterionBS3, vaspec.DirectionDisputes, criteriaMet, strength)
}

// criterionEvidenceLine assembles and validates a criterion evidence line.
// The evidence outcome code derives from the criterion and strength: the
// bare criterion code at strong strength, code_<strength> at modified
// strengths, and code_not_met when the criterion is not met.
func criterionEvidenceLine(code string, met vaspec.Direction, criteriaMet bool, strength string) (*VariantPathogenicityFunctionalImpactEvidenceLine, error) {
	el := &VariantPathogenicityFunctionalImpactEvidenceLine{
		EvidenceLine: vaspec.EvidenceLine{
			InformationEntity: vaspec.InformationEntity{
				Entity: gkscore.Entity{
					ID:   uuid.NewString(),
					Type: vaspec.TypeEvidenceLine,
				},
				SpecifiedBy: &vaspec.MethodRef{Method: criterionMethod(code)},
			},
		},
	}
	if criteriaMet {
		if strength == "" {
			strength = StrengthStrong
		}
		strengthConcept := gkscore.NewConcept(string(vocab.ACMG), strength, "")
		el.DirectionOfEvidenceProvided = met
		el.StrengthOfEvidenceProvided = &strengthConcept
		derived := code
		if strength != StrengthStrong {
			derived = fmt.Sprintf("%s_%s", code, strength)
		}
		outcome := gkscore.NewConcept(string(vocab.ACMG), derived, "")
		el.EvidenceOutcome = &outcome
	} else {
		el.DirectionOfEvidenceProvided = vaspec.DirectionNeutral
		outcome := gkscore.NewConcept(string(vocab.ACMG), code+"_not_met", "")
		el.EvidenceOutcome = &outcome
	}
	if err := el.Validate(); err != nil {
		return nil, err
	}
	return el, nil
}
