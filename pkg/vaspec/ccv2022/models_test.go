package ccv2022

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ga4gh/va-spec-go/pkg/vaspec"
)

func TestParseVariantOncogenicityStudyStatement(t *testing.T) {
	doc := `{
		"proposition": {
			"type": "VariantOncogenicityProposition",
			"predicate": "isCausalFor",
			"subjectVariant": "allele.json#/1",
			"objectTumorType": {"name": "lung adenocarcinoma"}
		},
		"direction": "supports",
		"strength": {"primaryCoding": {"system": "ClinGen Low Penetrance and Risk Allele Recommendations, 2024", "code": "definitive"}},
		"classification": {"primaryCoding": {"system": "ClinGen Low Penetrance and Risk Allele Recommendations, 2024", "code": "established risk allele"}},
		"specifiedBy": "https://example.org/methods/ccv-2022"
	}`
	s, err := ParseVariantOncogenicityStudyStatement([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, vaspec.TypeStatement, s.Type)
	require.NotNil(t, s.Proposition)
	require.NotNil(t, s.Proposition.ObjectTumorType.Concept)
	assert.Equal(t, "lung adenocarcinoma", s.Proposition.ObjectTumorType.Concept.Name)
}

func TestVariantOncogenicityStudyStatementBindings(t *testing.T) {
	stmt := func(strengthJSON, classificationJSON string) string {
		doc := `{"direction": "supports", "specifiedBy": "m.json#/1"`
		if strengthJSON != "" {
			doc += `, "strength": ` + strengthJSON
		}
		if classificationJSON != "" {
			doc += `, "classification": ` + classificationJSON
		}
		return doc + `}`
	}

	tests := []struct {
		name           string
		strength       string
		classification string
		wantCode       string
		wantField      string
	}{
		{
			name:           "classification alone",
			classification: `{"primaryCoding": {"system": "ClinGen Low Penetrance and Risk Allele Recommendations, 2024", "code": "likely risk allele"}}`,
		},
		{
			name:      "classification required",
			wantCode:  vaspec.ErrMissingRequiredField,
			wantField: "classification",
		},
		{
			name:           "classification under the oncogenicity system",
			classification: `{"primaryCoding": {"system": "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022", "code": "oncogenic"}}`,
			wantCode:       vaspec.ErrSystemMismatch,
			wantField:      "classification.primaryCoding.system",
		},
		{
			name:           "strength outside the permitted row",
			strength:       `{"primaryCoding": {"system": "ClinGen Low Penetrance and Risk Allele Recommendations, 2024", "code": "strong"}}`,
			classification: `{"primaryCoding": {"system": "ClinGen Low Penetrance and Risk Allele Recommendations, 2024", "code": "likely risk allele"}}`,
			wantCode:       vaspec.ErrInvalidCode,
			wantField:      "strength",
		},
		{
			name:           "classification without a primary coding",
			classification: `{"name": "established risk allele"}`,
			wantCode:       vaspec.ErrMissingCoding,
			wantField:      "classification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVariantOncogenicityStudyStatement([]byte(stmt(tt.strength, tt.classification)))
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *vaspec.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantCode, vErr.Code)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestParseVariantOncogenicityFunctionalImpactEvidenceLine(t *testing.T) {
	doc := `{
		"targetProposition": {
			"type": "VariantOncogenicityProposition",
			"predicate": "isCausalFor",
			"objectTumorType": {"name": "melanoma"}
		},
		"directionOfEvidenceProvided": "supports",
		"strengthOfEvidenceProvided": {"primaryCoding": {"system": "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022", "code": "strong"}},
		"evidenceOutcome": {"primaryCoding": {"system": "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022", "code": "OS2"}},
		"hasEvidenceItems": ["https://example.org/studies/7"],
		"specifiedBy": {
			"type": "Method",
			"name": "CCV 2022 OS2 Criterion",
			"reportedIn": "https://doi.org/10.1016/j.gim.2022.01.001"
		}
	}`
	el, err := ParseVariantOncogenicityFunctionalImpactEvidenceLine([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, vaspec.TypeEvidenceLine, el.Type)
	require.NotNil(t, el.TargetProposition)
	require.Len(t, el.HasEvidenceItems, 1)
	assert.Equal(t, "OS2", el.EvidenceOutcome.PrimaryCoding.Code)
}

func TestVariantOncogenicityFunctionalImpactEvidenceLineBindings(t *testing.T) {
	inlineMethod := `{"type": "Method", "reportedIn": "https://doi.org/10.1016/j.gim.2022.01.001"}`

	tests := []struct {
		name      string
		doc       string
		wantCode  string
		wantField string
	}{
		{
			name: "outcome under the 2015 system",
			doc: `{
				"directionOfEvidenceProvided": "supports",
				"strengthOfEvidenceProvided": {"primaryCoding": {"system": "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022", "code": "strong"}},
				"evidenceOutcome": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "PS3"}},
				"specifiedBy": ` + inlineMethod + `
			}`,
			wantCode:  vaspec.ErrSystemMismatch,
			wantField: "evidenceOutcome",
		},
		{
			name: "strength required when disputing",
			doc: `{
				"directionOfEvidenceProvided": "disputes",
				"specifiedBy": ` + inlineMethod + `
			}`,
			wantCode:  vaspec.ErrMissingRequiredField,
			wantField: "strengthOfEvidenceProvided",
		},
		{
			name: "neutral line without strength",
			doc: `{
				"directionOfEvidenceProvided": "neutral",
				"evidenceOutcome": {"primaryCoding": {"system": "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022", "code": "OS2_not_met"}},
				"specifiedBy": ` + inlineMethod + `
			}`,
		},
		{
			name: "inline method without its source document",
			doc: `{
				"directionOfEvidenceProvided": "neutral",
				"specifiedBy": {"type": "Method", "name": "CCV 2022 OS2 Criterion"}
			}`,
			wantCode:  vaspec.ErrMissingRequiredField,
			wantField: "specifiedBy.reportedIn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVariantOncogenicityFunctionalImpactEvidenceLine([]byte(tt.doc))
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *vaspec.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantCode, vErr.Code)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestProfileKindsRegistered(t *testing.T) {
	kind, ok := vaspec.LookupKind(NameVariantOncogenicityStudyStatement)
	require.True(t, ok)
	assert.Equal(t, vaspec.TypeStatement, kind.Type)

	kind, ok = vaspec.LookupKind(NameVariantOncogenicityFunctionalImpactEvidenceLine)
	require.True(t, ok)
	assert.Equal(t, vaspec.TypeEvidenceLine, kind.Type)
}
