package acmg2015

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ga4gh/va-spec-go/pkg/vaspec"
)

func TestParseVariantPathogenicityStatement(t *testing.T) {
	doc := `{
		"id": "civic.eid:2997",
		"proposition": {
			"type": "VariantPathogenicityProposition",
			"predicate": "isCausalFor",
			"subjectVariant": "allele.json#/1",
			"objectCondition": {"name": "Lynch syndrome"}
		},
		"direction": "supports",
		"strength": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "definitive"}},
		"classification": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "pathogenic"}},
		"specifiedBy": "https://example.org/methods/acmg-2015"
	}`
	s, err := ParseVariantPathogenicityStatement([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, vaspec.TypeStatement, s.Type)
	require.NotNil(t, s.Proposition)
	assert.Equal(t, "isCausalFor", s.Proposition.Predicate)
	require.NotNil(t, s.Proposition.ObjectCondition.Concept)
	assert.Equal(t, "Lynch syndrome", s.Proposition.ObjectCondition.Concept.Name)
}

func TestVariantPathogenicityStatementClassificationSystems(t *testing.T) {
	stmt := func(system, code string) string {
		return `{
			"direction": "supports",
			"classification": {"primaryCoding": {"system": "` + system + `", "code": "` + code + `"}},
			"specifiedBy": "m.json#/1"
		}`
	}

	tests := []struct {
		name     string
		system   string
		code     string
		wantCode string
	}{
		{"pathogenic under the 2015 guidelines", "ACMG Guidelines, 2015", "pathogenic", ""},
		{"risk allele under the ClinGen recommendations", "ClinGen Low Penetrance and Risk Allele Recommendations, 2024", "established risk allele", ""},
		{"risk allele code under the 2015 system", "ACMG Guidelines, 2015", "established risk allele", vaspec.ErrInvalidCode},
		{"oncogenicity system", "ClinGen/CGC/VICC Guidelines for Oncogenicity, 2022", "pathogenic", vaspec.ErrSystemMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVariantPathogenicityStatement([]byte(stmt(tt.system, tt.code)))
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *vaspec.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantCode, vErr.Code)
		})
	}
}

func TestVariantPathogenicityStatementForeignSystemListsBoth(t *testing.T) {
	doc := `{
		"direction": "supports",
		"classification": {"primaryCoding": {"system": "AMP/ASCO/CAP (AAC) Guidelines, 2017", "code": "pathogenic"}},
		"specifiedBy": "m.json#/1"
	}`
	_, err := ParseVariantPathogenicityStatement([]byte(doc))
	var vErr *vaspec.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, vaspec.ErrSystemMismatch, vErr.Code)
	assert.Equal(t, []string{
		"ACMG Guidelines, 2015",
		"ClinGen Low Penetrance and Risk Allele Recommendations, 2024",
	}, vErr.Permitted)
}

func TestVariantPathogenicityStatementRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"classification required", `{"direction": "supports", "specifiedBy": "m.json#/1"}`, "classification"},
		{"specifiedBy required", `{
			"direction": "supports",
			"classification": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "benign"}}
		}`, "specifiedBy"},
		{"direction required", `{
			"classification": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "benign"}},
			"specifiedBy": "m.json#/1"
		}`, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVariantPathogenicityStatement([]byte(tt.doc))
			var vErr *vaspec.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, vaspec.ErrMissingRequiredField, vErr.Code)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestParseVariantPathogenicityFunctionalImpactEvidenceLine(t *testing.T) {
	doc := `{
		"targetProposition": {
			"type": "VariantPathogenicityProposition",
			"predicate": "isCausalFor",
			"objectCondition": {"name": "hereditary breast cancer"}
		},
		"directionOfEvidenceProvided": "supports",
		"strengthOfEvidenceProvided": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "strong"}},
		"evidenceOutcome": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "PS3"}},
		"hasEvidenceItems": [
			"https://example.org/studies/1",
			{"type": "Statement", "direction": "supports", "proposition": {
				"type": "VariantPathogenicityProposition",
				"predicate": "isCausalFor",
				"objectCondition": {"name": "hereditary breast cancer"}
			}}
		],
		"specifiedBy": {
			"type": "Method",
			"name": "ACMG 2015 PS3 Criterion",
			"reportedIn": {"type": "Document", "pmid": 25741868}
		}
	}`
	el, err := ParseVariantPathogenicityFunctionalImpactEvidenceLine([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, vaspec.TypeEvidenceLine, el.Type)
	require.NotNil(t, el.TargetProposition)
	require.Len(t, el.HasEvidenceItems, 2)
	assert.IsType(t, vaspec.Reference(""), el.HasEvidenceItems[0])
	assert.IsType(t, (*vaspec.Statement)(nil), el.HasEvidenceItems[1])
}

func TestVariantPathogenicityFunctionalImpactEvidenceLineBindings(t *testing.T) {
	base := func(direction, strengthJSON, specifiedByJSON string) string {
		doc := map[string]json.RawMessage{
			"directionOfEvidenceProvided": json.RawMessage(`"` + direction + `"`),
			"specifiedBy":                 json.RawMessage(specifiedByJSON),
		}
		if strengthJSON != "" {
			doc["strengthOfEvidenceProvided"] = json.RawMessage(strengthJSON)
		}
		out, _ := json.Marshal(doc)
		return string(out)
	}
	inlineMethod := `{"type": "Method", "reportedIn": "https://doi.org/10.1038/gim.2015.30"}`

	tests := []struct {
		name      string
		doc       string
		wantCode  string
		wantField string
	}{
		{
			name: "moderate strength supports",
			doc: base("supports",
				`{"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "moderate"}}`,
				inlineMethod),
		},
		{
			name:      "strength required when supporting",
			doc:       base("supports", "", inlineMethod),
			wantCode:  vaspec.ErrMissingRequiredField,
			wantField: "strengthOfEvidenceProvided",
		},
		{
			name: "strength forbidden when neutral",
			doc: base("neutral",
				`{"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "moderate"}}`,
				inlineMethod),
			wantCode:  vaspec.ErrInvalidCode,
			wantField: "strengthOfEvidenceProvided",
		},
		{
			name: "strength outside the permitted row",
			doc: base("supports",
				`{"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "weak"}}`,
				inlineMethod),
			wantCode:  vaspec.ErrInvalidCode,
			wantField: "strengthOfEvidenceProvided",
		},
		{
			name: "inline method without its source document",
			doc: base("supports",
				`{"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "strong"}}`,
				`{"type": "Method", "name": "ACMG 2015 PS3 Criterion"}`),
			wantCode:  vaspec.ErrMissingRequiredField,
			wantField: "specifiedBy.reportedIn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVariantPathogenicityFunctionalImpactEvidenceLine([]byte(tt.doc))
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

func TestVariantPathogenicityStatementSerialization(t *testing.T) {
	doc := `{
		"proposition": {
			"type": "VariantPathogenicityProposition",
			"predicate": "isCausalFor",
			"objectCondition": {"name": "Lynch syndrome"}
		},
		"direction": "supports",
		"classification": {"primaryCoding": {"system": "ACMG Guidelines, 2015", "code": "pathogenic"}},
		"specifiedBy": "https://example.org/methods/acmg-2015"
	}`
	s, err := ParseVariantPathogenicityStatement([]byte(doc))
	require.NoError(t, err)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "Statement", got["type"])
	proposition, ok := got["proposition"].(map[string]any)
	require.True(t, ok, "narrowed proposition should serialize inline")
	assert.Equal(t, "VariantPathogenicityProposition", proposition["type"])
}

func TestProfileKindsRegistered(t *testing.T) {
	kind, ok := vaspec.LookupKind(NameVariantPathogenicityStatement)
	require.True(t, ok)
	assert.Equal(t, vaspec.TypeStatement, kind.Type)

	kind, ok = vaspec.LookupKind(NameVariantPathogenicityFunctionalImpactEvidenceLine)
	require.True(t, ok)
	assert.Equal(t, vaspec.TypeEvidenceLine, kind.Type)
}
