package vaspec

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResolveEvidenceItem(t *testing.T) {
	statementDoc := `{"type":"Statement","proposition":{"objectCondition":"c.json#/1"},"direction":"supports"}`
	evidenceLineDoc := `{"type":"EvidenceLine","directionOfEvidenceProvided":"neutral"}`
	cafDoc := `{
		"type": "CohortAlleleFrequencyStudyResult",
		"focusAllele": "allele.json#/1",
		"focusAlleleCount": 7,
		"locusAlleleCount": 34086,
		"focusAlleleFrequency": 0.0002,
		"cohort": {"id": "ALL", "type": "StudyGroup", "name": "Overall"}
	}`
	functionalDoc := `{
		"type": "ExperimentalVariantFunctionalImpactStudyResult",
		"focusVariant": "allele.json#/1",
		"functionalImpactScore": 0.21
	}`

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, item EvidenceItem)
	}{
		{"bare string resolves to a Reference", `"caf.json#/1"`, func(t *testing.T, item EvidenceItem) {
			ref, ok := item.(Reference)
			if !ok {
				t.Fatalf("resolved to %T, want Reference", item)
			}
			if ref.String() != "caf.json#/1" {
				t.Errorf("reference = %q", ref)
			}
		}},
		{"statement document resolves to a Statement", statementDoc, func(t *testing.T, item EvidenceItem) {
			if _, ok := item.(*Statement); !ok {
				t.Fatalf("resolved to %T, want *Statement", item)
			}
		}},
		{"evidence line document resolves to an EvidenceLine", evidenceLineDoc, func(t *testing.T, item EvidenceItem) {
			if _, ok := item.(*EvidenceLine); !ok {
				t.Fatalf("resolved to %T, want *EvidenceLine", item)
			}
		}},
		{"cohort allele frequency document", cafDoc, func(t *testing.T, item EvidenceItem) {
			if _, ok := item.(*CohortAlleleFrequencyStudyResult); !ok {
				t.Fatalf("resolved to %T, want *CohortAlleleFrequencyStudyResult", item)
			}
		}},
		{"functional impact document", functionalDoc, func(t *testing.T, item EvidenceItem) {
			if _, ok := item.(*ExperimentalVariantFunctionalImpactStudyResult); !ok {
				t.Fatalf("resolved to %T, want *ExperimentalVariantFunctionalImpactStudyResult", item)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ResolveEvidenceItem("hasEvidenceItems[0]", []byte(tt.input))
			if err != nil {
				t.Fatalf("ResolveEvidenceItem() error = %v", err)
			}
			tt.check(t, item)
		})
	}
}

func TestResolveEvidenceItemErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{"missing type discriminator", `{"direction":"supports"}`, ErrAmbiguousVariant},
		{"unknown type literal", `{"type":"StudyResult"}`, ErrAmbiguousVariant},
		{"known kind outside the slot", `{"type":"Method","name":"m"}`, ErrAmbiguousVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveEvidenceItem("hasEvidenceItems[0]", []byte(tt.input))
			wantValidationCode(t, err, tt.wantCode)
		})
	}
}

func TestResolveEvidenceItemPrefixesNestedFieldPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			name:      "statement missing its direction",
			input:     `{"type":"Statement","proposition":{"objectCondition":"c.json#/1"}}`,
			wantField: "hasEvidenceItems[2].direction",
		},
		{
			name:      "nested line with an invalid direction",
			input:     `{"type":"EvidenceLine","directionOfEvidenceProvided":"confirms"}`,
			wantField: "hasEvidenceItems[2].directionOfEvidenceProvided",
		},
		{
			name:      "study result missing its focus allele",
			input:     `{"type":"CohortAlleleFrequencyStudyResult","locusAlleleCount":34086}`,
			wantField: "hasEvidenceItems[2].focusAllele",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveEvidenceItem("hasEvidenceItems[2]", []byte(tt.input))
			if err == nil {
				t.Fatal("ResolveEvidenceItem() error = nil, want field-path error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("ResolveEvidenceItem() error = %T, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("ResolveEvidenceItem() field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestResolveEvidenceItemDeterminism(t *testing.T) {
	doc := []byte(`{"type":"Statement","proposition":{"objectCondition":"c.json#/1"},"direction":"supports"}`)
	for i := 0; i < 3; i++ {
		item, err := ResolveEvidenceItem("hasEvidenceItems[0]", doc)
		if err != nil {
			t.Fatalf("ResolveEvidenceItem() error = %v", err)
		}
		if _, ok := item.(*Statement); !ok {
			t.Fatalf("run %d resolved %T, want *Statement", i, item)
		}
	}
}

func TestParseEvidenceLine(t *testing.T) {
	doc := `{
		"id": "el-001",
		"targetProposition": {
			"type": "VariantPathogenicityProposition",
			"objectCondition": "condition.json#/1"
		},
		"hasEvidenceItems": [
			"caf.json#/1",
			{"type": "Statement", "proposition": {"objectCondition": "c.json#/1"}, "direction": "supports"}
		],
		"directionOfEvidenceProvided": "supports",
		"scoreOfEvidenceProvided": 1.5
	}`

	el, err := ParseEvidenceLine([]byte(doc))
	if err != nil {
		t.Fatalf("ParseEvidenceLine() error = %v", err)
	}
	if el.Type != TypeEvidenceLine {
		t.Errorf("type = %q", el.Type)
	}
	if len(el.HasEvidenceItems) != 2 {
		t.Fatalf("hasEvidenceItems length = %d", len(el.HasEvidenceItems))
	}
	if _, ok := el.HasEvidenceItems[0].(Reference); !ok {
		t.Errorf("item 0 resolved to %T, want Reference", el.HasEvidenceItems[0])
	}
	if _, ok := el.HasEvidenceItems[1].(*Statement); !ok {
		t.Errorf("item 1 resolved to %T, want *Statement", el.HasEvidenceItems[1])
	}
	if _, ok := el.TargetProposition.(*VariantPathogenicityProposition); !ok {
		t.Errorf("targetProposition resolved to %T", el.TargetProposition)
	}
	if el.ScoreOfEvidenceProvided == nil || *el.ScoreOfEvidenceProvided != 1.5 {
		t.Errorf("score = %v", el.ScoreOfEvidenceProvided)
	}
}

func TestParseEvidenceLineErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
	}{
		{"missing direction", `{"hasEvidenceItems":["caf.json#/1"]}`, ErrMissingRequiredField},
		{"invalid direction", `{"directionOfEvidenceProvided":"sideways"}`, ErrInvalidCode},
		{"wrong type literal", `{"type":"Statement","directionOfEvidenceProvided":"supports"}`,
			ErrUnknownDiscriminator},
		{"unresolvable evidence item",
			`{"directionOfEvidenceProvided":"supports","hasEvidenceItems":[{"score":1}]}`,
			ErrAmbiguousVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEvidenceLine([]byte(tt.input))
			wantValidationCode(t, err, tt.wantCode)
		})
	}
}

func TestReferenceSerializesAsBareString(t *testing.T) {
	doc := `{"directionOfEvidenceProvided":"neutral","hasEvidenceItems":["caf.json#/1"]}`
	el, err := ParseEvidenceLine([]byte(doc))
	if err != nil {
		t.Fatalf("ParseEvidenceLine() error = %v", err)
	}
	out, err := json.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	items, ok := got["hasEvidenceItems"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("serialized hasEvidenceItems = %v", got["hasEvidenceItems"])
	}
	if items[0] != "caf.json#/1" {
		t.Errorf("serialized reference = %v, want bare string", items[0])
	}
}
