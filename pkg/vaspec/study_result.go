package vaspec

import (
	"encoding/json"
)

// Discriminator literals for the StudyResult profiles.
const (
	TypeCohortAlleleFrequencyStudyResult               = "CohortAlleleFrequencyStudyResult"
	TypeExperimentalVariantFunctionalImpactStudyResult = "ExperimentalVariantFunctionalImpactStudyResult"
)

// The abstract StudyResult shape has a generic `focus` field naming the
// entity the result is about. The concrete profiles below replace it with a
// named, strongly-typed field (focusAllele, focusVariant); the generic
// field is removed from their public shapes entirely - it is neither
// settable nor serialized.

// CohortAlleleFrequencyStudyResult reports measures related to the
// frequency of an allele in a cohort. Sub-cohort results nest recursively.
type CohortAlleleFrequencyStudyResult struct {
	InformationEntity
	SourceDataSet        *DataSet                            `json:"sourceDataSet,omitempty"`
	FocusAllele          VariationRef                        `json:"focusAllele"`
	FocusAlleleCount     *int                                `json:"focusAlleleCount"`
	LocusAlleleCount     *int                                `json:"locusAlleleCount"`
	FocusAlleleFrequency *float64                            `json:"focusAlleleFrequency"`
	Cohort               *StudyGroup                         `json:"cohort"`
	SubCohortFrequency   []*CohortAlleleFrequencyStudyResult `json:"subCohortFrequency,omitempty"`
	AncillaryResults     map[string]any                      `json:"ancillaryResults,omitempty"`
	QualityMeasures      map[string]any                      `json:"qualityMeasures,omitempty"`
}

func (*CohortAlleleFrequencyStudyResult) isEvidenceItem() {}

// Validate checks the result's required fields. Zero counts and zero
// frequencies are valid data; only absence is an error.
func (r *CohortAlleleFrequencyStudyResult) Validate() error {
	if r.FocusAllele.IsZero() {
		return NewMissingFieldError("focusAllele")
	}
	if r.FocusAlleleCount == nil {
		return NewMissingFieldError("focusAlleleCount")
	}
	if r.LocusAlleleCount == nil {
		return NewMissingFieldError("locusAlleleCount")
	}
	if r.FocusAlleleFrequency == nil {
		return NewMissingFieldError("focusAlleleFrequency")
	}
	if r.Cohort == nil {
		return NewMissingFieldError("cohort")
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CohortAlleleFrequencyStudyResult) UnmarshalJSON(data []byte) error {
	type alias CohortAlleleFrequencyStudyResult
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	if err := CheckType("type", r.Type, TypeCohortAlleleFrequencyStudyResult); err != nil {
		return err
	}
	r.Type = TypeCohortAlleleFrequencyStudyResult
	if r.Cohort != nil {
		if err := CheckType("cohort.type", r.Cohort.Type, TypeStudyGroup); err != nil {
			return err
		}
		r.Cohort.Type = TypeStudyGroup
	}
	return r.Validate()
}

// ParseCohortAlleleFrequencyStudyResult constructs a
// CohortAlleleFrequencyStudyResult from a JSON document.
func ParseCohortAlleleFrequencyStudyResult(data []byte) (*CohortAlleleFrequencyStudyResult, error) {
	var r CohortAlleleFrequencyStudyResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ExperimentalVariantFunctionalImpactStudyResult reports a functional
// impact score for a variant from a functional assay or study.
type ExperimentalVariantFunctionalImpactStudyResult struct {
	InformationEntity
	FocusVariant          VariationRef `json:"focusVariant"`
	FunctionalImpactScore *float64     `json:"functionalImpactScore,omitempty"`
	SourceDataSet         *DataSet     `json:"sourceDataSet,omitempty"`
}

func (*ExperimentalVariantFunctionalImpactStudyResult) isEvidenceItem() {}

// Validate checks the result's required fields.
func (r *ExperimentalVariantFunctionalImpactStudyResult) Validate() error {
	if r.FocusVariant.IsZero() {
		return NewMissingFieldError("focusVariant")
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ExperimentalVariantFunctionalImpactStudyResult) UnmarshalJSON(data []byte) error {
	type alias ExperimentalVariantFunctionalImpactStudyResult
	if err := json.Unmarshal(data, (*alias)(r)); err != nil {
		return err
	}
	if err := CheckType("type", r.Type, TypeExperimentalVariantFunctionalImpactStudyResult); err != nil {
		return err
	}
	r.Type = TypeExperimentalVariantFunctionalImpactStudyResult
	return r.Validate()
}

// ParseExperimentalVariantFunctionalImpactStudyResult constructs an
// ExperimentalVariantFunctionalImpactStudyResult from a JSON document.
func ParseExperimentalVariantFunctionalImpactStudyResult(data []byte) (*ExperimentalVariantFunctionalImpactStudyResult, error) {
	var r ExperimentalVariantFunctionalImpactStudyResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func init() {
	RegisterKind(Kind{
		Name: TypeCohortAlleleFrequencyStudyResult,
		Type: TypeCohortAlleleFrequencyStudyResult,
		Fields: informationEntityFields(
			"sourceDataSet", "focusAllele", "focusAlleleCount", "locusAlleleCount",
			"focusAlleleFrequency", "cohort", "subCohortFrequency",
			"ancillaryResults", "qualityMeasures"),
		Parse: func(data []byte) (any, error) { return ParseCohortAlleleFrequencyStudyResult(data) },
	})
	RegisterKind(Kind{
		Name: TypeExperimentalVariantFunctionalImpactStudyResult,
		Type: TypeExperimentalVariantFunctionalImpactStudyResult,
		Fields: informationEntityFields(
			"focusVariant", "functionalImpactScore", "sourceDataSet"),
		Parse: func(data []byte) (any, error) {
			return ParseExperimentalVariantFunctionalImpactStudyResult(data)
		},
	})
}
