// Package vaspec implements the GA4GH Variant Annotation (VA) record model:
// the base record kind catalog (Statements, Propositions, Evidence Lines,
// Study Results and their supporting entities), the polymorphic resolution
// engine that turns decoded JSON documents into concrete kinds, and the
// cross-field validators that guideline profiles bind to coded fields.
//
// Records are immutable after construction by convention: constructors and
// parse functions validate eagerly and never return partially-built records.
package vaspec

import (
	"encoding/json"
	"regexp"

	"github.com/ga4gh/va-spec-go/pkg/gkscore"
)

// Discriminator literals for the supporting entity kinds.
const (
	TypeMethod       = "Method"
	TypeContribution = "Contribution"
	TypeDocument     = "Document"
	TypeAgent        = "Agent"
	TypeDataSet      = "DataSet"
	TypeStudyGroup   = "StudyGroup"
	TypeTraitSet     = "TraitSet"
	TypeTherapyGroup = "TherapyGroup"
)

// InformationEntity is the shape shared by records that carry information
// content: Statements, EvidenceLines and StudyResults. It is an abstract
// shape contract, not a constructible kind.
type InformationEntity struct {
	gkscore.Entity
	SpecifiedBy   *MethodRef     `json:"specifiedBy,omitempty"`
	Contributions []Contribution `json:"contributions,omitempty"`
	ReportedIn    []DocumentRef  `json:"reportedIn,omitempty"`
}

// informationEntityFields appends the InformationEntity field names to the
// Entity base set.
func informationEntityFields(rest ...string) []string {
	fields := append(gkscore.EntityFields(), "specifiedBy", "contributions", "reportedIn")
	return append(fields, rest...)
}

// Method is a set of instructions that specify how to achieve some
// objective, e.g. a variant interpretation guideline.
type Method struct {
	gkscore.Entity
	Subtype    *gkscore.MappableConcept `json:"subtype,omitempty"`
	ReportedIn *DocumentRef             `json:"reportedIn,omitempty"`
}

// ParseMethod constructs a Method from a JSON document.
func ParseMethod(data []byte) (*Method, error) {
	var m Method
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := CheckType("type", m.Type, TypeMethod); err != nil {
		return nil, err
	}
	m.Type = TypeMethod
	return &m, nil
}

// Contribution is an action taken by an agent toward the creation,
// modification, assessment, or deprecation of an entity.
type Contribution struct {
	gkscore.Entity
	Contributor  *Agent                   `json:"contributor,omitempty"`
	ActivityType *gkscore.MappableConcept `json:"activityType,omitempty"`
	Date         string                   `json:"date,omitempty"`
}

// ParseContribution constructs a Contribution from a JSON document.
func ParseContribution(data []byte) (*Contribution, error) {
	var c Contribution
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := CheckType("type", c.Type, TypeContribution); err != nil {
		return nil, err
	}
	c.Type = TypeContribution
	return &c, nil
}

// Document URL and DOI format patterns.
var (
	documentURLPattern = regexp.MustCompile(`^(https?|s?ftp)://`)
	documentDOIPattern = regexp.MustCompile(`^10\.(\d+)(\.\d+)*/[\w\-.]+`)
)

// Document is a collection of information intended to be read and
// understood together as a whole, e.g. a publication.
type Document struct {
	gkscore.Entity
	Subtype *gkscore.MappableConcept `json:"subtype,omitempty"`
	Title   string                   `json:"title,omitempty"`
	URLs    []string                 `json:"urls,omitempty"`
	DOI     string                   `json:"doi,omitempty"`
	PMID    int                      `json:"pmid,omitempty"`
}

// Validate checks the Document's URL and DOI formats.
func (d *Document) Validate() error {
	for _, u := range d.URLs {
		if !documentURLPattern.MatchString(u) {
			return &ValidationError{
				Code:    ErrInvalidCode,
				Field:   "urls",
				Message: "URL must use an http(s) or (s)ftp scheme",
			}
		}
	}
	if d.DOI != "" && !documentDOIPattern.MatchString(d.DOI) {
		return &ValidationError{
			Code:    ErrInvalidCode,
			Field:   "doi",
			Message: "malformed DOI",
		}
	}
	return nil
}

// ParseDocument constructs a Document from a JSON document.
func ParseDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if err := CheckType("type", d.Type, TypeDocument); err != nil {
		return nil, err
	}
	d.Type = TypeDocument
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Agent is an autonomous actor (person, organization, or software) bearing
// responsibility for an activity or entity.
type Agent struct {
	gkscore.Entity
	Subtype *gkscore.MappableConcept `json:"subtype,omitempty"`
}

// NewAgent builds an Agent with the given name.
func NewAgent(name string) *Agent {
	return &Agent{Entity: gkscore.Entity{Type: TypeAgent, Name: name}}
}

// ParseAgent constructs an Agent from a JSON document.
func ParseAgent(data []byte) (*Agent, error) {
	var a Agent
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	if err := CheckType("type", a.Type, TypeAgent); err != nil {
		return nil, err
	}
	a.Type = TypeAgent
	return &a, nil
}

// DataSet is a collection of related data items organized together in a
// common format.
type DataSet struct {
	gkscore.Entity
	Subtype     *gkscore.MappableConcept `json:"subtype,omitempty"`
	ReportedIn  *DocumentRef             `json:"reportedIn,omitempty"`
	ReleaseDate string                   `json:"releaseDate,omitempty"`
	Version     string                   `json:"version,omitempty"`
	License     *gkscore.MappableConcept `json:"license,omitempty"`
}

// ParseDataSet constructs a DataSet from a JSON document.
func ParseDataSet(data []byte) (*DataSet, error) {
	var ds DataSet
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, err
	}
	if err := CheckType("type", ds.Type, TypeDataSet); err != nil {
		return nil, err
	}
	ds.Type = TypeDataSet
	return &ds, nil
}

// StudyGroup is a collection of individuals or specimens selected for
// analysis based on shared characteristics, e.g. a cohort or population.
type StudyGroup struct {
	gkscore.Entity
	MemberCount     *int                      `json:"memberCount,omitempty"`
	Characteristics []gkscore.MappableConcept `json:"characteristics,omitempty"`
}

// ParseStudyGroup constructs a StudyGroup from a JSON document.
func ParseStudyGroup(data []byte) (*StudyGroup, error) {
	var sg StudyGroup
	if err := json.Unmarshal(data, &sg); err != nil {
		return nil, err
	}
	if err := CheckType("type", sg.Type, TypeStudyGroup); err != nil {
		return nil, err
	}
	sg.Type = TypeStudyGroup
	return &sg, nil
}

// TraitSet is a set of conditions/phenotypes asserted to co-occur.
type TraitSet struct {
	gkscore.Entity
	Traits []gkscore.MappableConcept `json:"traits,omitempty"`
}

// ParseTraitSet constructs a TraitSet from a JSON document.
func ParseTraitSet(data []byte) (*TraitSet, error) {
	var ts TraitSet
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, err
	}
	if err := CheckType("type", ts.Type, TypeTraitSet); err != nil {
		return nil, err
	}
	ts.Type = TypeTraitSet
	return &ts, nil
}

// TherapyGroup is a group of therapies applied in combination or as
// alternatives.
type TherapyGroup struct {
	gkscore.Entity
	Therapies          []gkscore.MappableConcept `json:"therapies,omitempty"`
	MembershipOperator string                    `json:"membershipOperator,omitempty"`
}

// ParseTherapyGroup constructs a TherapyGroup from a JSON document.
func ParseTherapyGroup(data []byte) (*TherapyGroup, error) {
	var tg TherapyGroup
	if err := json.Unmarshal(data, &tg); err != nil {
		return nil, err
	}
	if err := CheckType("type", tg.Type, TypeTherapyGroup); err != nil {
		return nil, err
	}
	tg.Type = TypeTherapyGroup
	return &tg, nil
}

func init() {
	RegisterKind(Kind{
		Name:   TypeMethod,
		Type:   TypeMethod,
		Fields: append(gkscore.EntityFields(), "subtype", "reportedIn"),
		Parse:  func(data []byte) (any, error) { return ParseMethod(data) },
	})
	RegisterKind(Kind{
		Name:   TypeContribution,
		Type:   TypeContribution,
		Fields: append(gkscore.EntityFields(), "contributor", "activityType", "date"),
		Parse:  func(data []byte) (any, error) { return ParseContribution(data) },
	})
	RegisterKind(Kind{
		Name:   TypeDocument,
		Type:   TypeDocument,
		Fields: append(gkscore.EntityFields(), "subtype", "title", "urls", "doi", "pmid"),
		Parse:  func(data []byte) (any, error) { return ParseDocument(data) },
	})
	RegisterKind(Kind{
		Name:   TypeAgent,
		Type:   TypeAgent,
		Fields: append(gkscore.EntityFields(), "subtype"),
		Parse:  func(data []byte) (any, error) { return ParseAgent(data) },
	})
	RegisterKind(Kind{
		Name:   TypeDataSet,
		Type:   TypeDataSet,
		Fields: append(gkscore.EntityFields(), "subtype", "reportedIn", "releaseDate", "version", "license"),
		Parse:  func(data []byte) (any, error) { return ParseDataSet(data) },
	})
	RegisterKind(Kind{
		Name:   TypeStudyGroup,
		Type:   TypeStudyGroup,
		Fields: append(gkscore.EntityFields(), "memberCount", "characteristics"),
		Parse:  func(data []byte) (any, error) { return ParseStudyGroup(data) },
	})
	RegisterKind(Kind{
		Name:   TypeTraitSet,
		Type:   TypeTraitSet,
		Fields: append(gkscore.EntityFields(), "traits"),
		Parse:  func(data []byte) (any, error) { return ParseTraitSet(data) },
	})
	RegisterKind(Kind{
		Name:   TypeTherapyGroup,
		Type:   TypeTherapyGroup,
		Fields: append(gkscore.EntityFields(), "therapies", "membershipOperator"),
		Parse:  func(data []byte) (any, error) { return ParseTherapyGroup(data) },
	})
}
