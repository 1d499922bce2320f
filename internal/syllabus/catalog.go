package syllabus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/revisio/revisio/internal/sm2"
)

// Syllabus is the full definition of one subject: its sections, its
// topics in teaching order, and the per-subject tuning knobs.
type Syllabus struct {
	SubjectID       string     `json:"subject_id"`
	Name            string     `json:"name"`
	DailyBudgetMins int        `json:"daily_budget_mins,omitempty"`
	QualityBands    []sm2.Band `json:"quality_bands,omitempty"`
	Sections        []Section  `json:"sections"`
	Topics          []Topic    `json:"topics"`

	byID      map[string]*Topic
	bySection map[string][]Topic
}

// Parse decodes and validates a syllabus document. The raw bytes are
// checked against the embedded JSON schema first, then structurally:
// section references must resolve, topic IDs must be unique, sequence
// indexes must be contiguous from zero, and estimates must be positive.
func Parse(data []byte) (*Syllabus, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var s Syllabus
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode syllabus: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	s.index()
	return &s, nil
}

// LoadFile reads and parses a syllabus file.
func LoadFile(path string) (*Syllabus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read syllabus: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Syllabus) check() error {
	sections := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if sections[sec.ID] {
			return fmt.Errorf("syllabus %s: duplicate section %q", s.SubjectID, sec.ID)
		}
		sections[sec.ID] = true
	}

	seen := make(map[string]bool, len(s.Topics))
	indexes := make([]int, 0, len(s.Topics))
	for _, t := range s.Topics {
		if seen[t.ID] {
			return fmt.Errorf("syllabus %s: duplicate topic %q", s.SubjectID, t.ID)
		}
		seen[t.ID] = true
		if !sections[t.SectionID] {
			return fmt.Errorf("syllabus %s: topic %q references unknown section %q", s.SubjectID, t.ID, t.SectionID)
		}
		if t.EstimatedMins <= 0 {
			return fmt.Errorf("syllabus %s: topic %q has non-positive estimate", s.SubjectID, t.ID)
		}
		indexes = append(indexes, t.SequenceIndex)
	}

	sort.Ints(indexes)
	for i, idx := range indexes {
		if idx != i {
			return fmt.Errorf("syllabus %s: sequence indexes must be contiguous from 0, gap at %d", s.SubjectID, i)
		}
	}
	return nil
}

func (s *Syllabus) index() {
	s.byID = make(map[string]*Topic, len(s.Topics))
	s.bySection = make(map[string][]Topic)
	sort.Slice(s.Topics, func(i, j int) bool {
		return s.Topics[i].SequenceIndex < s.Topics[j].SequenceIndex
	})
	for i := range s.Topics {
		t := &s.Topics[i]
		s.byID[t.ID] = t
		s.bySection[t.SectionID] = append(s.bySection[t.SectionID], *t)
	}
}

// TopicByID returns the topic, or false if the ID is unknown.
func (s *Syllabus) TopicByID(id string) (Topic, bool) {
	t, ok := s.byID[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// SectionTopics returns the topics of one section in sequence order.
func (s *Syllabus) SectionTopics(sectionID string) []Topic {
	return s.bySection[sectionID]
}

// QualityMap builds the subject's quality map, falling back to the
// default grading table when the file defines no bands.
func (s *Syllabus) QualityMap() (*sm2.QualityMap, error) {
	if len(s.QualityBands) == 0 {
		return sm2.DefaultQualityMap(), nil
	}
	return sm2.NewQualityMap(s.QualityBands)
}

// Catalog resolves subject IDs to their syllabi. It is the engine's
// only view of the syllabus data.
type Catalog struct {
	subjects map[string]*Syllabus
}

// NewCatalog builds a catalog over the given syllabi.
func NewCatalog(subjects ...*Syllabus) *Catalog {
	c := &Catalog{subjects: make(map[string]*Syllabus, len(subjects))}
	for _, s := range subjects {
		c.subjects[s.SubjectID] = s
	}
	return c
}

// ErrUnknownSubject reports a subject ID the catalog does not hold.
type ErrUnknownSubject struct {
	SubjectID string
}

func (e *ErrUnknownSubject) Error() string {
	return fmt.Sprintf("unknown subject %q", e.SubjectID)
}

// Subject returns the syllabus for a subject ID.
func (c *Catalog) Subject(subjectID string) (*Syllabus, error) {
	s, ok := c.subjects[subjectID]
	if !ok {
		return nil, &ErrUnknownSubject{SubjectID: subjectID}
	}
	return s, nil
}

// Topics returns the subject's topics in stable syllabus order.
func (c *Catalog) Topics(subjectID string) ([]Topic, error) {
	s, err := c.Subject(subjectID)
	if err != nil {
		return nil, err
	}
	out := make([]Topic, len(s.Topics))
	copy(out, s.Topics)
	return out, nil
}
