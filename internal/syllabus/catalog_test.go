package syllabus

import (
	"strings"
	"testing"
)

const validDoc = `{
	"subject_id": "gcse-bio",
	"name": "GCSE Biology",
	"daily_budget_mins": 60,
	"sections": [
		{"id": "cells", "name": "Cell Biology"},
		{"id": "organisation", "name": "Organisation"}
	],
	"topics": [
		{"id": "cells-structure", "section_id": "cells", "sequence_index": 0, "name": "Cell structure", "estimated_mins": 20},
		{"id": "cells-transport", "section_id": "cells", "sequence_index": 1, "name": "Transport in cells", "estimated_mins": 20},
		{"id": "org-digestion", "section_id": "organisation", "sequence_index": 2, "name": "Digestion", "estimated_mins": 25}
	]
}`

func TestParseValid(t *testing.T) {
	s, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.SubjectID != "gcse-bio" {
		t.Errorf("subject = %q", s.SubjectID)
	}
	if len(s.Topics) != 3 {
		t.Fatalf("topics = %d, want 3", len(s.Topics))
	}
	// Topics must come back in sequence order regardless of file order.
	for i, topic := range s.Topics {
		if topic.SequenceIndex != i {
			t.Errorf("topic[%d].SequenceIndex = %d", i, topic.SequenceIndex)
		}
	}
	if got := s.SectionTopics("cells"); len(got) != 2 {
		t.Errorf("cells topics = %d, want 2", len(got))
	}
	if _, ok := s.TopicByID("org-digestion"); !ok {
		t.Error("TopicByID failed for known topic")
	}
	if _, ok := s.TopicByID("nope"); ok {
		t.Error("TopicByID succeeded for unknown topic")
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", "{"},
		{"missing subject", `{"name":"x","sections":[{"id":"a","name":"A"}],"topics":[{"id":"t","section_id":"a","sequence_index":0,"name":"T","estimated_mins":10}]}`},
		{"empty topics", `{"subject_id":"s","name":"x","sections":[{"id":"a","name":"A"}],"topics":[]}`},
		{"zero estimate", `{"subject_id":"s","name":"x","sections":[{"id":"a","name":"A"}],"topics":[{"id":"t","section_id":"a","sequence_index":0,"name":"T","estimated_mins":0}]}`},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.doc)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestParseRejectsStructuralViolations(t *testing.T) {
	tests := []struct {
		name    string
		mangle  func(string) string
		wantMsg string
	}{
		{
			"unknown section",
			func(d string) string { return strings.Replace(d, `"section_id": "organisation"`, `"section_id": "ghost"`, 1) },
			"unknown section",
		},
		{
			"duplicate topic id",
			func(d string) string { return strings.Replace(d, `"id": "cells-transport"`, `"id": "cells-structure"`, 1) },
			"duplicate topic",
		},
		{
			"sequence gap",
			func(d string) string { return strings.Replace(d, `"sequence_index": 2`, `"sequence_index": 5`, 1) },
			"contiguous",
		},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.mangle(validDoc)))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantMsg) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantMsg)
		}
	}
}

func TestCatalogLookups(t *testing.T) {
	s, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := NewCatalog(s)

	topics, err := c.Topics("gcse-bio")
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if len(topics) != 3 {
		t.Fatalf("topics = %d, want 3", len(topics))
	}

	// Returned slice is a copy; mutating it must not corrupt the catalog.
	topics[0].ID = "mutated"
	again, _ := c.Topics("gcse-bio")
	if again[0].ID != "cells-structure" {
		t.Error("catalog topics were mutated through the returned slice")
	}

	if _, err := c.Topics("unknown"); err == nil {
		t.Error("expected unknown subject error")
	}
}

func TestQualityMapOverride(t *testing.T) {
	doc := strings.Replace(validDoc, `"daily_budget_mins": 60,`,
		`"daily_budget_mins": 60, "quality_bands": [{"min_pct": 50, "quality": 5}, {"min_pct": 0, "quality": 0}],`, 1)
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m, err := s.QualityMap()
	if err != nil {
		t.Fatalf("quality map: %v", err)
	}
	if got := m.Quality(55); got != 5 {
		t.Errorf("override Quality(55) = %d, want 5", got)
	}

	// Without bands the default table applies.
	base, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}
	dm, err := base.QualityMap()
	if err != nil {
		t.Fatalf("default map: %v", err)
	}
	if got := dm.Quality(55); got != 3 {
		t.Errorf("default Quality(55) = %d, want 3", got)
	}
}
