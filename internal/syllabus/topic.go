// Package syllabus holds the read-only topic catalog: the ordered
// topics of a subject, grouped into sections, as loaded from a
// subject file. Nothing here mutates after load.
package syllabus

// Topic is a single syllabus item.
type Topic struct {
	ID            string `json:"id"`
	SectionID     string `json:"section_id"`
	SequenceIndex int    `json:"sequence_index"`
	Name          string `json:"name"`
	EstimatedMins int    `json:"estimated_mins"`
}

// Section is a conceptual grouping of topics. The planner's
// interleaving cap is applied per section.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
