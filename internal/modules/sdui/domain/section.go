package domain

import "encoding/json"

// RawRecord is one persisted section row as handed over by the storage
// collaborator: a discriminator tag, the opaque payload, and section-level
// metadata. The record layout beyond these fields belongs to storage.
type RawRecord struct {
	ID         string
	Tag        string
	Content    json.RawMessage
	Visibility string
}

// Section is one unit of returned UI content wrapping exactly one component.
// Sections are built per request and discarded once the response is sent;
// their ordering is implicit in the sequence that contains them.
type Section struct {
	ID        string
	Component Component
}

// BuildSection decodes one persisted record into a section. The section-level
// metadata is attached untouched; decode failures propagate annotated with the
// record id so the broken row can be found. No retry happens here - a decode
// failure is structural, not transient.
func BuildSection(record RawRecord) (Section, error) {
	component, err := DecodeComponent(record.Tag, record.Content)
	if err != nil {
		if decodeErr, ok := err.(*DecodeError); ok {
			annotated := *decodeErr
			annotated.SectionID = record.ID
			return Section{}, &annotated
		}
		return Section{}, err
	}
	return Section{ID: record.ID, Component: component}, nil
}

type sectionJSON struct {
	ID        string          `json:"id"`
	Component json.RawMessage `json:"component"`
}

// MarshalJSON emits the section with its component in the adjacently tagged
// envelope the mobile clients expect.
func (s Section) MarshalJSON() ([]byte, error) {
	component, err := MarshalTagged(s.Component)
	if err != nil {
		return nil, err
	}
	return json.Marshal(sectionJSON{ID: s.ID, Component: component})
}
