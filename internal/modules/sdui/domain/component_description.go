package domain

import "encoding/json"

const DescriptionComponentTag = "SDUIDescriptionComponent"

// DescriptionComponent renders a block of plain text.
type DescriptionComponent struct {
	Text string `json:"text"`
}

func (DescriptionComponent) ComponentTag() string { return DescriptionComponentTag }
func (DescriptionComponent) isComponent()         {}

var descriptionComponentShape = ObjectSchema{
	Name: DescriptionComponentTag,
	Fields: []FieldSchema{
		{Name: "text", Type: FieldTypeString, Required: true},
	},
}

func decodeDescriptionComponent(content json.RawMessage) (Component, error) {
	var description DescriptionComponent
	if err := json.Unmarshal(content, &description); err != nil {
		return nil, &DecodeError{Tag: DescriptionComponentTag, Err: err}
	}
	if description.Text == "" {
		return nil, &DecodeError{Tag: DescriptionComponentTag, Field: "text", Err: errMissingRequiredField}
	}
	return description, nil
}
