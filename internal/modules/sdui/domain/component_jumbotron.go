package domain

import "encoding/json"

const JumbotronComponentTag = "SDUIJumbotronComponent"

// JumbotronComponent renders a prominent header banner.
type JumbotronComponent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func (JumbotronComponent) ComponentTag() string { return JumbotronComponentTag }
func (JumbotronComponent) isComponent()         {}

var jumbotronComponentShape = ObjectSchema{
	Name: JumbotronComponentTag,
	Fields: []FieldSchema{
		{Name: "title", Type: FieldTypeString, Required: true},
		{Name: "subtitle", Type: FieldTypeString},
		{Name: "image_url", Type: FieldTypeString},
	},
}

func decodeJumbotronComponent(content json.RawMessage) (Component, error) {
	var jumbotron JumbotronComponent
	if err := json.Unmarshal(content, &jumbotron); err != nil {
		return nil, &DecodeError{Tag: JumbotronComponentTag, Err: err}
	}
	if jumbotron.Title == "" {
		return nil, &DecodeError{Tag: JumbotronComponentTag, Field: "title", Err: errMissingRequiredField}
	}
	return jumbotron, nil
}
