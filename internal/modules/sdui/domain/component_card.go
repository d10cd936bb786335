package domain

import "encoding/json"

const CardComponentTag = "SDUICardComponent"

// CardComponent renders a tappable card with a title and optional artwork.
type CardComponent struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

func (CardComponent) ComponentTag() string { return CardComponentTag }
func (CardComponent) isComponent()         {}

var cardComponentShape = ObjectSchema{
	Name: CardComponentTag,
	Fields: []FieldSchema{
		{Name: "title", Type: FieldTypeString, Required: true},
		{Name: "description", Type: FieldTypeString},
		{Name: "image_url", Type: FieldTypeString},
	},
}

func decodeCardComponent(content json.RawMessage) (Component, error) {
	var card CardComponent
	if err := json.Unmarshal(content, &card); err != nil {
		return nil, &DecodeError{Tag: CardComponentTag, Err: err}
	}
	if err := card.validate(); err != nil {
		return nil, err
	}
	return card, nil
}

func (c CardComponent) validate() error {
	if c.Title == "" {
		return &DecodeError{Tag: CardComponentTag, Field: "title", Err: errMissingRequiredField}
	}
	return nil
}
