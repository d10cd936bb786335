package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

const ScrollViewHorizontalComponentTag = "SDUIScrollViewHorizontalComponent"

// errMissingRequiredField is the shared cause for absent required payload fields.
var errMissingRequiredField = errors.New("missing required field")

// ScrollViewHorizontalComponent renders a horizontally scrollable strip of cards.
type ScrollViewHorizontalComponent struct {
	Items []CardComponent `json:"items"`
}

func (ScrollViewHorizontalComponent) ComponentTag() string { return ScrollViewHorizontalComponentTag }
func (ScrollViewHorizontalComponent) isComponent()         {}

var scrollViewHorizontalComponentShape = ObjectSchema{
	Name: ScrollViewHorizontalComponentTag,
	Fields: []FieldSchema{
		{Name: "items", Type: FieldTypeList, Required: true},
	},
}

func decodeScrollViewHorizontalComponent(content json.RawMessage) (Component, error) {
	var scrollView ScrollViewHorizontalComponent
	if err := json.Unmarshal(content, &scrollView); err != nil {
		return nil, &DecodeError{Tag: ScrollViewHorizontalComponentTag, Err: err}
	}
	if len(scrollView.Items) == 0 {
		return nil, &DecodeError{Tag: ScrollViewHorizontalComponentTag, Field: "items", Err: errMissingRequiredField}
	}
	for i, item := range scrollView.Items {
		if err := item.validate(); err != nil {
			return nil, &DecodeError{Tag: ScrollViewHorizontalComponentTag, Field: fmt.Sprintf("items[%d]", i), Err: err}
		}
	}
	return scrollView, nil
}
