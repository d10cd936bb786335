package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Component is one value out of the closed set of UI component kinds. Values
// are constructed only by decoding persisted data and are never mutated after
// construction. The unexported marker keeps the set closed to this package.
type Component interface {
	ComponentTag() string
	isComponent()
}

// componentCodec binds a discriminator tag to its payload decoder and schema
// shape. Adding a component kind means one new payload file plus one entry
// here and one case in EncodeComponent; TestSchemaMatchesEncodableKinds keeps
// the three in lockstep.
type componentCodec struct {
	decode func(content json.RawMessage) (Component, error)
	shape  ObjectSchema
}

var componentCodecs = map[string]componentCodec{
	CardComponentTag:                 {decode: decodeCardComponent, shape: cardComponentShape},
	DescriptionComponentTag:          {decode: decodeDescriptionComponent, shape: descriptionComponentShape},
	JumbotronComponentTag:            {decode: decodeJumbotronComponent, shape: jumbotronComponentShape},
	ScrollViewHorizontalComponentTag: {decode: decodeScrollViewHorizontalComponent, shape: scrollViewHorizontalComponentShape},
}

// ComponentTags returns every registered discriminator tag in stable order.
func ComponentTags() []string {
	tags := make([]string, 0, len(componentCodecs))
	for tag := range componentCodecs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// DecodeComponent dispatches the discriminator tag to the matching payload
// decoder. An unregistered tag fails with ErrUnknownComponentKind; a
// tag/content mismatch fails with the variant's own DecodeError. There is no
// defaulting: every failure is surfaced.
func DecodeComponent(tag string, content json.RawMessage) (Component, error) {
	codec, ok := componentCodecs[tag]
	if !ok {
		return nil, &DecodeError{Tag: tag, Err: fmt.Errorf("%w: %q", ErrUnknownComponentKind, tag)}
	}
	return codec.decode(content)
}

// EncodeComponent is the inverse of DecodeComponent: it emits the discriminator
// tag and the serialized payload. The type switch is the single place that
// enumerates the concrete kinds.
func EncodeComponent(component Component) (string, json.RawMessage, error) {
	switch typed := component.(type) {
	case CardComponent:
		return marshalPayload(CardComponentTag, typed)
	case DescriptionComponent:
		return marshalPayload(DescriptionComponentTag, typed)
	case JumbotronComponent:
		return marshalPayload(JumbotronComponentTag, typed)
	case ScrollViewHorizontalComponent:
		return marshalPayload(ScrollViewHorizontalComponentTag, typed)
	case nil:
		return "", nil, &DecodeError{Err: fmt.Errorf("nil component")}
	default:
		return "", nil, &DecodeError{Tag: component.ComponentTag(), Err: fmt.Errorf("%w: unregistered concrete type %T", ErrUnknownComponentKind, component)}
	}
}

func marshalPayload(tag string, payload any) (string, json.RawMessage, error) {
	content, err := json.Marshal(payload)
	if err != nil {
		return "", nil, &DecodeError{Tag: tag, Err: err}
	}
	return tag, content, nil
}

// taggedEnvelope is the adjacently tagged wire shape existing mobile clients
// consume: the discriminator and the payload travel in two sibling fields.
type taggedEnvelope struct {
	Tag     string          `json:"_serde_union_tag"`
	Content json.RawMessage `json:"_serde_union_content"`
}

// MarshalTagged serializes a component into its adjacently tagged envelope.
func MarshalTagged(component Component) ([]byte, error) {
	tag, content, err := EncodeComponent(component)
	if err != nil {
		return nil, err
	}
	return json.Marshal(taggedEnvelope{Tag: tag, Content: content})
}

// UnmarshalTagged decodes an adjacently tagged envelope back into a component.
func UnmarshalTagged(data []byte) (Component, error) {
	var envelope taggedEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return DecodeComponent(envelope.Tag, envelope.Content)
}
