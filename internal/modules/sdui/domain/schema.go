package domain

// Field types surfaced by the union schema. Consumers discriminate returned
// values by variant name, so scalar precision beyond this is not needed.
const (
	FieldTypeString = "string"
	FieldTypeList   = "list"
)

// FieldSchema describes one field of a variant's object shape.
type FieldSchema struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// ObjectSchema is the named object shape of a single union variant. A variant
// carries only its own fields; nothing is shared across variants.
type ObjectSchema struct {
	Name   string        `json:"name"`
	Fields []FieldSchema `json:"fields"`
}

// UnionSchema exposes the component union as a sum of named object shapes so
// API consumers can statically discriminate returned values by tag.
type UnionSchema struct {
	Name     string         `json:"name"`
	Variants []ObjectSchema `json:"variants"`
}

// DescribeSchema renders the registered variant table. The variant set is
// derived from the same table DecodeComponent dispatches on, so a registered
// kind can never be missing here.
func DescribeSchema() UnionSchema {
	schema := UnionSchema{Name: "SDUIComponent"}
	for _, tag := range ComponentTags() {
		schema.Variants = append(schema.Variants, componentCodecs[tag].shape)
	}
	return schema
}
