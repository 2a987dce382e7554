// Package mapper converts between typed Go models and their JSON wire form,
// driven by declarative field metadata rather than struct tags.
package mapper

import (
	"fmt"
	"strings"
)

// Kind identifies the wire shape of a field.
type Kind int

// Supported kinds.
const (
	KindString Kind = iota + 1
	KindNumber
	KindBoolean
	KindEnum
	KindComposite
	KindSequence
	KindDictionary
	KindDateTime
	KindDuration
	KindByteArray
	KindObject
)

var kindNames = map[Kind]string{
	KindString:     "String",
	KindNumber:     "Number",
	KindBoolean:    "Boolean",
	KindEnum:       "Enum",
	KindComposite:  "Composite",
	KindSequence:   "Sequence",
	KindDictionary: "Dictionary",
	KindDateTime:   "DateTime",
	KindDuration:   "Duration",
	KindByteArray:  "ByteArray",
	KindObject:     "Object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape describes the wire type of a value. Model is set for composites and
// Element for sequences and dictionaries.
type Shape struct {
	Kind          Kind
	AllowedValues []string
	Model         *ModelSpec
	Element       *Shape
}

// String returns a string shape.
func String() Shape { return Shape{Kind: KindString} }

// Number returns a numeric shape.
func Number() Shape { return Shape{Kind: KindNumber} }

// Boolean returns a boolean shape.
func Boolean() Shape { return Shape{Kind: KindBoolean} }

// DateTime returns an RFC 3339 timestamp shape.
func DateTime() Shape { return Shape{Kind: KindDateTime} }

// Duration returns an ISO 8601 duration shape.
func Duration() Shape { return Shape{Kind: KindDuration} }

// ByteArray returns a base64 shape.
func ByteArray() Shape { return Shape{Kind: KindByteArray} }

// Object returns an opaque pass-through shape.
func Object() Shape { return Shape{Kind: KindObject} }

// Enum returns a string shape restricted to values on serialization.
func Enum(values ...string) Shape {
	return Shape{Kind: KindEnum, AllowedValues: values}
}

// Composite returns a nested model shape.
func Composite(model *ModelSpec) Shape {
	return Shape{Kind: KindComposite, Model: model}
}

// Sequence returns an array shape whose elements have the given shape.
func Sequence(element Shape) Shape {
	return Shape{Kind: KindSequence, Element: &element}
}

// Dictionary returns a string-keyed map shape whose values have the given shape.
func Dictionary(value Shape) Shape {
	return Shape{Kind: KindDictionary, Element: &value}
}

// FieldSpec maps one Go struct field to its JSON wire location.
//
// Name is the Go field name. WireName is a dotted path into the JSON document;
// a literal dot inside a key is written as `\.`.
type FieldSpec struct {
	Name     string
	WireName string
	Required bool
	ReadOnly bool
	Shape    Shape
}

// ModelSpec describes a model as an ordered list of fields, optionally
// extending a base model.
type ModelSpec struct {
	Name   string
	Base   *ModelSpec
	Fields []FieldSpec
}

// EffectiveFields returns the inherited fields first, then the model's own.
// A field declared again in a derived model replaces the inherited one in place.
func (m *ModelSpec) EffectiveFields() []FieldSpec {
	if m == nil {
		return nil
	}

	var inherited []FieldSpec
	if m.Base != nil {
		inherited = m.Base.EffectiveFields()
	}

	fields := make([]FieldSpec, 0, len(inherited)+len(m.Fields))
	index := make(map[string]int, len(inherited)+len(m.Fields))

	for _, field := range append(inherited, m.Fields...) {
		if i, ok := index[field.Name]; ok {
			fields[i] = field

			continue
		}

		index[field.Name] = len(fields)
		fields = append(fields, field)
	}

	return fields
}

// Validate reports metadata mistakes: empty names, missing nested metadata and
// two fields sharing one wire path.
func (m *ModelSpec) Validate() error {
	seen := make(map[string]string)

	for _, field := range m.EffectiveFields() {
		if field.Name == "" || field.WireName == "" {
			return fmt.Errorf("%w: %s has a field without a name", ErrInvalidSpec, m.Name)
		}

		if other, ok := seen[field.WireName]; ok {
			return fmt.Errorf("%w: %s fields %s and %s share wire path %q",
				ErrInvalidSpec, m.Name, other, field.Name, field.WireName)
		}

		seen[field.WireName] = field.Name

		err := field.Shape.validate()
		if err != nil {
			return fmt.Errorf("%s.%s: %w", m.Name, field.Name, err)
		}
	}

	return nil
}

func (s Shape) validate() error {
	switch s.Kind {
	case KindComposite:
		if s.Model == nil {
			return fmt.Errorf("%w: composite without model", ErrInvalidSpec)
		}
	case KindSequence, KindDictionary:
		if s.Element == nil {
			return fmt.Errorf("%w: %s without element shape", ErrInvalidSpec, s.Kind)
		}

		return s.Element.validate()
	case KindString, KindNumber, KindBoolean, KindEnum, KindDateTime, KindDuration, KindByteArray, KindObject:
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidSpec, s.Kind)
	}

	return nil
}

// readPath turns a wire name into a gjson query path. gjson treats a leading
// '@' as a modifier, so it is escaped.
func readPath(wireName string) string {
	if strings.HasPrefix(wireName, "@") {
		return `\` + wireName
	}

	return wireName
}
