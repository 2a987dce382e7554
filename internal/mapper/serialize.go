package mapper

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/sosodev/duration"
	"github.com/tidwall/sjson"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	nullJSON     = json.RawMessage("null")
)

// Serialize produces the wire document for value, which must be a struct or a
// pointer to one carrying the Go fields named by spec. objectName roots the
// field paths used in validation errors.
//
// Read-only fields are never written. A required field that is absent, an enum
// value outside the allowed set or a value of the wrong type fails with a
// *ValidationError before anything is returned.
func Serialize(spec *ModelSpec, value any, objectName string) (json.RawMessage, error) {
	return serializeModel(spec, reflect.ValueOf(value), objectName)
}

func serializeModel(spec *ModelSpec, v reflect.Value, path string) (json.RawMessage, error) {
	if isAbsent(v) {
		return nil, &ValidationError{Field: path, Reason: "cannot be nil"}
	}

	v = indirect(v)
	if v.Kind() != reflect.Struct {
		return nil, mustBe(path, KindComposite)
	}

	doc := []byte("{}")

	for _, field := range spec.EffectiveFields() {
		if field.ReadOnly {
			continue
		}

		fieldPath := path + "." + field.Name

		fv := v.FieldByName(field.Name)
		if !fv.IsValid() {
			return nil, fmt.Errorf("%w: %s has no field %s", ErrFieldNotFound, v.Type(), field.Name)
		}

		if isAbsent(fv) {
			if field.Required {
				return nil, required(fieldPath)
			}

			continue
		}

		raw, err := serializeValue(field.Shape, fv, fieldPath)
		if err != nil {
			return nil, err
		}

		doc, err = sjson.SetRawBytes(doc, field.WireName, raw)
		if err != nil {
			return nil, fmt.Errorf("placing %s at %q: %w", fieldPath, field.WireName, err)
		}
	}

	return doc, nil
}

//nolint:cyclop,funlen
func serializeValue(shape Shape, v reflect.Value, path string) (json.RawMessage, error) {
	if isNil(v) {
		return nullJSON, nil
	}

	v = indirect(v)

	switch shape.Kind {
	case KindString:
		if v.Kind() != reflect.String {
			return nil, mustBe(path, shape.Kind)
		}

		return json.Marshal(v.String())
	case KindEnum:
		if v.Kind() != reflect.String {
			return nil, mustBe(path, shape.Kind)
		}

		s := v.String()
		if len(shape.AllowedValues) > 0 && !slices.Contains(shape.AllowedValues, s) {
			return nil, &ValidationError{
				Field:  path,
				Reason: fmt.Sprintf("%q is not one of %s", s, strings.Join(shape.AllowedValues, ", ")),
			}
		}

		return json.Marshal(s)
	case KindNumber:
		switch {
		case v.CanInt():
			return json.Marshal(v.Int())
		case v.CanUint():
			return json.Marshal(v.Uint())
		case v.CanFloat():
			return json.Marshal(v.Float())
		}

		return nil, mustBe(path, shape.Kind)
	case KindBoolean:
		if v.Kind() != reflect.Bool {
			return nil, mustBe(path, shape.Kind)
		}

		return json.Marshal(v.Bool())
	case KindDateTime:
		if v.Type() != timeType {
			return nil, mustBe(path, shape.Kind)
		}

		t, _ := v.Interface().(time.Time)

		return json.Marshal(t.UTC().Format(time.RFC3339Nano))
	case KindDuration:
		if v.Type() != durationType {
			return nil, mustBe(path, shape.Kind)
		}

		return json.Marshal(duration.Format(time.Duration(v.Int())))
	case KindByteArray:
		if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.Uint8 {
			return nil, mustBe(path, shape.Kind)
		}

		return json.Marshal(base64.StdEncoding.EncodeToString(v.Bytes()))
	case KindComposite:
		return serializeModel(shape.Model, v, path)
	case KindSequence:
		return serializeSequence(shape, v, path)
	case KindDictionary:
		return serializeDictionary(shape, v, path)
	case KindObject:
		return json.Marshal(v.Interface())
	}

	return nil, fmt.Errorf("%w: %s at %s", ErrInvalidSpec, shape.Kind, path)
}

func serializeSequence(shape Shape, v reflect.Value, path string) (json.RawMessage, error) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, mustBe(path, shape.Kind)
	}

	items := make([]json.RawMessage, 0, v.Len())

	for i := range v.Len() {
		raw, err := serializeValue(*shape.Element, v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}

		items = append(items, raw)
	}

	return json.Marshal(items)
}

func serializeDictionary(shape Shape, v reflect.Value, path string) (json.RawMessage, error) {
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, mustBe(path, shape.Kind)
	}

	entries := make(map[string]json.RawMessage, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		key := iter.Key().String()

		raw, err := serializeValue(*shape.Element, iter.Value(), path+"."+key)
		if err != nil {
			return nil, err
		}

		entries[key] = raw
	}

	return json.Marshal(entries)
}

// isAbsent reports whether v carries no value. Nillable kinds are absent when
// nil; value kinds are absent at their zero value.
func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.Struct:
		return false
	default:
		return v.IsZero()
	}
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return false
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}

		v = v.Elem()
	}

	return v
}
