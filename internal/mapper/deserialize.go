package mapper

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/sosodev/duration"
	"github.com/tidwall/gjson"
)

// dateTimeLayouts lists the timestamp forms accepted on input. The service
// sometimes omits the zone designator.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateOnly,
}

// Deserialize reads data into out, which must be a non-nil pointer to a
// struct carrying the Go fields named by spec.
//
// Decoding is lenient: unknown wire keys are ignored, enum values outside the
// allowed set are kept as-is, and timestamps, durations or base64 strings that
// do not parse leave the field absent. Invalid JSON and container shape
// mismatches fail with a *DecodeError.
func Deserialize(spec *ModelSpec, data []byte, out any, objectName string) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("%w: got %T", ErrNotPointer, out)
	}

	if !gjson.ValidBytes(data) {
		return &DecodeError{Path: objectName, Err: ErrInvalidJSON}
	}

	_, err := deserializeValue(Composite(spec), gjson.ParseBytes(data), target.Elem(), objectName)

	return err
}

func deserializeModel(spec *ModelSpec, doc gjson.Result, v reflect.Value, path string) error {
	if !doc.IsObject() {
		return mismatch(path, KindComposite, describe(doc))
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is %s, want struct", ErrUnsupportedValue, path, v.Type())
	}

	for _, field := range spec.EffectiveFields() {
		fv := v.FieldByName(field.Name)
		if !fv.IsValid() {
			return fmt.Errorf("%w: %s has no field %s", ErrFieldNotFound, v.Type(), field.Name)
		}

		item := doc.Get(readPath(field.WireName))
		if !item.Exists() || item.Type == gjson.Null {
			continue
		}

		_, err := deserializeValue(field.Shape, item, fv, path+"."+field.Name)
		if err != nil {
			return err
		}
	}

	return nil
}

// deserializeValue stores item into target and reports whether a value was
// set. Pointer targets are only allocated once the value decodes.
//
//nolint:cyclop,funlen,gocognit
func deserializeValue(shape Shape, item gjson.Result, target reflect.Value, path string) (bool, error) {
	if item.Type == gjson.Null {
		return false, nil
	}

	if target.Kind() == reflect.Pointer {
		elem := reflect.New(target.Type().Elem())

		set, err := deserializeValue(shape, item, elem.Elem(), path)
		if err != nil || !set {
			return false, err
		}

		target.Set(elem)

		return true, nil
	}

	// A scalar of the wrong JSON type leaves the field absent. Only container
	// mismatches fail the decode.
	switch shape.Kind {
	case KindString, KindEnum:
		if item.Type != gjson.String {
			return false, nil
		}

		if target.Kind() != reflect.String {
			return false, unsupported(path, shape, target)
		}

		target.SetString(item.Str)
	case KindNumber:
		if item.Type != gjson.Number {
			return false, nil
		}

		switch {
		case target.CanInt():
			target.SetInt(item.Int())
		case target.CanUint():
			target.SetUint(item.Uint())
		case target.CanFloat():
			target.SetFloat(item.Float())
		default:
			return false, unsupported(path, shape, target)
		}
	case KindBoolean:
		if item.Type != gjson.True && item.Type != gjson.False {
			return false, nil
		}

		if target.Kind() != reflect.Bool {
			return false, unsupported(path, shape, target)
		}

		target.SetBool(item.Bool())
	case KindDateTime:
		if item.Type != gjson.String {
			return false, nil
		}

		if target.Type() != timeType {
			return false, unsupported(path, shape, target)
		}

		t, ok := parseDateTime(item.Str)
		if !ok {
			return false, nil
		}

		target.Set(reflect.ValueOf(t))
	case KindDuration:
		if item.Type != gjson.String {
			return false, nil
		}

		if target.Type() != durationType {
			return false, unsupported(path, shape, target)
		}

		d, err := duration.Parse(item.Str)
		if err != nil {
			return false, nil
		}

		target.SetInt(int64(d.ToTimeDuration()))
	case KindByteArray:
		if item.Type != gjson.String {
			return false, nil
		}

		if target.Kind() != reflect.Slice || target.Type().Elem().Kind() != reflect.Uint8 {
			return false, unsupported(path, shape, target)
		}

		b, err := base64.StdEncoding.DecodeString(item.Str)
		if err != nil {
			b, err = base64.RawURLEncoding.DecodeString(item.Str)
			if err != nil {
				return false, nil
			}
		}

		target.SetBytes(b)
	case KindComposite:
		err := deserializeModel(shape.Model, item, target, path)
		if err != nil {
			return false, err
		}
	case KindSequence:
		return deserializeSequence(shape, item, target, path)
	case KindDictionary:
		return deserializeDictionary(shape, item, target, path)
	case KindObject:
		err := json.Unmarshal([]byte(item.Raw), target.Addr().Interface())
		if err != nil {
			return false, &DecodeError{Path: path, Err: err}
		}
	default:
		return false, fmt.Errorf("%w: %s at %s", ErrInvalidSpec, shape.Kind, path)
	}

	return true, nil
}

func deserializeSequence(shape Shape, item gjson.Result, target reflect.Value, path string) (bool, error) {
	if !item.IsArray() {
		return false, mismatch(path, shape.Kind, describe(item))
	}

	if target.Kind() != reflect.Slice {
		return false, unsupported(path, shape, target)
	}

	elements := item.Array()
	out := reflect.MakeSlice(target.Type(), 0, len(elements))

	for i, element := range elements {
		value := reflect.New(target.Type().Elem()).Elem()

		_, err := deserializeValue(*shape.Element, element, value, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return false, err
		}

		out = reflect.Append(out, value)
	}

	target.Set(out)

	return true, nil
}

func deserializeDictionary(shape Shape, item gjson.Result, target reflect.Value, path string) (bool, error) {
	if !item.IsObject() {
		return false, mismatch(path, shape.Kind, describe(item))
	}

	if target.Kind() != reflect.Map || target.Type().Key().Kind() != reflect.String {
		return false, unsupported(path, shape, target)
	}

	out := reflect.MakeMap(target.Type())

	var err error

	item.ForEach(func(key, element gjson.Result) bool {
		value := reflect.New(target.Type().Elem()).Elem()

		_, err = deserializeValue(*shape.Element, element, value, path+"."+key.String())
		if err != nil {
			return false
		}

		out.SetMapIndex(reflect.ValueOf(key.String()).Convert(target.Type().Key()), value)

		return true
	})

	if err != nil {
		return false, err
	}

	target.Set(out)

	return true, nil
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func describe(item gjson.Result) string {
	switch {
	case item.IsArray():
		return "array"
	case item.IsObject():
		return "object"
	case item.Type == gjson.String:
		return "string"
	case item.Type == gjson.Number:
		return "number"
	case item.IsBool():
		return "boolean"
	default:
		return "null"
	}
}

func unsupported(path string, shape Shape, target reflect.Value) error {
	return fmt.Errorf("%w: %s cannot hold %s in %s", ErrUnsupportedValue, path, shape.Kind, target.Type())
}
