package util

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// IsSimpleType checks if the given value's kind can be represented as a
// single query parameter.
func IsSimpleType(f reflect.Value) bool {
	switch f.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.String:
		return true
	}
	return false
}

// SimpleTypeToParam converts a simple value into its query parameter form.
func SimpleTypeToParam(f reflect.Value) string {
	switch f.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(f.Bool())
	case reflect.Int, reflect.Int64:
		// f.Int() is always an int64
		return strconv.FormatInt(f.Int(), 10)
	case reflect.Uint, reflect.Uint64:
		// f.Uint() is always a uint64
		return strconv.FormatUint(f.Uint(), 10)
	case reflect.String:
		return f.String()
	}
	panic("the input parameter is not a simple type")
}

// Changed returns true if the named field of the options struct was set.
func Changed(o interface{}, fieldName string) bool {
	r := reflect.ValueOf(o)
	value := reflect.Indirect(r).FieldByName(fieldName)
	return !value.IsNil()
}

// ToParams formats struct fields to be passed to API service.  The
// parameter name is the lowercased field name unless a schema tag
// overrides it; maps marshal into a single JSON-string parameter, which
// is how filters travel.
func ToParams(o interface{}) (url.Values, error) {
	params := url.Values{}
	if o == nil || reflect.ValueOf(o).IsNil() {
		return params, nil
	}
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	s := reflect.ValueOf(o)
	if reflect.Ptr == s.Kind() {
		s = s.Elem()
	}
	sType := s.Type()
	for i := 0; i < s.NumField(); i++ {
		fieldName := sType.Field(i).Name
		if !Changed(o, fieldName) {
			continue
		}
		paramName := strings.ToLower(fieldName)
		if tag, ok := sType.Field(i).Tag.Lookup("schema"); ok {
			if tag == "-" {
				// Client-side only fields never reach the wire.
				continue
			}
			paramName = tag
		}
		f := s.Field(i)
		if reflect.Ptr == f.Kind() {
			f = f.Elem()
		}
		switch {
		case IsSimpleType(f):
			params.Set(paramName, SimpleTypeToParam(f))
		case f.Kind() == reflect.Slice:
			for i := 0; i < f.Len(); i++ {
				elem := f.Index(i)
				if !IsSimpleType(elem) {
					return nil, errors.New("slices must contain only simple types")
				}
				params.Add(paramName, SimpleTypeToParam(elem))
			}
		case f.Kind() == reflect.Map:
			lowerCaseKeys := make(map[string][]string)
			iter := f.MapRange()
			for iter.Next() {
				lowerCaseKeys[strings.ToLower(iter.Key().Interface().(string))] = iter.Value().Interface().([]string)
			}
			mapString, err := json.MarshalToString(lowerCaseKeys)
			if err != nil {
				return nil, err
			}
			params.Set(paramName, mapString)
		}
	}
	return params, nil
}
