package sdk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// field binds one key of the xcodebuild JSON schema to a Record field.
type field struct {
	key      string
	required bool
	target   func(r *Record) any // pointer into r for decoding
	value    func(r *Record) any // value for encoding
}

func text(key string, p func(r *Record) *string) field {
	return field{key: key, required: true,
		target: func(r *Record) any { return p(r) },
		value:  func(r *Record) any { return *p(r) }}
}

func flag(key string, p func(r *Record) *bool) field {
	return field{key: key, required: true,
		target: func(r *Record) any { return p(r) },
		value:  func(r *Record) any { return *p(r) }}
}

func optional(key string, p func(r *Record) **string) field {
	return field{key: key,
		target: func(r *Record) any { return p(r) },
		value:  func(r *Record) any { return *p(r) }}
}

// recordSchema is the complete contract with xcodebuild's output. Keys are
// lower camel case except buildID and iOSSupportVersion.
var recordSchema = []field{
	text("canonicalName", func(r *Record) *string { return &r.CanonicalName }),
	text("displayName", func(r *Record) *string { return &r.DisplayName }),
	flag("isBaseSdk", func(r *Record) *bool { return &r.IsBaseSDK }),
	text("platform", func(r *Record) *string { return &r.Platform }),
	text("platformPath", func(r *Record) *string { return &r.PlatformPath }),
	text("platformVersion", func(r *Record) *string { return &r.PlatformVersion }),
	text("sdkPath", func(r *Record) *string { return &r.SDKPath }),
	text("sdkVersion", func(r *Record) *string { return &r.SDKVersion }),
	optional("buildID", func(r *Record) **string { return &r.BuildID }),
	optional("productBuildVersion", func(r *Record) **string { return &r.ProductBuildVersion }),
	optional("productCopyright", func(r *Record) **string { return &r.ProductCopyright }),
	optional("productName", func(r *Record) **string { return &r.ProductName }),
	optional("productVersion", func(r *Record) **string { return &r.ProductVersion }),
	optional("iOSSupportVersion", func(r *Record) **string { return &r.IOSSupportVersion }),
	optional("productUserVisibleVersion", func(r *Record) **string { return &r.ProductUserVisibleVersion }),
}

var jsonNull = []byte("null")

// Parse decodes xcodebuild's JSON array into records. Any missing required
// key or mistyped value fails the whole parse; unknown keys are ignored.
func Parse(data []byte) ([]Record, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("decode sdk list: %w", err)
	}
	if objects == nil {
		return nil, errors.New("decode sdk list: expected a JSON array, got null")
	}

	records := make([]Record, 0, len(objects))
	for i, obj := range objects {
		var r Record
		for _, f := range recordSchema {
			raw, ok := obj[f.key]
			if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
				if f.required {
					return nil, fmt.Errorf("sdk %d: missing field %q", i, f.key)
				}
				continue
			}
			if err := json.Unmarshal(raw, f.target(&r)); err != nil {
				return nil, fmt.Errorf("sdk %d: field %q: %w", i, f.key, err)
			}
		}
		records = append(records, r)
	}
	return records, nil
}

// MarshalJSON writes r with xcodebuild's key names, in schema order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range recordSchema {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.value(&r))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
