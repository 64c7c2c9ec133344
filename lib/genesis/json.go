// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"bytes"
	"encoding/json"
	"sort"
)

var (
	chainSpecFields = []string{"name", "id", "chainType", "bootNodes", "telemetryEndpoints",
		"protocolId", "properties", "codeSubstitutes", "genesis"}
	fieldsFields    = []string{"raw"}
	rawFieldsFields = []string{"top", "childrenDefault"}
)

// UnmarshalJSON decodes the known fields and keeps every other field in Extra.
func (c *ChainSpec) UnmarshalJSON(data []byte) error {
	type known ChainSpec
	var k known
	err := json.Unmarshal(data, &k)
	if err != nil {
		return err
	}

	*c = ChainSpec(k)
	c.Extra, err = unknownFields(data, chainSpecFields)
	return err
}

// MarshalJSON encodes the known fields followed by the fields in Extra.
func (c ChainSpec) MarshalJSON() ([]byte, error) {
	type known ChainSpec
	return marshalWithExtra(known(c), c.Extra)
}

// UnmarshalJSON decodes the known fields and keeps every other field in Extra.
func (f *Fields) UnmarshalJSON(data []byte) error {
	type known Fields
	var k known
	err := json.Unmarshal(data, &k)
	if err != nil {
		return err
	}

	*f = Fields(k)
	f.Extra, err = unknownFields(data, fieldsFields)
	return err
}

// MarshalJSON encodes the known fields followed by the fields in Extra.
func (f Fields) MarshalJSON() ([]byte, error) {
	type known Fields
	return marshalWithExtra(known(f), f.Extra)
}

// UnmarshalJSON decodes the known fields and keeps every other field in Extra.
func (r *RawFields) UnmarshalJSON(data []byte) error {
	type known RawFields
	var k known
	err := json.Unmarshal(data, &k)
	if err != nil {
		return err
	}

	*r = RawFields(k)
	r.Extra, err = unknownFields(data, rawFieldsFields)
	return err
}

// MarshalJSON encodes the known fields followed by the fields in Extra.
func (r RawFields) MarshalJSON() ([]byte, error) {
	type known RawFields
	return marshalWithExtra(known(r), r.Extra)
}

func unknownFields(data []byte, knownFields []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	err := json.Unmarshal(data, &all)
	if err != nil {
		return nil, err
	}

	for _, field := range knownFields {
		delete(all, field)
	}

	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// marshalWithExtra encodes v, which must encode to a JSON object, and appends
// the extra fields sorted by key. Extra fields shadowed by a known field are dropped.
func marshalWithExtra(v interface{}, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if len(extra) == 0 {
		return data, nil
	}

	var known map[string]json.RawMessage
	err = json.Unmarshal(data, &known)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(extra))
	for key := range extra {
		if _, ok := known[key]; ok {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buffer := bytes.NewBuffer(data[:len(data)-1])
	for _, key := range keys {
		if buffer.Len() > 1 {
			buffer.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buffer.Write(encodedKey)
		buffer.WriteByte(':')
		buffer.Write(extra[key])
	}
	buffer.WriteByte('}')

	return buffer.Bytes(), nil
}
