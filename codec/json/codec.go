// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package json

import (
	"bytes"
	"encoding/json"
)

// Codec encodes values as compact JSON documents without trailing newline.
// Object keys are sorted and HTML characters are left unescaped.
type Codec struct{}

// NewCodec creates a new JSON codec.
func NewCodec() *Codec {
	return &Codec{}
}

func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(value)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (c *Codec) Unmarshal(data []byte, value interface{}) error {
	return json.Unmarshal(data, value)
}
