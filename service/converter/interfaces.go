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

package converter

import (
	"io"

	"github.com/optakt/flow-balances/models/balances"
)

// Parser reads the rows of a CSV document.
type Parser interface {
	Parse(data io.Reader) ([]balances.Record, error)
}

// Builder turns CSV rows into an address to balance mapping.
type Builder interface {
	Build(records []balances.Record) (balances.Mapping, error)
}

// Writer persists encoded output.
type Writer interface {
	Write(path string, data []byte) error
}
