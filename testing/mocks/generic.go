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

package mocks

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/optakt/flow-balances/models/balances"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test conversion components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)

	GenericRecords = []balances.Record{
		{Line: 1, Cells: []string{"address", "balance"}},
		{Line: 2, Cells: []string{"0xabc", "100"}},
		{Line: 3, Cells: []string{"0xdef", "250"}},
	}

	GenericMapping = balances.Mapping{
		"0xabc": 100,
		"0xdef": 250,
	}
)
