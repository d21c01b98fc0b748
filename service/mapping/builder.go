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

package mapping

import (
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/flow-balances/models/balances"
)

// Builder converts parsed CSV records into an address to balance mapping.
type Builder struct {
	cfg Config
}

// New creates a new mapping builder, using the given options.
func New(options ...Option) *Builder {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	b := Builder{
		cfg: cfg,
	}

	return &b
}

// Build creates the mapping for the given records. Every record after the
// skipped leading rows must carry an address and a numeric balance; when an
// address appears more than once, the last balance wins. If any record is
// invalid, no mapping is returned and the error lists every invalid record.
func (b *Builder) Build(records []balances.Record) (balances.Mapping, error) {

	mapping := make(balances.Mapping)
	if uint(len(records)) <= b.cfg.Skip {
		return mapping, nil
	}

	var merr *multierror.Error
	lines := make(map[string]int)
	for _, record := range records[b.cfg.Skip:] {

		raw, ok := record.Balance()
		if !ok {
			merr = multierror.Append(merr, &balances.RowError{
				Line: record.Line,
				Err:  balances.ErrMissingBalance,
			})
			continue
		}

		balance, err := ParseBalance(raw)
		if err != nil {
			merr = multierror.Append(merr, &balances.RowError{
				Line:   record.Line,
				Column: 2,
				Err:    err,
			})
			continue
		}

		address := record.Address()
		previous, seen := lines[address]
		if seen {
			b.cfg.Duplicate(address, previous, record.Line)
		}

		lines[address] = record.Line
		mapping[address] = balance
	}

	err := merr.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return mapping, nil
}
