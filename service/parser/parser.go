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

package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/optakt/flow-balances/models/balances"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// Parser turns a CSV document into records.
type Parser struct {
	log zerolog.Logger
	cfg Config
}

// New returns a new CSV parser, using the given options.
func New(log zerolog.Logger, options ...Option) *Parser {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	p := Parser{
		log: log.With().Str("component", "csv_parser").Logger(),
		cfg: cfg,
	}

	return &p
}

// Parse reads all rows from the given CSV document. Rows are returned in
// input order, header included, with at most their first two cells.
func (p *Parser) Parse(data io.Reader) ([]balances.Record, error) {

	buffered := bufio.NewReader(data)
	prefix, err := buffered.Peek(len(bom))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	if bytes.Equal(prefix, bom) {
		_, _ = buffered.Discard(len(bom))
		p.log.Debug().Msg("skipped byte order mark")
	}

	reader := newPositionReader(p.cfg.NewReader(buffered))

	var rows []row
	err = gocsv.UnmarshalCSVWithoutHeaders(reader, &rows)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		p.log.Debug().Msg("csv document is empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode csv document: %w", err)
	}

	records := make([]balances.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}

	p.log.Debug().Int("rows", len(records)).Msg("csv document parsed")

	return records, nil
}
