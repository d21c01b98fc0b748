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
	"io"
	"testing"

	"github.com/optakt/flow-balances/models/balances"
)

type Parser struct {
	ParseFunc func(data io.Reader) ([]balances.Record, error)
}

func BaselineParser(t *testing.T) *Parser {
	t.Helper()

	p := Parser{
		ParseFunc: func(io.Reader) ([]balances.Record, error) {
			return GenericRecords, nil
		},
	}

	return &p
}

func (p *Parser) Parse(data io.Reader) ([]balances.Record, error) {
	return p.ParseFunc(data)
}

type Builder struct {
	BuildFunc func(records []balances.Record) (balances.Mapping, error)
}

func BaselineBuilder(t *testing.T) *Builder {
	t.Helper()

	b := Builder{
		BuildFunc: func([]balances.Record) (balances.Mapping, error) {
			return GenericMapping, nil
		},
	}

	return &b
}

func (b *Builder) Build(records []balances.Record) (balances.Mapping, error) {
	return b.BuildFunc(records)
}

// CSVReader replays a fixed set of rows and does not report field positions.
type CSVReader struct {
	Rows [][]string
	Err  error
}

func (c *CSVReader) Read() ([]string, error) {
	if len(c.Rows) == 0 {
		if c.Err != nil {
			return nil, c.Err
		}
		return nil, io.EOF
	}
	row := c.Rows[0]
	c.Rows = c.Rows[1:]
	return row, nil
}

func (c *CSVReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := c.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}
