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
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/optakt/flow-balances/models/balances"
)

// row is the position-tagged form of a CSV record. The line and width columns
// are added by the positionReader in front of the address and balance cells.
type row struct {
	Line    int    `csv:"line"`
	Width   int    `csv:"width"`
	Address string `csv:"address"`
	Balance string `csv:"balance"`
}

func (r row) record() balances.Record {
	cells := []string{r.Address, r.Balance}
	if r.Width < len(cells) {
		cells = cells[:r.Width]
	}
	return balances.Record{Line: r.Line, Cells: cells}
}

// positioner is implemented by readers that can report where a parsed field
// started in the input, such as the standard library CSV reader.
type positioner interface {
	FieldPos(field int) (line int, column int)
}

// positionReader wraps a CSV reader so that every record it returns has
// exactly the columns of a row: line, width, address and balance.
type positionReader struct {
	reader gocsv.CSVReader
	pos    positioner
	count  int
}

func newPositionReader(reader gocsv.CSVReader) *positionReader {

	pos, _ := reader.(positioner)

	p := positionReader{
		reader: reader,
		pos:    pos,
	}

	return &p
}

func (p *positionReader) Read() ([]string, error) {

	cells, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("could not read csv row %d: %w", p.count+1, err)
	}

	p.count++
	line := p.count
	if p.pos != nil {
		line, _ = p.pos.FieldPos(0)
	}

	tagged := []string{strconv.Itoa(line), strconv.Itoa(len(cells)), "", ""}
	copy(tagged[2:], cells)

	return tagged, nil
}

func (p *positionReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		tagged, err := p.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, tagged)
	}
}
