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
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/optakt/flow-balances/models/balances"
)

// Converter reads a CSV file of account balances and writes the encoded
// address to balance mapping to an output file. Every stage either succeeds
// or aborts the conversion, in which case nothing is written.
type Converter struct {
	log     zerolog.Logger
	parser  Parser
	builder Builder
	codec   balances.Codec
	writer  Writer
}

// New creates a new converter from its components.
func New(log zerolog.Logger, parser Parser, builder Builder, codec balances.Codec, writer Writer) *Converter {

	c := Converter{
		log:     log.With().Str("component", "converter").Logger(),
		parser:  parser,
		builder: builder,
		codec:   codec,
		writer:  writer,
	}

	return &c
}

// Convert runs the conversion from the CSV file at `input` to the file at
// `output`.
func (c *Converter) Convert(input string, output string) error {

	log := c.log.With().Str("input", input).Str("output", output).Logger()

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	log.Debug().Int("bytes", len(data)).Msg("input file read")

	records, err := c.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not parse input file: %w", err)
	}

	log.Debug().Int("rows", len(records)).Msg("input rows parsed")

	mapping, err := c.builder.Build(records)
	if err != nil {
		return fmt.Errorf("could not convert input rows: %w", err)
	}

	encoded, err := c.codec.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("could not encode balances: %w", err)
	}

	err = c.writer.Write(output, encoded)
	if err != nil {
		return fmt.Errorf("could not write output file: %w", err)
	}

	log.Info().Int("rows", len(records)).Int("entries", len(mapping)).Int("bytes", len(encoded)).Msg("balances converted")

	return nil
}
