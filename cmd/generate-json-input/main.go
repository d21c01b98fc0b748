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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/flow-balances/codec/json"
	"github.com/optakt/flow-balances/codec/zbor"
	"github.com/optakt/flow-balances/models/balances"
	"github.com/optakt/flow-balances/service/converter"
	"github.com/optakt/flow-balances/service/mapping"
	"github.com/optakt/flow-balances/service/output"
	"github.com/optakt/flow-balances/service/parser"
)

const (
	success = 0
	failure = 1
)

const version = "0.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {

	// Command line parameter initialization.
	var (
		flagFormat  string
		flagInput   string
		flagLevel   string
		flagOutput  string
		flagVersion bool
	)

	flags := pflag.NewFlagSet("generate-json-input", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: generate-json-input [options]\n\nOptions:\n")
		flags.PrintDefaults()
	}

	flags.StringVarP(&flagFormat, "format", "f", formatJSON, "output encoding (json, cbor or zbor)")
	flags.StringVarP(&flagInput, "input", "i", "", "input CSV file location containing a map of account addresses to string balances")
	flags.StringVarP(&flagLevel, "level", "l", "info", "log level for JSON logger output")
	flags.StringVarP(&flagOutput, "output", "o", "test.json", "output file location, overwritten if it exists")
	flags.BoolVar(&flagVersion, "version", false, "output the version number")

	err := flags.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return success
	}
	if err != nil {
		return failure
	}

	if flagVersion {
		fmt.Fprintln(stdout, version)
		return success
	}

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	cfg := Config{
		Input:  flagInput,
		Output: flagOutput,
		Format: flagFormat,
	}
	err = cfg.Validate()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		flags.Usage()
		return failure
	}

	// Initialize the conversion components.
	builder := mapping.New(mapping.WithDuplicateHook(func(address string, previous int, next int) {
		log.Warn().Str("address", address).Int("previous", previous).Int("line", next).Msg("duplicate address overwrites balance")
	}))
	conv := converter.New(
		log,
		parser.New(log),
		builder,
		newCodec(cfg.Format),
		output.New(log),
	)

	err = conv.Convert(cfg.Input, cfg.Output)
	if err != nil {
		log.Error().Err(err).Msg("could not convert balances")
		return failure
	}

	return success
}

func newCodec(format string) balances.Codec {
	switch format {
	case formatCBOR:
		return zbor.NewCodec()
	case formatZBOR:
		return zbor.NewCodec(zbor.WithCompression())
	default:
		return json.NewCodec()
	}
}
