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
	"io"

	"github.com/gocarina/gocsv"
)

// DefaultConfig is the default configuration for the CSV parser.
var DefaultConfig = Config{
	NewReader: gocsv.DefaultCSVReader,
}

// Config contains the configuration options for the CSV parser.
type Config struct {
	NewReader func(io.Reader) gocsv.CSVReader
}

// Option is an option that can be given to the parser to configure
// optional parameters on initialization.
type Option func(*Config)

// WithReader sets the factory used to create the underlying CSV reader.
func WithReader(factory func(io.Reader) gocsv.CSVReader) Option {
	return func(cfg *Config) {
		cfg.NewReader = factory
	}
}
