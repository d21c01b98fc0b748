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

	"github.com/go-playground/validator/v10"
)

// Supported output encodings.
const (
	formatJSON = "json"
	formatCBOR = "cbor"
	formatZBOR = "zbor"
)

// Config holds the validated command line settings of a conversion.
type Config struct {
	Input  string `validate:"required"`
	Output string `validate:"required"`
	Format string `validate:"oneof=json cbor zbor"`
}

var validate = validator.New()

// Validate checks the settings and returns an error describing the first
// invalid one.
func (c Config) Validate() error {

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate configuration: %w", err)
	}

	field := verrs[0]
	switch field.Field() {
	case "Input":
		return errors.New("required option '-i, --input <path>' not specified")
	case "Output":
		return errors.New("option '-o, --output <path>' must not be empty")
	case "Format":
		return fmt.Errorf("invalid format %q (supported: %s, %s, %s)", field.Value(), formatJSON, formatCBOR, formatZBOR)
	default:
		return fmt.Errorf("invalid option %s (%s)", field.Field(), field.Tag())
	}
}
