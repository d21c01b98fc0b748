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

// DefaultConfig is the default configuration for the mapping builder. The
// first row of a document is its header.
var DefaultConfig = Config{
	Skip:      1,
	Duplicate: func(string, int, int) {},
}

// Config contains the configuration options for the mapping builder.
type Config struct {
	Skip      uint
	Duplicate DuplicateFunc
}

// DuplicateFunc is called when the row on line `next` overwrites the balance
// of an address that was first set on line `previous`.
type DuplicateFunc func(address string, previous int, next int)

// Option is an option that can be given to the builder to configure optional
// parameters on initialization.
type Option func(*Config)

// WithSkip sets the number of leading rows that are ignored.
func WithSkip(skip uint) Option {
	return func(cfg *Config) {
		cfg.Skip = skip
	}
}

// WithDuplicateHook sets the function called on duplicate addresses. A nil
// hook leaves the configured one in place.
func WithDuplicateHook(hook DuplicateFunc) Option {
	return func(cfg *Config) {
		if hook == nil {
			return
		}
		cfg.Duplicate = hook
	}
}
