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

package balances

import (
	"errors"
	"fmt"
)

// Sentinel errors for rows that can not be converted.
var (
	ErrMissingBalance = errors.New("missing balance cell")
	ErrEmptyBalance   = errors.New("empty balance cell")
	ErrInvalidBalance = errors.New("balance is not a number")
	ErrNotFinite      = errors.New("balance is not a finite number")
)

// RowError locates a conversion error within the input document. Line is
// 1-based, Column is 1-based and zero when the error concerns the whole row.
type RowError struct {
	Line   int
	Column int
	Err    error
}

func (r *RowError) Error() string {
	if r.Column == 0 {
		return fmt.Sprintf("line %d: %v", r.Line, r.Err)
	}
	return fmt.Sprintf("line %d, column %d: %v", r.Line, r.Column, r.Err)
}

func (r *RowError) Unwrap() error {
	return r.Err
}
