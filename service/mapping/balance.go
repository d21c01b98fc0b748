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
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/optakt/flow-balances/models/balances"
)

// ParseBalance converts the raw text of a balance cell into a finite number.
// Surrounding whitespace is ignored.
func ParseBalance(raw string) (float64, error) {

	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, balances.ErrEmptyBalance
	}

	balance, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w (%s)", balances.ErrNotFinite, text)
	}
	if err != nil {
		return 0, fmt.Errorf("%w (%s)", balances.ErrInvalidBalance, text)
	}

	// ParseFloat accepts "NaN" and "Inf", which can not be encoded as JSON.
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return 0, fmt.Errorf("%w (%s)", balances.ErrNotFinite, text)
	}

	// Negative zero is written as "-0" by the JSON encoder.
	if balance == 0 {
		balance = 0
	}

	return balance, nil
}
