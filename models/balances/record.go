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

// Record is a single row of an input CSV document, along with the line it
// started on. Cells holds the address and balance cells the row provides;
// further cells are not kept.
type Record struct {
	Line  int
	Cells []string
}

// Address returns the account address cell of the record.
func (r Record) Address() string {
	if len(r.Cells) == 0 {
		return ""
	}
	return r.Cells[0]
}

// Balance returns the raw balance cell of the record, and whether the record
// has one.
func (r Record) Balance() (string, bool) {
	if len(r.Cells) < 2 {
		return "", false
	}
	return r.Cells[1], true
}
