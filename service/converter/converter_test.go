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

package converter_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/flow-balances/codec/json"
	"github.com/optakt/flow-balances/models/balances"
	"github.com/optakt/flow-balances/service/converter"
	"github.com/optakt/flow-balances/service/mapping"
	"github.com/optakt/flow-balances/service/output"
	"github.com/optakt/flow-balances/service/parser"
	"github.com/optakt/flow-balances/testing/helpers"
	"github.com/optakt/flow-balances/testing/mocks"
)

func TestConverter_Convert(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "address,balance\n0xabc,100\n")

		parser := mocks.BaselineParser(t)
		parser.ParseFunc = func(data io.Reader) ([]balances.Record, error) {
			content, err := io.ReadAll(data)
			require.NoError(t, err)
			assert.Equal(t, "address,balance\n0xabc,100\n", string(content))
			return mocks.GenericRecords, nil
		}
		builder := mocks.BaselineBuilder(t)
		builder.BuildFunc = func(records []balances.Record) (balances.Mapping, error) {
			assert.Equal(t, mocks.GenericRecords, records)
			return mocks.GenericMapping, nil
		}
		codec := mocks.BaselineCodec(t)
		codec.MarshalFunc = func(value interface{}) ([]byte, error) {
			assert.Equal(t, mocks.GenericMapping, value)
			return mocks.GenericBytes, nil
		}
		var written bool
		writer := mocks.BaselineWriter(t)
		writer.WriteFunc = func(path string, data []byte) error {
			written = true
			assert.Equal(t, "out.json", path)
			assert.Equal(t, mocks.GenericBytes, data)
			return nil
		}

		c := converter.New(mocks.NoopLogger, parser, builder, codec, writer)

		err := c.Convert(input, "out.json")
		require.NoError(t, err)
		assert.True(t, written)
	})

	t.Run("handles missing input file", func(t *testing.T) {
		t.Parallel()

		writer := mocks.BaselineWriter(t)
		writer.WriteFunc = func(string, []byte) error {
			t.Fatal("writer should not be called")
			return nil
		}

		c := converter.New(mocks.NoopLogger, mocks.BaselineParser(t), mocks.BaselineBuilder(t), mocks.BaselineCodec(t), writer)

		err := c.Convert(filepath.Join(t.TempDir(), "missing.csv"), "out.json")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("handles parser failure", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "")

		parser := mocks.BaselineParser(t)
		parser.ParseFunc = func(io.Reader) ([]balances.Record, error) {
			return nil, mocks.GenericError
		}
		writer := mocks.BaselineWriter(t)
		writer.WriteFunc = func(string, []byte) error {
			t.Fatal("writer should not be called")
			return nil
		}

		c := converter.New(mocks.NoopLogger, parser, mocks.BaselineBuilder(t), mocks.BaselineCodec(t), writer)

		err := c.Convert(input, "out.json")
		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles builder failure", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "")

		builder := mocks.BaselineBuilder(t)
		builder.BuildFunc = func([]balances.Record) (balances.Mapping, error) {
			return nil, mocks.GenericError
		}
		writer := mocks.BaselineWriter(t)
		writer.WriteFunc = func(string, []byte) error {
			t.Fatal("writer should not be called")
			return nil
		}

		c := converter.New(mocks.NoopLogger, mocks.BaselineParser(t), builder, mocks.BaselineCodec(t), writer)

		err := c.Convert(input, "out.json")
		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles codec failure", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "")

		codec := mocks.BaselineCodec(t)
		codec.MarshalFunc = func(interface{}) ([]byte, error) {
			return nil, mocks.GenericError
		}
		writer := mocks.BaselineWriter(t)
		writer.WriteFunc = func(string, []byte) error {
			t.Fatal("writer should not be called")
			return nil
		}

		c := converter.New(mocks.NoopLogger, mocks.BaselineParser(t), mocks.BaselineBuilder(t), codec, writer)

		err := c.Convert(input, "out.json")
		assert.ErrorIs(t, err, mocks.GenericError)
	})

	t.Run("handles writer failure", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "")

		writer := mocks.BaselineWriter(t)
		writer.WriteFunc = func(string, []byte) error {
			return mocks.GenericError
		}

		c := converter.New(mocks.NoopLogger, mocks.BaselineParser(t), mocks.BaselineBuilder(t), mocks.BaselineCodec(t), writer)

		err := c.Convert(input, "out.json")
		assert.ErrorIs(t, err, mocks.GenericError)
	})
}

func newConverter() *converter.Converter {
	return converter.New(
		mocks.NoopLogger,
		parser.New(mocks.NoopLogger),
		mapping.New(),
		json.NewCodec(),
		output.New(mocks.NoopLogger),
	)
}

func TestConverter_Scenarios(t *testing.T) {

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "unique addresses",
			input: "address,balance\n0xabc,100\n0xdef,250\n",
			want:  `{"0xabc":100,"0xdef":250}`,
		},
		{
			name:  "duplicate address",
			input: "addr,bal\n0xaaa,1\n0xaaa,2\n",
			want:  `{"0xaaa":2}`,
		},
		{
			name:  "empty file",
			input: "",
			want:  `{}`,
		},
		{
			name:  "header only",
			input: "address,balance\n",
			want:  `{}`,
		},
		{
			name:  "negative zero",
			input: "address,balance\n0xabc,-0\n",
			want:  `{"0xabc":0}`,
		},
		{
			name:  "decimal balances",
			input: "address,balance\r\n0xabc,0.00000001\r\n\"0xdef\",\" 12.5 \"\r\n",
			want:  `{"0xabc":1e-8,"0xdef":12.5}`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			input := helpers.InputFile(t, test.input)
			out := helpers.OutputPath(t)

			err := newConverter().Convert(input, out)
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, test.want, string(data))
		})
	}
}

func TestConverter_Failures(t *testing.T) {

	t.Run("missing input leaves existing output untouched", func(t *testing.T) {
		t.Parallel()

		out := helpers.OutputPath(t)
		err := os.WriteFile(out, []byte(`previous`), 0600)
		require.NoError(t, err)

		err = newConverter().Convert(filepath.Join(t.TempDir(), "missing.csv"), out)
		require.Error(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, `previous`, string(data))
	})

	t.Run("missing input creates no output", func(t *testing.T) {
		t.Parallel()

		out := helpers.OutputPath(t)

		err := newConverter().Convert(filepath.Join(t.TempDir(), "missing.csv"), out)
		require.Error(t, err)

		_, err = os.Stat(out)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed csv writes nothing", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "address,balance\n\"0xabc,100\n")
		out := helpers.OutputPath(t)

		err := newConverter().Convert(input, out)
		require.Error(t, err)

		_, err = os.Stat(out)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("non-numeric balance names the row and writes nothing", func(t *testing.T) {
		t.Parallel()

		input := helpers.InputFile(t, "address,balance\n0xabc,100\n0xdef,abc\n")
		out := helpers.OutputPath(t)

		err := newConverter().Convert(input, out)
		require.Error(t, err)
		assert.ErrorIs(t, err, balances.ErrInvalidBalance)
		assert.Contains(t, err.Error(), "line 3, column 2")

		_, err = os.Stat(out)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}
