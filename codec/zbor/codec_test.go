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

package zbor_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/flow-balances/codec/zbor"
	"github.com/optakt/flow-balances/models/balances"
)

func TestCodec(t *testing.T) {

	mapping := balances.Mapping{"0xabc": 100, "0xdef": 250.5}

	t.Run("plain cbor", func(t *testing.T) {
		t.Parallel()

		c := zbor.NewCodec()

		data, err := c.Marshal(mapping)
		require.NoError(t, err)

		// Uncompressed output must be readable by any CBOR decoder.
		var decoded map[string]float64
		err = cbor.Unmarshal(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64(mapping), decoded)

		var got balances.Mapping
		err = c.Unmarshal(data, &got)
		require.NoError(t, err)
		assert.Equal(t, mapping, got)
	})

	t.Run("canonical encoding", func(t *testing.T) {
		t.Parallel()

		c := zbor.NewCodec()

		first, err := c.Marshal(balances.Mapping{"b": 2, "a": 1, "c": 3})
		require.NoError(t, err)
		second, err := c.Marshal(balances.Mapping{"c": 3, "a": 1, "b": 2})
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("compressed cbor", func(t *testing.T) {
		t.Parallel()

		c := zbor.NewCodec(zbor.WithCompression())

		data, err := c.Marshal(mapping)
		require.NoError(t, err)

		decompressor, err := zstd.NewReader(nil)
		require.NoError(t, err)
		raw, err := decompressor.DecodeAll(data, nil)
		require.NoError(t, err)

		var decoded balances.Mapping
		err = cbor.Unmarshal(raw, &decoded)
		require.NoError(t, err)
		assert.Equal(t, mapping, decoded)

		var got balances.Mapping
		err = c.Unmarshal(data, &got)
		require.NoError(t, err)
		assert.Equal(t, mapping, got)
	})

	t.Run("handles invalid compressed data", func(t *testing.T) {
		t.Parallel()

		c := zbor.NewCodec(zbor.WithCompression())

		var got balances.Mapping
		err := c.Unmarshal([]byte(`not zstd`), &got)
		assert.Error(t, err)
	})

	t.Run("handles invalid cbor data", func(t *testing.T) {
		t.Parallel()

		c := zbor.NewCodec()

		var got balances.Mapping
		err := c.Unmarshal([]byte{0xff}, &got)
		assert.Error(t, err)
	})
}
