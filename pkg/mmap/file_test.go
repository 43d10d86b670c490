// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mmap

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_File_00(t *testing.T) {
	path := writeFile(t, "101 | 010\n101 / 010\n\np 1\n")
	//
	file, err := Open(path)
	require.NoError(t, err)
	//
	defer file.Close() //nolint:errcheck
	//
	assert.Equal(t, path, file.Path())
	assert.Equal(t, int64(25), file.Size())
	//
	var lines []string
	//
	scanner := bufio.NewScanner(file.Reader())
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	//
	require.NoError(t, scanner.Err())
	assert.Equal(t, []string{"101 | 010", "101 / 010", "", "p 1"}, lines)
}

func Test_File_01(t *testing.T) {
	path := writeFile(t, "")
	//
	file, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), file.Size())
	//
	bytes, err := io.ReadAll(file.Reader())
	require.NoError(t, err)
	assert.Empty(t, bytes)
	assert.NoError(t, file.Close())
}

func Test_File_02(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "failed to open file")
	//
	_, err = Open(t.TempDir())
	assert.ErrorContains(t, err, "cannot map directory")
}

func Test_File_03(t *testing.T) {
	file, err := Open(writeFile(t, "0123456789"))
	require.NoError(t, err)
	//
	buf := make([]byte, 4)
	n, err := file.ReadAt(buf, 8)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "89", string(buf[:n]))
	//
	n, err = file.ReadAt(buf, 2)
	assert.NoError(t, err)
	assert.Equal(t, "2345", string(buf[:n]))
	//
	_, err = file.ReadAt(buf, -1)
	assert.Error(t, err)
	//
	_, err = file.ReadAt(buf, 10)
	assert.ErrorIs(t, err, io.EOF)
	//
	assert.NoError(t, file.Close())
	// Closing twice is harmless
	assert.NoError(t, file.Close())
}

func writeFile(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	//
	return path
}
