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

package output

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

// DefaultMode is the permission set of newly created output files, before the
// process umask is applied. Existing files keep their permissions.
const DefaultMode fs.FileMode = 0666

// File writes output documents to the local file system. Documents are first
// written to a temporary file next to the destination and then moved into
// place, so the destination either holds the previous content or the full new
// document. Symbolic links are followed, so a linked destination has its
// target replaced and the link itself is kept.
type File struct {
	log  zerolog.Logger
	mode fs.FileMode
}

// New creates a new file writer.
func New(log zerolog.Logger) *File {

	f := File{
		log:  log.With().Str("component", "output_file").Logger(),
		mode: DefaultMode,
	}

	return &f
}

// Write replaces the file at the given path with the given data.
func (f *File) Write(path string, data []byte) error {

	target, mode, exists, err := f.resolve(path)
	if err != nil {
		return err
	}

	temp, err := createTemp(target, mode)
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	tempName := temp.Name()

	// From here on, the temporary file has to be removed on any failure.
	// Once renamed, the removal is a no-op.
	defer os.Remove(tempName)

	_, err = temp.Write(data)
	if err != nil {
		_ = temp.Close()
		return fmt.Errorf("could not write temporary file: %w", err)
	}
	err = temp.Sync()
	if err != nil {
		_ = temp.Close()
		return fmt.Errorf("could not sync temporary file: %w", err)
	}
	err = temp.Close()
	if err != nil {
		return fmt.Errorf("could not close temporary file: %w", err)
	}

	// The umask may have stripped bits from the permissions of an existing
	// file, so they are set explicitly.
	if exists {
		err = os.Chmod(tempName, mode)
		if err != nil {
			return fmt.Errorf("could not set file mode: %w", err)
		}
	}

	err = os.Rename(tempName, target)
	if err != nil {
		return fmt.Errorf("could not move file into place: %w", err)
	}

	f.log.Debug().Str("path", path).Str("target", target).Int("bytes", len(data)).Msg("output file written")

	return nil
}

// resolve returns the file that is replaced when writing to path, along with
// the permissions the new file should have and whether it already exists.
func (f *File) resolve(path string) (string, fs.FileMode, bool, error) {

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, f.mode, false, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("could not stat output file: %w", err)
	}
	if info.IsDir() {
		return "", 0, false, fmt.Errorf("output path is a directory (%s)", path)
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", 0, false, fmt.Errorf("could not resolve output file: %w", err)
	}

	return target, info.Mode().Perm(), true, nil
}

// createTemp creates a new file next to target, with the given permissions
// subject to the umask.
func createTemp(target string, mode fs.FileMode) (*os.File, error) {

	dir, name := filepath.Split(target)
	for i := 0; i < 10000; i++ {
		tempName := filepath.Join(dir, "."+name+"."+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp")
		temp, err := os.OpenFile(tempName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return temp, err
	}

	return nil, fmt.Errorf("could not find unused temporary file name for %s", target)
}
