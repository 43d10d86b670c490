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
	"io"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// File represents a read-only memory-mapped file.
type File struct {
	path string
	// Mapped contents (nil for an empty file, which cannot be mapped)
	data []byte
}

// Open maps the contents of a given file into memory for reading.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}
	//
	defer unix.Close(fd) //nolint:errcheck
	//
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path)
	} else if stat.Mode&unix.S_IFMT == unix.S_IFDIR {
		return nil, pkgErrors.Errorf("cannot map directory %#v", path)
	} else if stat.Size == 0 {
		return &File{path, nil}, nil
	}
	//
	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to memory map file %#v", path)
	}
	//
	return &File{path, data}, nil
}

// Path returns the path from which this file was mapped.
func (f *File) Path() string {
	return f.path
}

// Size returns the number of bytes in this file.
func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Reader returns a reader over the entire contents of this file.  Reads go
// through ReadAt, hence are protected against page faults.
func (f *File) Reader() io.Reader {
	return io.NewSectionReader(f, 0, f.Size())
}

// Close unmaps this file.  The file must not be read after it is closed.
func (f *File) Close() error {
	if f.data == nil {
		return nil
	}
	//
	data := f.data
	f.data = nil
	//
	return pkgErrors.Wrapf(unix.Munmap(data), "failed to unmap file %#v", f.path)
}
