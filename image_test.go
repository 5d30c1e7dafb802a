// Copyright 2024 Clearsight
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recognition

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestNewImageFromFile(t *testing.T) {
	// Not a real JPEG, but the reader does not care: bytes are bytes.
	content := []byte("\xff\xd8\xff\xe0 city skyline")
	path := filepath.Join(t.TempDir(), "city.jpg")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	img, err := NewImageFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(img.content) == 0 {
		t.Fatal("image content is empty")
	}
	if !bytes.Equal(img.content, content) {
		t.Errorf("content: got %q, want %q", img.content, content)
	}
}

func TestNewImageFromFileMissing(t *testing.T) {
	img, err := NewImageFromFile("non_existing_image.jpg")
	if err == nil {
		t.Fatal("got nil, want error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not match fs.ErrNotExist", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("got %T, want *fs.PathError", err)
	}
	if img != nil {
		t.Errorf("got image %v, want nil", img)
	}
}

func TestNewImageFromReader(t *testing.T) {
	content := []byte("reader bytes")
	img, err := NewImageFromReader(bytes.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.content, content) {
		t.Errorf("content: got %q, want %q", img.content, content)
	}
}

func TestImageToInput(t *testing.T) {
	if in := NewImageFromBytes([]byte("b")).toInput(); !bytes.Equal(in.Bytes, []byte("b")) || in.S3Object != nil {
		t.Errorf("bytes image: got %+v", in)
	}

	in := NewImageFromS3("bucket", "name").toInput()
	if in.S3Object == nil || len(in.Bytes) != 0 {
		t.Fatalf("s3 image: got %+v", in)
	}

	// A nil image still becomes a request; rejecting it is the service's
	// job, not ours.
	var img *Image
	if in := img.toInput(); in == nil || in.S3Object != nil || in.Bytes != nil {
		t.Errorf("nil image: got %+v", in)
	}
}
