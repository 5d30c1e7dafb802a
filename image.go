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
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// An Image represents the source of an image for the Rekognition service:
// either raw bytes held in memory, or a reference to an object in S3.
type Image struct {
	// Exactly one of content or s3Name is set.
	content []byte

	s3Bucket string
	s3Name   string
}

// NewImageFromFile reads the file at path and returns an Image holding its
// contents. The whole file is read into memory; a missing or unreadable
// path fails with the usual *fs.PathError before any service call is made.
func NewImageFromFile(path string) (*Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Image{content: b}, nil
}

// NewImageFromReader reads from r until EOF and returns an Image holding
// the bytes read.
func NewImageFromReader(r io.Reader) (*Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Image{content: b}, nil
}

// NewImageFromBytes returns an Image holding b. The slice is not copied.
func NewImageFromBytes(b []byte) *Image {
	return &Image{content: b}
}

// NewImageFromS3 returns an Image that refers to the object name in the S3
// bucket. The object is fetched by the service, not by this package, so
// the service's role must be able to read it.
func NewImageFromS3(bucket, name string) *Image {
	return &Image{s3Bucket: bucket, s3Name: name}
}

// toInput converts the Image to the service's request representation. A
// nil Image yields an empty request image; the service rejects it, which
// is the desired behavior (no local validation).
func (i *Image) toInput() *types.Image {
	if i == nil {
		return &types.Image{}
	}
	if i.s3Name != "" || i.s3Bucket != "" {
		return &types.Image{
			S3Object: &types.S3Object{
				Bucket: aws.String(i.s3Bucket),
				Name:   aws.String(i.s3Name),
			},
		}
	}
	return &types.Image{Bytes: i.content}
}
