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

package recognition_test

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/clearsight/recognition"
)

func ExampleNewClient() {
	ctx := context.Background()
	client, err := recognition.NewClient(ctx, recognition.WithRegion("us-east-1"))
	if err != nil {
		// TODO: handle error.
	}
	// Use the client.
	_ = client
}

func ExampleClient_DetectLabels() {
	ctx := context.Background()
	client, err := recognition.NewClient(ctx)
	if err != nil {
		// TODO: handle error.
	}
	img, err := recognition.NewImageFromFile("path/to/image.jpg")
	if err != nil {
		// TODO: handle error.
	}
	labels, err := client.DetectLabels(ctx, img, 10)
	if err != nil {
		// TODO: handle error.
	}
	for _, label := range labels {
		fmt.Printf("Object: %s, Confidence: %g\n", aws.ToString(label.Name), aws.ToFloat32(label.Confidence))
	}
}

func ExampleClient_RecognizeCelebrities() {
	ctx := context.Background()
	client, err := recognition.NewClient(ctx)
	if err != nil {
		// TODO: handle error.
	}
	img := recognition.NewImageFromS3("my-bucket", "photos/premiere.png")
	celebrities, err := client.RecognizeCelebrities(ctx, img)
	if err != nil {
		// TODO: handle error.
	}
	for _, c := range celebrities {
		fmt.Println(aws.ToString(c.Name), c.Urls, aws.ToFloat32(c.MatchConfidence))
	}
}

func ExampleWithRetry() {
	ctx := context.Background()
	// Retry throttled and failed calls up to 4 times with exponential
	// backoff before giving up.
	client, err := recognition.NewClient(ctx, recognition.WithRetry(4))
	if err != nil {
		// TODO: handle error.
	}
	_ = client
}
