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

// Command recognize demonstrates the recognition client: it runs label
// detection, celebrity recognition and text detection against three sample
// images and prints the results. Credentials and region come from the
// ambient AWS configuration unless -region is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/clearsight/recognition"
)

var (
	dir    = flag.String("dir", "images", "directory holding the sample images")
	region = flag.String("region", "", "AWS region (default: ambient configuration)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	var opts []recognition.Option
	if *region != "" {
		opts = append(opts, recognition.WithRegion(*region))
	}
	client, err := recognition.NewClient(ctx, opts...)
	if err != nil {
		log.Fatalf("creating client: %v", err)
	}

	labels, err := client.DetectLabels(ctx, mustImage("large.jpg"), 0)
	if err != nil {
		log.Fatalf("detecting labels: %v", err)
	}
	for _, label := range labels {
		fmt.Printf("Object: %s, Confidence: %g\n", aws.ToString(label.Name), aws.ToFloat32(label.Confidence))
	}

	celebrities, err := client.RecognizeCelebrities(ctx, mustImage("chris-thor.png"))
	if err != nil {
		log.Fatalf("recognizing celebrities: %v", err)
	}
	for _, c := range celebrities {
		fmt.Printf("Name: %s\n", aws.ToString(c.Name))
		fmt.Printf("Urls: %v\n", c.Urls)
		fmt.Printf("MatchConfidence: %g\n", aws.ToFloat32(c.MatchConfidence))
	}

	texts, err := client.DetectText(ctx, mustImage("lifeisbeautiful.jpg"))
	if err != nil {
		log.Fatalf("detecting text: %v", err)
	}
	for _, text := range texts {
		fmt.Printf("Detected Text: %s\n", aws.ToString(text.DetectedText))
	}
}

func mustImage(name string) *recognition.Image {
	img, err := recognition.NewImageFromFile(filepath.Join(*dir, name))
	if err != nil {
		log.Fatalf("reading %s: %v", name, err)
	}
	return img
}
