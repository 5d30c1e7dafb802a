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

/*
Package recognition provides a client for Amazon Rekognition image analysis.

Amazon Rekognition detects objects and scenes (labels), text, and
well-known public figures in images. This package adapts local image files
and S3-hosted objects to the Rekognition API and returns the service's
results as delivered: detections are the AWS SDK model types, with no
re-validation or reshaping. The service's own schema is the contract.

# Creating Images

Rekognition accepts JPEG and PNG images and enforces its own size limits;
this package performs no local validation of format or size. Use
NewImageFromFile or NewImageFromReader to read an image into memory, or
NewImageFromS3 to reference an object already stored in S3. Creating an
Image does not perform an API request.

# Detecting

Each Client method runs a single detection on a single image in one
blocking request/response round trip. For instance, Client.DetectLabels
sends the image to the DetectLabels operation and returns the Labels field
of the response.

Errors from the service are returned to the caller exactly as received
from the SDK. By default no call is retried; pass WithRetry to NewClient
to opt into bounded exponential backoff on throttling and internal server
errors.

Credentials and region resolve from the ambient AWS configuration (shared
config files, environment, instance metadata) unless overridden with
WithRegion or WithConfig.
*/
package recognition
