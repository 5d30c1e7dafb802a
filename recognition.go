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
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/clearsight/recognition/internal/retry"
	itrace "github.com/clearsight/recognition/internal/trace"
)

// API is the subset of the Rekognition service client used by Client.
// *rekognition.Client satisfies it; tests substitute a fake.
type API interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
	DetectText(ctx context.Context, params *rekognition.DetectTextInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectTextOutput, error)
	RecognizeCelebrities(ctx context.Context, params *rekognition.RecognizeCelebritiesInput, optFns ...func(*rekognition.Options)) (*rekognition.RecognizeCelebritiesOutput, error)
}

// A Client performs image analysis through the Rekognition service.
//
// Clients should be reused instead of created as needed. The methods of
// Client are safe for concurrent use by multiple goroutines: no state is
// shared between calls.
type Client struct {
	api   API
	retry *retrySettings
}

// NewClient creates a Client for the Rekognition service.
//
// Without options, credentials and region resolve from the ambient AWS
// configuration, the same chain used by the AWS CLI. Explicit settings
// passed through options always win over ambient lookups.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	c := &Client{api: s.api, retry: s.retry}
	if c.api == nil {
		cfg, err := s.awsConfig(ctx)
		if err != nil {
			return nil, err
		}
		c.api = rekognition.NewFromConfig(cfg, func(o *rekognition.Options) {
			// Retried calls would break the error pass-through contract
			// of this package, so the SDK's standard retryer is switched
			// off. WithRetry restores retries under this package's
			// explicit policy.
			o.Retryer = aws.NopRetryer{}
		})
	}
	return c, nil
}

// DetectLabels detects objects and scene concepts in img and returns the
// service's Labels as delivered. If maxLabels is positive, the service
// returns at most that many labels; zero means the service default.
func (c *Client) DetectLabels(ctx context.Context, img *Image, maxLabels int) (l []types.Label, err error) {
	ctx = itrace.StartSpan(ctx, "recognition.Client.DetectLabels")
	defer func() { itrace.EndSpan(ctx, err) }()

	req := &rekognition.DetectLabelsInput{Image: img.toInput()}
	if maxLabels > 0 {
		req.MaxLabels = aws.Int32(int32(maxLabels))
	}
	var res *rekognition.DetectLabelsOutput
	err = c.invoke(ctx, func() error {
		var err error
		res, err = c.api.DetectLabels(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res.Labels, nil
}

// DetectText detects text in img and returns the service's TextDetections
// as delivered: words and lines, each with type, confidence and geometry.
func (c *Client) DetectText(ctx context.Context, img *Image) (t []types.TextDetection, err error) {
	ctx = itrace.StartSpan(ctx, "recognition.Client.DetectText")
	defer func() { itrace.EndSpan(ctx, err) }()

	req := &rekognition.DetectTextInput{Image: img.toInput()}
	var res *rekognition.DetectTextOutput
	err = c.invoke(ctx, func() error {
		var err error
		res, err = c.api.DetectText(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res.TextDetections, nil
}

// RecognizeCelebrities recognizes well-known public figures in img and
// returns the service's CelebrityFaces as delivered.
func (c *Client) RecognizeCelebrities(ctx context.Context, img *Image) (cf []types.Celebrity, err error) {
	ctx = itrace.StartSpan(ctx, "recognition.Client.RecognizeCelebrities")
	defer func() { itrace.EndSpan(ctx, err) }()

	req := &rekognition.RecognizeCelebritiesInput{Image: img.toInput()}
	var res *rekognition.RecognizeCelebritiesOutput
	err = c.invoke(ctx, func() error {
		var err error
		res, err = c.api.RecognizeCelebrities(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res.CelebrityFaces, nil
}

// invoke runs one service call, retrying under the client's policy when
// one was configured. Errors reach the caller exactly as the SDK returned
// them.
func (c *Client) invoke(ctx context.Context, f func() error) error {
	if c.retry == nil {
		return f()
	}
	return retry.Do(ctx, c.retry.backoff, c.retry.maxAttempts, retryable, f)
}

// retryable reports whether err is one of the transient Rekognition
// failures worth another attempt.
func retryable(err error) bool {
	var ae smithy.APIError
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.ErrorCode() {
	case "ThrottlingException", "ProvisionedThroughputExceededException", "InternalServerError":
		return true
	}
	return false
}

// awsConfig resolves the AWS configuration for the client: an explicitly
// supplied one if present, otherwise the ambient default chain.
func (s *settings) awsConfig(ctx context.Context) (aws.Config, error) {
	if s.cfg != nil {
		cfg := *s.cfg
		if s.region != "" {
			cfg.Region = s.region
		}
		return cfg, nil
	}
	var loadOpts []func(*config.LoadOptions) error
	if s.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(s.region))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}
