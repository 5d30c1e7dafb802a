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
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	gax "github.com/googleapis/gax-go/v2"
)

// An Option configures a Client.
type Option func(*settings)

type settings struct {
	region string
	cfg    *aws.Config
	api    API
	retry  *retrySettings
}

type retrySettings struct {
	maxAttempts int
	backoff     gax.Backoff
}

// defaultBackoff is the pause schedule used by WithRetry.
var defaultBackoff = gax.Backoff{
	Initial:    1 * time.Second,
	Max:        32 * time.Second,
	Multiplier: 2,
}

// WithRegion sets the AWS region the client calls, overriding the region
// from the ambient or supplied configuration.
func WithRegion(region string) Option {
	return func(s *settings) { s.region = region }
}

// WithConfig uses cfg instead of loading the ambient AWS configuration.
func WithConfig(cfg aws.Config) Option {
	return func(s *settings) { s.cfg = &cfg }
}

// WithAPI uses api as the service client. Intended for substituting a
// stub or recorded implementation in tests; region and configuration
// options are ignored when it is set.
func WithAPI(api API) Option {
	return func(s *settings) { s.api = api }
}

// WithRetry enables bounded retries: each operation makes up to
// maxAttempts calls, pausing with exponential backoff, as long as the
// service reports a throttling or internal server error. Any other error,
// and the last error once attempts are exhausted, is returned to the
// caller unmodified. maxAttempts < 1 leaves retries disabled.
func WithRetry(maxAttempts int) Option {
	return WithRetryBackoff(maxAttempts, defaultBackoff)
}

// WithRetryBackoff is WithRetry with an explicit pause schedule.
func WithRetryBackoff(maxAttempts int, bo gax.Backoff) Option {
	return func(s *settings) {
		if maxAttempts < 1 {
			return
		}
		s.retry = &retrySettings{maxAttempts: maxAttempts, backoff: bo}
	}
}
