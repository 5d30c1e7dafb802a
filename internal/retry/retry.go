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

// Package retry runs a function under a bounded backoff schedule.
package retry

import (
	"context"
	"fmt"
	"time"

	gax "github.com/googleapis/gax-go/v2"
)

// Do calls f repeatedly according to the backoff parameters bo until one
// of the following occurs:
//   - f returns nil: Do returns nil.
//   - f returns an error for which retryable reports false: Do returns
//     that error unmodified.
//   - f has been called maxAttempts times: Do returns the last error
//     unmodified. maxAttempts < 1 means no attempt limit.
//   - the context is done during a pause: Do returns an error that
//     matches (errors.Is) both the context's error and the last error
//     from f.
func Do(ctx context.Context, bo gax.Backoff, maxAttempts int, retryable func(error) bool, f func() error) error {
	return do(ctx, bo, maxAttempts, retryable, f, gax.Sleep)
}

func do(ctx context.Context, bo gax.Backoff, maxAttempts int, retryable func(error) bool, f func() error,
	sleep func(context.Context, time.Duration) error) error {
	for attempt := 1; ; attempt++ {
		err := f()
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		if maxAttempts > 0 && attempt >= maxAttempts {
			return err
		}
		if ctxErr := sleep(ctx, bo.Pause()); ctxErr != nil {
			return pauseErr{ctxErr: ctxErr, lastErr: err}
		}
	}
}

// pauseErr reports a context expiring mid-backoff while keeping the last
// service error available for introspection.
type pauseErr struct {
	ctxErr  error
	lastErr error
}

func (e pauseErr) Error() string {
	return fmt.Sprintf("retry interrupted by %v; last error: %v", e.ctxErr, e.lastErr)
}

func (e pauseErr) Unwrap() error {
	return e.lastErr
}

// Is allows errors.Is to match the context sentinel as well as the last
// error from the call.
func (e pauseErr) Is(err error) bool {
	return e.ctxErr == err || e.lastErr == err
}
