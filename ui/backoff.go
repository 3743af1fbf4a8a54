// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ui

import "time"

// MaxBackoff bounds the delay returned by [Backoff].
const MaxBackoff = time.Second

// MountOptions control how long mounting waits for elements
// to be attached to the document.
type MountOptions struct {

	// Retries is the number of delayed checks made after the first
	// immediate one before giving up.
	Retries int

	// Backoff is the delay before the first retry; it doubles each retry.
	Backoff time.Duration
}

// Backoff returns the delay before the given retry attempt (starting at 0):
// base doubled attempt times, capped at [MaxBackoff].
func Backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base
	for range attempt {
		d *= 2
		if d >= MaxBackoff {
			return MaxBackoff
		}
	}
	return min(d, MaxBackoff)
}
