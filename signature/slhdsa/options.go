// Copyright 2025 Google LLC
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

package slhdsa

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KaganCanSit/sphincsplus-go/monitoring"
)

// maxContextLength is the longest context string FIPS 205 can encode.
const maxContextLength = 255

type options struct {
	rand    io.Reader
	context []byte
	client  monitoring.Client
}

// Option configures a [Signer] or a [Verifier].
type Option func(*options) error

// WithRandom sets the source of the additional randomness of hedged
// signatures. It defaults to crypto/rand.Reader and has no effect on
// verifiers and deterministic keys.
//
// Signers read from r concurrently if they are used concurrently.
func WithRandom(r io.Reader) Option {
	return func(o *options) error {
		if r == nil {
			return fmt.Errorf("random source must not be nil")
		}
		if o.rand != nil {
			return fmt.Errorf("random source has already been set")
		}
		o.rand = r
		return nil
	}
}

// WithContext binds signatures to the context string ctx, at most 255 bytes
// long. Signers and verifiers must use the same context. SPHINCS+ round 3.1
// parameter sets do not support contexts.
func WithContext(ctx []byte) Option {
	return func(o *options) error {
		if len(ctx) > maxContextLength {
			return fmt.Errorf("%w: %d bytes", ErrContextTooLong, len(ctx))
		}
		if o.context != nil {
			return fmt.Errorf("context has already been set")
		}
		o.context = bytes.Clone(ctx)
		return nil
	}
}

// WithMonitoringClient reports every operation to a logger created by client.
// Without it, operations are not monitored.
func WithMonitoringClient(client monitoring.Client) Option {
	return func(o *options) error {
		if client == nil {
			return fmt.Errorf("monitoring client must not be nil")
		}
		if o.client != nil {
			return fmt.Errorf("monitoring client has already been set")
		}
		o.client = client
		return nil
	}
}

func newOptions(params *Parameters, opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if len(o.context) > 0 && params.Revision() == Round3 {
		return nil, fmt.Errorf("%s: %w", params.Name(), ErrContextNotSupported)
	}
	return o, nil
}
