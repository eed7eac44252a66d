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

// Package zapmonitoring provides a [monitoring.Client] that writes signing and
// verification events to a [zap.Logger].
package zapmonitoring

import (
	"errors"

	"github.com/KaganCanSit/sphincsplus-go/monitoring"
	"go.uber.org/zap"
)

// Client creates loggers that write to a zap logger. Successful operations are
// logged at debug level and failures at warn level.
type Client struct {
	logger *zap.Logger
}

var _ monitoring.Client = (*Client)(nil)

// NewClient returns a client writing to logger. A nil logger discards all
// events.
func NewClient(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{logger: logger}
}

// NewLogger returns a logger whose entries carry the fields of context.
func (c *Client) NewLogger(context *monitoring.Context) (monitoring.Logger, error) {
	if context == nil || context.KeyInfo == nil {
		return nil, errors.New("zapmonitoring: context must have key info")
	}
	return &logger{
		keyID: context.KeyInfo.KeyID,
		l: c.logger.With(
			zap.String("primitive", context.Primitive),
			zap.String("api_function", context.APIFunction),
			zap.String("parameter_set", context.KeyInfo.ParameterSet),
			zap.Bool("deterministic", context.KeyInfo.Deterministic),
		),
	}, nil
}

type logger struct {
	keyID uint32
	l     *zap.Logger
}

func (l *logger) Log(keyID uint32, numBytes int) {
	l.l.Debug("operation succeeded", zap.Uint32("key_id", keyID), zap.Int("num_bytes", numBytes))
}

func (l *logger) LogFailure() {
	l.l.Warn("operation failed", zap.Uint32("key_id", l.keyID))
}
