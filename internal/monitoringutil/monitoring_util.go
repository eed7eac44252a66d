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

// Package monitoringutil implements utility functions for monitoring.
package monitoringutil

import (
	"fmt"

	"github.com/KaganCanSit/sphincsplus-go/monitoring"
)

// DoNothingLogger is a Logger that does nothing when invoked.
type DoNothingLogger struct{}

var _ monitoring.Logger = (*DoNothingLogger)(nil)

// Log drops a log call.
func (l *DoNothingLogger) Log(uint32, int) {}

// LogFailure drops a failure call.
func (l *DoNothingLogger) LogFailure() {}

// NewLogger returns a logger from client for context. Primitives created
// without a client are not monitored.
func NewLogger(client monitoring.Client, context *monitoring.Context) (monitoring.Logger, error) {
	if client == nil {
		return &DoNothingLogger{}, nil
	}
	if context == nil || context.KeyInfo == nil {
		return nil, fmt.Errorf("monitoring context must have key info")
	}
	logger, err := client.NewLogger(context)
	if err != nil {
		return nil, fmt.Errorf("creating %s logger: %w", context.Primitive, err)
	}
	return logger, nil
}
