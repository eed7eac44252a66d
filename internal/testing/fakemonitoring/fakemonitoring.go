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

// Package fakemonitoring provides a monitoring client that records every
// logged event, for use in tests.
package fakemonitoring

import (
	"sync"

	"github.com/KaganCanSit/sphincsplus-go/monitoring"
)

// LogEvent is a recorded successful operation.
type LogEvent struct {
	Context  *monitoring.Context
	KeyID    uint32
	NumBytes int
}

// LogFailure is a recorded failed operation.
type LogFailure struct {
	Context *monitoring.Context
}

// Client is a fake monitoring client. The zero value is ready to use.
type Client struct {
	Name string
	// Err, if set, is returned by NewLogger.
	Err error

	mu       sync.Mutex
	events   []*LogEvent
	failures []*LogFailure
}

var _ monitoring.Client = (*Client)(nil)

// NewClient creates a new fake monitoring client.
func NewClient(name string) *Client {
	return &Client{Name: name}
}

// NewLogger returns a logger that records into c.
func (c *Client) NewLogger(context *monitoring.Context) (monitoring.Logger, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return &logger{client: c, context: context}, nil
}

// Events returns the recorded successful operations.
func (c *Client) Events() []*LogEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*LogEvent(nil), c.events...)
}

// Failures returns the recorded failed operations.
func (c *Client) Failures() []*LogFailure {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*LogFailure(nil), c.failures...)
}

type logger struct {
	client  *Client
	context *monitoring.Context
}

func (l *logger) Log(keyID uint32, numBytes int) {
	l.client.mu.Lock()
	defer l.client.mu.Unlock()
	l.client.events = append(l.client.events, &LogEvent{Context: l.context, KeyID: keyID, NumBytes: numBytes})
}

func (l *logger) LogFailure() {
	l.client.mu.Lock()
	defer l.client.mu.Unlock()
	l.client.failures = append(l.client.failures, &LogFailure{Context: l.context})
}
