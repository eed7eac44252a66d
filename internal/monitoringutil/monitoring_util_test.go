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

package monitoringutil_test

import (
	"errors"
	"testing"

	"github.com/KaganCanSit/sphincsplus-go/internal/monitoringutil"
	"github.com/KaganCanSit/sphincsplus-go/internal/testing/fakemonitoring"
	"github.com/KaganCanSit/sphincsplus-go/monitoring"
	"github.com/google/go-cmp/cmp"
)

var keyInfo = &monitoring.KeyInfo{KeyID: 42, ParameterSet: "SLH-DSA-SHA2-128f"}

func TestNewLoggerWithoutClientDoesNothing(t *testing.T) {
	logger, err := monitoringutil.NewLogger(nil, monitoring.NewContext("public_key_sign", "sign", keyInfo))
	if err != nil {
		t.Fatalf("monitoringutil.NewLogger() err = %v, want nil", err)
	}
	if _, ok := logger.(*monitoringutil.DoNothingLogger); !ok {
		t.Errorf("monitoringutil.NewLogger(nil, ...) = %T, want *monitoringutil.DoNothingLogger", logger)
	}
	// Must not panic.
	logger.Log(1, 2)
	logger.LogFailure()
}

func TestNewLoggerUsesClient(t *testing.T) {
	client := fakemonitoring.NewClient("fake-client")
	context := monitoring.NewContext("public_key_sign", "sign", keyInfo)
	logger, err := monitoringutil.NewLogger(client, context)
	if err != nil {
		t.Fatalf("monitoringutil.NewLogger() err = %v, want nil", err)
	}
	logger.Log(42, 10)
	logger.LogFailure()
	wantEvents := []*fakemonitoring.LogEvent{{Context: context, KeyID: 42, NumBytes: 10}}
	if diff := cmp.Diff(wantEvents, client.Events()); diff != "" {
		t.Errorf("client.Events() mismatch (-want +got):\n%s", diff)
	}
	wantFailures := []*fakemonitoring.LogFailure{{Context: context}}
	if diff := cmp.Diff(wantFailures, client.Failures()); diff != "" {
		t.Errorf("client.Failures() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLoggerFails(t *testing.T) {
	client := fakemonitoring.NewClient("fake-client")
	if _, err := monitoringutil.NewLogger(client, monitoring.NewContext("public_key_sign", "sign", nil)); err == nil {
		t.Errorf("monitoringutil.NewLogger() without key info err = nil, want error")
	}
	errClient := &fakemonitoring.Client{Err: errors.New("unavailable")}
	if _, err := monitoringutil.NewLogger(errClient, monitoring.NewContext("public_key_sign", "sign", keyInfo)); !errors.Is(err, errClient.Err) {
		t.Errorf("monitoringutil.NewLogger() err = %v, want %v", err, errClient.Err)
	}
}
