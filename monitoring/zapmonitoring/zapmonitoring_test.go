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

package zapmonitoring_test

import (
	"testing"

	"github.com/KaganCanSit/sphincsplus-go/monitoring"
	"github.com/KaganCanSit/sphincsplus-go/monitoring/zapmonitoring"
	"github.com/KaganCanSit/sphincsplus-go/signature/slhdsa"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type entry struct {
	Level   zapcore.Level
	Message string
	Fields  map[string]any
}

func entries(logs *observer.ObservedLogs) []entry {
	var out []entry
	for _, e := range logs.All() {
		out = append(out, entry{Level: e.Level, Message: e.Message, Fields: e.ContextMap()})
	}
	return out
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	client := zapmonitoring.NewClient(zap.New(core))
	keyInfo := &monitoring.KeyInfo{KeyID: 7, ParameterSet: "SLH-DSA-SHA2-128s"}
	logger, err := client.NewLogger(monitoring.NewContext("public_key_sign", "sign", keyInfo))
	if err != nil {
		t.Fatalf("client.NewLogger() err = %v, want nil", err)
	}
	logger.Log(7, 42)
	logger.LogFailure()

	fields := func(extra map[string]any) map[string]any {
		m := map[string]any{
			"primitive":     "public_key_sign",
			"api_function":  "sign",
			"parameter_set": "SLH-DSA-SHA2-128s",
			"deterministic": false,
			"key_id":        uint32(7),
		}
		for k, v := range extra {
			m[k] = v
		}
		return m
	}
	want := []entry{
		{Level: zapcore.DebugLevel, Message: "operation succeeded", Fields: fields(map[string]any{"num_bytes": int64(42)})},
		{Level: zapcore.WarnLevel, Message: "operation failed", Fields: fields(nil)},
	}
	if diff := cmp.Diff(want, entries(logs)); diff != "" {
		t.Errorf("logged entries diff (-want +got):\n%s", diff)
	}
}

func TestNewLoggerFails(t *testing.T) {
	client := zapmonitoring.NewClient(nil)
	if _, err := client.NewLogger(nil); err == nil {
		t.Errorf("client.NewLogger(nil) err = nil, want error")
	}
	if _, err := client.NewLogger(monitoring.NewContext("public_key_sign", "sign", nil)); err == nil {
		t.Errorf("client.NewLogger() without key info err = nil, want error")
	}
}

func TestSignerVerifier(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	client := zapmonitoring.NewClient(zap.New(core))
	params, err := slhdsa.ParametersByName("SLH-DSA-SHAKE-128f", slhdsa.VariantTink)
	if err != nil {
		t.Fatalf("slhdsa.ParametersByName() err = %v, want nil", err)
	}
	priv, err := slhdsa.GenerateKey(params, 99, nil)
	if err != nil {
		t.Fatalf("slhdsa.GenerateKey() err = %v, want nil", err)
	}
	signer, err := slhdsa.NewSigner(priv, slhdsa.WithMonitoringClient(client))
	if err != nil {
		t.Fatalf("slhdsa.NewSigner() err = %v, want nil", err)
	}
	verifier, err := slhdsa.NewVerifier(priv.PublicKey(), slhdsa.WithMonitoringClient(client))
	if err != nil {
		t.Fatalf("slhdsa.NewVerifier() err = %v, want nil", err)
	}
	data := []byte("logged")
	sig, err := signer.Sign(data)
	if err != nil {
		t.Fatalf("signer.Sign() err = %v, want nil", err)
	}
	if err := verifier.Verify(sig, data); err != nil {
		t.Fatalf("verifier.Verify() err = %v, want nil", err)
	}
	if err := verifier.Verify(sig[1:], data); err == nil {
		t.Fatalf("verifier.Verify() with a broken prefix err = nil, want error")
	}
	if got := logs.FilterMessage("operation succeeded").Len(); got != 2 {
		t.Errorf("successful operations logged = %d, want 2", got)
	}
	failures := logs.FilterMessage("operation failed").All()
	if len(failures) != 1 {
		t.Fatalf("failed operations logged = %d, want 1", len(failures))
	}
	if got := failures[0].ContextMap()["primitive"]; got != "public_key_verify" {
		t.Errorf("failure primitive = %v, want public_key_verify", got)
	}
}
