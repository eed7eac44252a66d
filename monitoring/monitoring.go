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

// Package monitoring defines the hooks through which signers and verifiers
// report their operations.
//
// Libraries never write log lines themselves. A caller that wants to observe
// signing and verification supplies a [Client], which is asked for one
// [Logger] per primitive.
package monitoring

// KeyInfo describes the key a primitive was created from.
type KeyInfo struct {
	// KeyID is the ID requirement of the key, or zero if it has none.
	KeyID uint32
	// ParameterSet is the name of the parameter set, e.g. "SLH-DSA-SHA2-128s".
	ParameterSet string
	// Deterministic reports whether the key signs deterministically.
	Deterministic bool
}

// Context defines a context for monitoring events.
type Context struct {
	// Primitive is "public_key_sign" or "public_key_verify".
	Primitive string
	// APIFunction is the name of the function being monitored, e.g. "sign".
	APIFunction string
	KeyInfo     *KeyInfo
}

// NewContext creates a new monitoring context.
func NewContext(primitive, apiFunction string, keyInfo *KeyInfo) *Context {
	return &Context{
		Primitive:   primitive,
		APIFunction: apiFunction,
		KeyInfo:     keyInfo,
	}
}

// Logger is an interface for logging which can be created through a [Client].
// Implementations must be safe for concurrent use.
type Logger interface {
	// Log logs a successful operation on numBytes bytes of data with the key
	// identified by keyID.
	Log(keyID uint32, numBytes int)
	// LogFailure logs a failed operation.
	LogFailure()
}

// Client creates loggers for a given context.
type Client interface {
	NewLogger(context *Context) (Logger, error)
}
