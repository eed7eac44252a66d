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

import "errors"

var (
	// ErrUnknownParameterSet is returned when a parameter set name is not recognized.
	ErrUnknownParameterSet = errors.New("unknown parameter set")
	// ErrInvalidEncodingLength is returned when a key or signature encoding does
	// not have the length required by its parameter set.
	ErrInvalidEncodingLength = errors.New("invalid encoding length")
	// ErrRandomnessSource wraps failures of the caller supplied random source.
	ErrRandomnessSource = errors.New("randomness source failure")
	// ErrContextTooLong is returned for context strings longer than 255 bytes.
	ErrContextTooLong = errors.New("context too long")
	// ErrContextNotSupported is returned when a non-empty context is used with a
	// parameter set that signs raw messages.
	ErrContextNotSupported = errors.New("context not supported")
)
