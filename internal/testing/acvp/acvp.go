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

// Package acvp contains types for parsing NIST ACVP SLH-DSA test vectors.
//
// The vectors are the internalProjection.json files of the usnistgov/ACVP-Server
// repository, under gen-val/json-files/SLH-DSA-{keyGen,sigGen,sigVer}-FIPS205.
// Set SLHDSA_ACVP_DIR to the json-files directory to run tests that use them.
package acvp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaganCanSit/sphincsplus-go/testutil"
)

// BaseDirEnv names the environment variable that points at the vectors.
const BaseDirEnv = "SLHDSA_ACVP_DIR"

// BaseDir is the directory holding one sub-directory per ACVP mode. It is
// empty when the vectors are not available.
var BaseDir = os.Getenv(BaseDirEnv)

// Mode is an ACVP SLH-DSA test mode.
type Mode string

// Supported modes.
const (
	KeyGen Mode = "keyGen"
	SigGen Mode = "sigGen"
	SigVer Mode = "sigVer"
)

// Suite represents the common elements of the top level object of an ACVP
// file. Implementations embed Suite in a struct that strongly types the
// testGroups field.
type Suite struct {
	VsID      int    `json:"vsId"`
	Algorithm string `json:"algorithm"`
	Mode      string `json:"mode"`
	Revision  string `json:"revision"`
}

// Group represents the common elements of a testGroups object.
type Group struct {
	GroupID      int    `json:"tgId"`
	TestType     string `json:"testType"`
	ParameterSet string `json:"parameterSet"`
}

// SigGroup adds the fields shared by sigGen and sigVer groups.
type SigGroup struct {
	Group
	Deterministic bool `json:"deterministic"`
	// SignatureInterface is "internal" or "external".
	SignatureInterface string `json:"signatureInterface"`
	// PreHash is "pure" or "preHash".
	PreHash string `json:"preHash"`
}

// Case represents the common elements of a tests object.
type Case struct {
	CaseID   int  `json:"tcId"`
	Deferred bool `json:"deferred"`
}

// KeyGenCase is a keyGen test case.
type KeyGenCase struct {
	Case
	SKSeed testutil.HexBytes `json:"skSeed"`
	SKPrf  testutil.HexBytes `json:"skPrf"`
	PKSeed testutil.HexBytes `json:"pkSeed"`
	SK     testutil.HexBytes `json:"sk"`
	PK     testutil.HexBytes `json:"pk"`
}

// SigCase is a sigGen or sigVer test case.
type SigCase struct {
	Case
	SK                   testutil.HexBytes `json:"sk"`
	PK                   testutil.HexBytes `json:"pk"`
	AdditionalRandomness testutil.HexBytes `json:"additionalRandomness"`
	Message              testutil.HexBytes `json:"message"`
	Context              testutil.HexBytes `json:"context"`
	HashAlg              string            `json:"hashAlg"`
	Signature            testutil.HexBytes `json:"signature"`
	// TestPassed is only set for sigVer cases.
	TestPassed *bool  `json:"testPassed"`
	Reason     string `json:"reason"`
}

// KeyGenSuite is a parsed keyGen file.
type KeyGenSuite struct {
	Suite
	TestGroups []*struct {
		Group
		Tests []*KeyGenCase `json:"tests"`
	} `json:"testGroups"`
}

// SigSuite is a parsed sigGen or sigVer file.
type SigSuite struct {
	Suite
	TestGroups []*struct {
		SigGroup
		Tests []*SigCase `json:"tests"`
	} `json:"testGroups"`
}

// Path returns the location of the vectors for mode below BaseDir.
func Path(mode Mode) string {
	return filepath.Join(BaseDir, "SLH-DSA-"+string(mode)+"-FIPS205", "internalProjection.json")
}

// PopulateSuite decodes the vectors for mode into suite. The test is skipped
// when BaseDir is not set.
func PopulateSuite(t testing.TB, suite any, mode Mode) {
	t.Helper()
	if BaseDir == "" {
		t.Skipf("%s is not set, skipping ACVP %s vectors", BaseDirEnv, mode)
	}
	f, err := os.Open(Path(mode))
	if err != nil {
		t.Fatalf("failed to open ACVP %s vectors: %s", mode, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(suite); err != nil {
		t.Fatalf("failed to decode ACVP %s vectors: %s", mode, err)
	}
}
