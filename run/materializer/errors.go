// Copyright 2025 The SXP Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package materializer

import "fmt"

// ArchiveStage identifies the decoding stage an archive failed in. The
// stages are strictly ordered: base64, then lzma, then tar.
type ArchiveStage string

const (
	ArchiveStageBase64 ArchiveStage = "base64"
	ArchiveStageLZMA   ArchiveStage = "lzma"
	ArchiveStageTar    ArchiveStage = "tar"
)

// ArchiveError reports a malformed scripts archive. It is recoverable:
// the script materialization step degrades but reconciliation goes on.
type ArchiveError struct {
	Stage ArchiveStage
	Err   error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("scripts archive %s decoding failed: %v", e.Stage, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}
