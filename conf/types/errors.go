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

package types

import "fmt"

// ConfigParseError reports an unparseable configuration document. There is
// no safe default for a document that fails to parse, so callers treat it
// as fatal.
type ConfigParseError struct {
	Doc string
	Err error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("parsing %s failed: %v", e.Doc, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}
