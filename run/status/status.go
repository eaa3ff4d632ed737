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

// Package status derives the unit status from configuration presence.
package status

import "strings"

type State string

const (
	StateBlocked State = "blocked"
	StateActive  State = "active"
)

// Inputs are the preconditions the status is derived from. They are
// re-evaluated from scratch on every event; nothing persists between
// evaluations.
type Inputs struct {
	ConfigPresent     bool
	ScriptPresent     bool
	PrometheusPresent bool
}

// Status is the derived unit state. Reasons is ordered and only set when
// the state is blocked.
type Status struct {
	State   State
	Reasons []string
}

const (
	ReasonConfigMissing     = "config_file missing"
	ReasonScriptMissing     = "script source missing"
	ReasonPrometheusMissing = "prometheus_config_file missing"
)

// Evaluate computes the status. The missing prometheus config is only
// reported once a script source is present; the other reasons are
// independent and may co-exist.
func Evaluate(inputs Inputs) Status {
	var reasons []string

	if !inputs.ConfigPresent {
		reasons = append(reasons, ReasonConfigMissing)
	}
	if !inputs.ScriptPresent {
		reasons = append(reasons, ReasonScriptMissing)
	} else if !inputs.PrometheusPresent {
		reasons = append(reasons, ReasonPrometheusMissing)
	}

	if len(reasons) == 0 {
		return Status{State: StateActive}
	}
	return Status{State: StateBlocked, Reasons: reasons}
}

func (s Status) String() string {
	if s.State == StateActive {
		return string(StateActive)
	}
	return string(StateBlocked) + ": " + strings.Join(s.Reasons, "; ")
}
