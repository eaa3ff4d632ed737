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

package metrics

import (
	"fmt"
	"strconv"
	"strings"
)

// Expectation is one comparison asserted against a reconciliation's
// metrics, so a supervision harness can fail a run on its outcome (for
// example "degraded_steps eq 0").
type Expectation struct {
	Metric   string
	Operator MetricOperator
	Value    float64
}

// ParseExpectation parses the "<metric> <operator> <value>" form used on
// the command line.
func ParseExpectation(expr string) (Expectation, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return Expectation{}, fmt.Errorf("invalid expectation %q, expected <metric> <operator> <value>", expr)
	}
	operator, err := ConvertToOperator(parts[1])
	if err != nil {
		return Expectation{}, err
	}
	value, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Expectation{}, fmt.Errorf("invalid expectation value %s", parts[2])
	}
	return Expectation{
		Metric:   parts[0],
		Operator: operator,
		Value:    value,
	}, nil
}

// Assert evaluates the expectation against the metrics set.
func (e Expectation) Assert(m Metrics) (bool, error) {
	metric, err := m.Find(e.Metric)
	if err != nil {
		return false, err
	}
	return metric.Compare(e.Operator, e.Value)
}
