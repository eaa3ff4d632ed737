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

package service

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"
)

const unitTemplate = `[Unit]
Description=Prometheus Script exporter
Wants=network-online.target
After=network-online.target

[Service]
LimitNPROC=infinity
LimitNOFILE=infinity
ExecStart={{ .BinaryPath }} --config.file={{ .ConfigPath }}
Restart=always

[Install]
WantedBy=multi-user.target
`

// UnitData is what the unit file is rendered from.
type UnitData struct {
	BinaryPath string
	ConfigPath string
}

func renderUnit(data UnitData) (string, error) {
	tmpl, err := template.New("unit").Funcs(sprig.TxtFuncMap()).Parse(unitTemplate)
	if err != nil {
		return "", errors.Errorf("failed to parse unit template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Errorf("failed to execute unit template: %v", err)
	}
	return buf.String(), nil
}
