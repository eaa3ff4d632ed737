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

package app

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// HttpClient is the outbound HTTP seam. The only caller today is the
// exporter binary download.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// downloadTimeout bounds the exporter binary fetch.
const downloadTimeout = 5 * time.Minute

type RealHttpClient struct {
	client *http.Client
}

func (c *RealHttpClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

func NewRealHttpClient() HttpClient {
	return &RealHttpClient{
		client: &http.Client{Timeout: downloadTimeout},
	}
}

// DryRunHttpClient answers every request with an empty success so a dry
// run never reaches out of the host.
type DryRunHttpClient struct{}

func (c *DryRunHttpClient) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("dry-run placeholder")),
	}, nil
}

func NewDryRunHttpClient() HttpClient {
	return &DryRunHttpClient{}
}
