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

package provisioner

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sxptool/sxp/conf/types"
	externalMocks "github.com/sxptool/sxp/mocks/authored/external"
	appMocks "github.com/sxptool/sxp/mocks/generated/app"
)

const (
	binaryPath  = "/usr/local/bin/script_exporter"
	stagingUuid = "3f6ad180-64a5-44d6-b3b8-6a8e0a4cf91d"
)

func digestOf(content string) string {
	digest := sha256.Sum256([]byte(content))
	return hex.EncodeToString(digest[:])
}

func testProvisioner(t *testing.T, binary types.Binary) (*nativeProvisioner, afero.Fs, *appMocks.MockHttpClient) {
	t.Helper()

	mockFs := afero.NewMemMapFs()
	mockLogger := externalMocks.NewMockLogger()
	mockClient := &appMocks.MockHttpClient{}
	mockFnd := &appMocks.MockFoundation{}
	mockFnd.On("Fs").Return(mockFs)
	mockFnd.On("Logger").Return(mockLogger.SugaredLogger)
	mockFnd.On("HttpClient").Return(mockClient)
	mockFnd.On("DryRun").Return(false)
	mockFnd.On("GenerateUuid").Return(stagingUuid)

	return &nativeProvisioner{
		fnd:        mockFnd,
		binary:     binary,
		binaryPath: binaryPath,
	}, mockFs, mockClient
}

func downloadResponse(content string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(content)),
	}
}

func TestNativeProvisioner_Ensure_attachedResource(t *testing.T) {
	p, mockFs, _ := testProvisioner(t, types.Binary{
		Resource: "/resources/exporter",
		URL:      "https://example.com/exporter",
		SHA256:   digestOf("unrelated"),
	})
	require.NoError(t, afero.WriteFile(mockFs, "/resources/exporter", []byte("resource binary"), 0o644))

	require.NoError(t, p.Ensure(context.Background()))

	data, err := afero.ReadFile(mockFs, binaryPath)
	require.NoError(t, err)
	assert.Equal(t, "resource binary", string(data))

	info, err := mockFs.Stat(binaryPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestNativeProvisioner_Ensure_matchingDigestSkipsDownload(t *testing.T) {
	p, mockFs, _ := testProvisioner(t, types.Binary{
		URL:    "https://example.com/exporter",
		SHA256: digestOf("existing binary"),
	})
	require.NoError(t, afero.WriteFile(mockFs, binaryPath, []byte("existing binary"), 0o755))

	require.NoError(t, p.Ensure(context.Background()))

	data, err := afero.ReadFile(mockFs, binaryPath)
	require.NoError(t, err)
	assert.Equal(t, "existing binary", string(data))
}

func TestNativeProvisioner_Ensure_digestMismatchTriggersDownload(t *testing.T) {
	p, mockFs, mockClient := testProvisioner(t, types.Binary{
		URL:    "https://example.com/exporter",
		SHA256: digestOf("fresh binary"),
	})
	require.NoError(t, afero.WriteFile(mockFs, binaryPath, []byte("stale binary"), 0o755))
	mockClient.On("Do", mock.AnythingOfType("*http.Request")).Return(downloadResponse("fresh binary"), nil)

	require.NoError(t, p.Ensure(context.Background()))

	data, err := afero.ReadFile(mockFs, binaryPath)
	require.NoError(t, err)
	assert.Equal(t, "fresh binary", string(data))

	info, err := mockFs.Stat(binaryPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestNativeProvisioner_Ensure_downloadFailures(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*appMocks.MockHttpClient)
	}{
		{
			name: "transport error",
			setupMocks: func(mockClient *appMocks.MockHttpClient) {
				mockClient.On("Do", mock.AnythingOfType("*http.Request")).
					Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "unexpected status",
			setupMocks: func(mockClient *appMocks.MockHttpClient) {
				mockClient.On("Do", mock.AnythingOfType("*http.Request")).Return(&http.Response{
					StatusCode: http.StatusNotFound,
					Body:       io.NopCloser(bytes.NewBufferString("not found")),
				}, nil)
			},
		},
		{
			name: "downloaded digest mismatch",
			setupMocks: func(mockClient *appMocks.MockHttpClient) {
				mockClient.On("Do", mock.AnythingOfType("*http.Request")).
					Return(downloadResponse("tampered binary"), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mockFs, mockClient := testProvisioner(t, types.Binary{
				URL:    "https://example.com/exporter",
				SHA256: digestOf("fresh binary"),
			})
			tt.setupMocks(mockClient)

			err := p.Ensure(context.Background())

			require.Error(t, err)
			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, "https://example.com/exporter", fetchErr.URL)

			exists, err := afero.Exists(mockFs, binaryPath)
			require.NoError(t, err)
			assert.False(t, exists)

			// a failed download never leaves its staging file behind
			staged, err := afero.Exists(mockFs, "/usr/local/bin/.script_exporter-"+stagingUuid)
			require.NoError(t, err)
			assert.False(t, staged)
		})
	}
}

func TestNativeProvisioner_Ensure_missingResourceFallsBackToDownload(t *testing.T) {
	p, mockFs, mockClient := testProvisioner(t, types.Binary{
		Resource: "/resources/exporter",
		URL:      "https://example.com/exporter",
		SHA256:   digestOf("fresh binary"),
	})
	mockClient.On("Do", mock.AnythingOfType("*http.Request")).Return(downloadResponse("fresh binary"), nil)

	require.NoError(t, p.Ensure(context.Background()))

	data, err := afero.ReadFile(mockFs, binaryPath)
	require.NoError(t, err)
	assert.Equal(t, "fresh binary", string(data))
}
