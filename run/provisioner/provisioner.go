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

// Package provisioner keeps the exporter binary in place: it prefers a
// locally supplied resource, keeps a binary whose digest matches the
// pinned one, and re-downloads otherwise.
package provisioner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sxptool/sxp/app"
	"github.com/sxptool/sxp/conf/types"
)

const binaryMode = 0o755

// FetchError reports a failed binary acquisition. It is recoverable: the
// reconciliation continues in a degraded state without a fresh binary.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching exporter binary from %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Provisioner interface {
	Ensure(ctx context.Context) error
}

type nativeProvisioner struct {
	fnd        app.Foundation
	binary     types.Binary
	binaryPath string
}

func CreateProvisioner(fnd app.Foundation, binary types.Binary, binaryPath string) Provisioner {
	return &nativeProvisioner{
		fnd:        fnd,
		binary:     binary,
		binaryPath: binaryPath,
	}
}

// Ensure makes the exporter binary available at the configured path. A
// locally attached resource wins over downloading; a binary already in
// place with a matching digest is kept as is.
func (p *nativeProvisioner) Ensure(ctx context.Context) error {
	if p.copyAttachedResource() {
		return nil
	}
	if !p.mustDownload() {
		return nil
	}
	return p.download(ctx)
}

// copyAttachedResource installs a pre-supplied binary when one is
// configured and present. An absent resource is not an error; it just
// means the binary has to come from the download URL.
func (p *nativeProvisioner) copyAttachedResource() bool {
	fs := p.fnd.Fs()
	logger := p.fnd.Logger()

	if p.binary.Resource == "" {
		return false
	}
	data, err := afero.ReadFile(fs, p.binary.Resource)
	if err != nil {
		logger.Debugf("exporter binary resource %s is not available: %v", p.binary.Resource, err)
		return false
	}
	if err := afero.WriteFile(fs, p.binaryPath, data, binaryMode); err != nil {
		logger.Warnf("exporter binary resource could not be installed: %v", err)
		return false
	}
	if err := fs.Chmod(p.binaryPath, binaryMode); err != nil {
		logger.Warnf("exporter binary permissions could not be set: %v", err)
		return false
	}
	logger.Infof("exporter binary has been obtained from an attached resource")
	return true
}

func (p *nativeProvisioner) mustDownload() bool {
	exists, err := afero.Exists(p.fnd.Fs(), p.binaryPath)
	if err != nil || !exists {
		return true
	}
	if !p.sha256Matches(p.binaryPath, p.binary.SHA256) {
		return true
	}
	p.fnd.Logger().Debugf("exporter binary is already in place with a matching digest")
	return false
}

func (p *nativeProvisioner) sha256Matches(path string, expected string) bool {
	logger := p.fnd.Logger()

	data, err := afero.ReadFile(p.fnd.Fs(), path)
	if err != nil {
		logger.Errorf("file %s could not be opened for digest verification", path)
		return false
	}
	digest := sha256.Sum256(data)
	result := hex.EncodeToString(digest[:])
	if result != expected {
		logger.Debugf("file digest mismatch, expected %s but got %s", expected, result)
		return false
	}
	return true
}

// download fetches the pinned URL, verifies the digest and moves the
// binary into place through a staging file so a failed download never
// clobbers a working binary.
func (p *nativeProvisioner) download(ctx context.Context) error {
	fs := p.fnd.Fs()
	logger := p.fnd.Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.binary.URL, nil)
	if err != nil {
		return &FetchError{URL: p.binary.URL, Err: err}
	}
	resp, err := p.fnd.HttpClient().Do(req)
	if err != nil {
		return &FetchError{URL: p.binary.URL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: p.binary.URL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	data, err := afero.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{URL: p.binary.URL, Err: err}
	}

	stagingPath := filepath.Join(filepath.Dir(p.binaryPath), ".script_exporter-"+p.fnd.GenerateUuid())
	if err := afero.WriteFile(fs, stagingPath, data, binaryMode); err != nil {
		return err
	}
	if !p.fnd.DryRun() && !p.sha256Matches(stagingPath, p.binary.SHA256) {
		fs.Remove(stagingPath)
		return &FetchError{URL: p.binary.URL, Err: fmt.Errorf("downloaded binary digest mismatch")}
	}
	if err := fs.Rename(stagingPath, p.binaryPath); err != nil {
		fs.Remove(stagingPath)
		return err
	}
	if err := fs.Chmod(p.binaryPath, binaryMode); err != nil {
		return err
	}

	logger.Infof("exporter binary has been downloaded and stored in %s", p.binaryPath)
	return nil
}
