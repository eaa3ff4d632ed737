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

// Package materializer turns a declarative script source and a probe
// configuration document into files on disk: scripts extracted with
// executable permissions, and a probe config whose script commands are
// resolved to absolute paths.
package materializer

import (
	"archive/tar"
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
	"gopkg.in/yaml.v3"

	"github.com/sxptool/sxp/app"
	"github.com/sxptool/sxp/conf/types"
)

const scriptMode = 0o755

// Source is the declarative script source. Archive is a base64-encoded,
// LZMA-compressed tar stream; Inline is the verbatim text of a single
// script. When both are set the archive wins and the inline script is
// ignored with a warning.
type Source struct {
	Inline  string
	Archive string
}

// Registry is the set of script names considered valid for path
// rewriting: archive member names, or the single-script path.
type Registry []string

func (r Registry) Contains(name string) bool {
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}

// Layout names the destination paths for materialization.
type Layout struct {
	ScriptsDir   string
	SingleScript string
}

// Result is what a materialization produced. ArchiveErr carries the
// degradation when the scripts archive could not be decoded; the rest of
// the result is still valid in that case.
type Result struct {
	Registry   Registry
	Written    []string
	Config     string
	ArchiveErr *ArchiveError
}

func (r *Result) Degraded() bool {
	return r.ArchiveErr != nil
}

type Materializer interface {
	ListArchiveScripts(archive string) (Registry, error)
	ExtractScripts(archive string, destDir string) (Registry, error)
	MaterializeSingleScript(content string, destPath string) (Registry, error)
	RewriteCommandPaths(configYAML string, registry Registry, scriptsDir string) (string, error)
	Materialize(source Source, configYAML string, layout Layout) (*Result, error)
}

type nativeMaterializer struct {
	fnd app.Foundation
}

func CreateMaterializer(fnd app.Foundation) Materializer {
	return &nativeMaterializer{
		fnd: fnd,
	}
}

// decodeArchive decodes the archive text in strict order: base64, then
// LZMA, then tar. The whole stream is decompressed up front so that a
// malformed payload fails before anything touches the filesystem.
func (m *nativeMaterializer) decodeArchive(archive string) (*tar.Reader, error) {
	data, err := base64.StdEncoding.DecodeString(archive)
	if err != nil {
		return nil, &ArchiveError{Stage: ArchiveStageBase64, Err: err}
	}

	decompressed, err := decompress(data)
	if err != nil {
		return nil, &ArchiveError{Stage: ArchiveStageLZMA, Err: err}
	}

	return tar.NewReader(bytes.NewReader(decompressed)), nil
}

// xz container magic, the alternative being a raw LZMA stream.
var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// decompress handles both stream flavors LZMA tooling produces: an xz
// container and the legacy LZMA-alone format.
func decompress(data []byte) ([]byte, error) {
	var reader io.Reader
	var err error
	if bytes.HasPrefix(data, xzMagic) {
		reader, err = xz.NewReader(bytes.NewReader(data))
	} else {
		reader, err = lzma.NewReader(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

// ListArchiveScripts returns the archive member names without writing
// anything, so a registry can be recomputed for validation at any time.
func (m *nativeMaterializer) ListArchiveScripts(archive string) (Registry, error) {
	tarReader, err := m.decodeArchive(archive)
	if err != nil {
		return nil, err
	}

	var names Registry
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ArchiveError{Stage: ArchiveStageTar, Err: err}
		}
		names = append(names, header.Name)
	}
	return names, nil
}

// ExtractScripts extracts every archive member under destDir, preserving
// relative paths, and makes every extracted regular file executable.
// The returned registry is identical to what ListArchiveScripts reports.
func (m *nativeMaterializer) ExtractScripts(archive string, destDir string) (Registry, error) {
	tarReader, err := m.decodeArchive(archive)
	if err != nil {
		return nil, err
	}
	registry, _, err := m.extract(tarReader, destDir)
	return registry, err
}

func (m *nativeMaterializer) extract(tarReader *tar.Reader, destDir string) (Registry, []string, error) {
	fs := m.fnd.Fs()
	logger := m.fnd.Logger()

	var names Registry
	var written []string
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, written, &ArchiveError{Stage: ArchiveStageTar, Err: err}
		}
		names = append(names, header.Name)

		destPath := filepath.Join(destDir, header.Name)
		if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(filepath.Separator)) {
			logger.Warnf("skipping archive member %s escaping the scripts directory", header.Name)
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := fs.MkdirAll(destPath, 0o755); err != nil {
				return nil, written, err
			}
		case tar.TypeReg:
			if err := fs.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return nil, written, err
			}
			if err := m.writeScript(destPath, tarReader); err != nil {
				return nil, written, err
			}
			written = append(written, destPath)
		default:
			logger.Debugf("skipping archive member %s with unsupported type %c", header.Name, header.Typeflag)
		}
	}
	return names, written, nil
}

func (m *nativeMaterializer) writeScript(destPath string, content io.Reader) error {
	fs := m.fnd.Fs()

	file, err := fs.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, scriptMode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return fs.Chmod(destPath, scriptMode)
}

// MaterializeSingleScript writes the inline script verbatim and registers
// its destination path as the sole valid script name.
func (m *nativeMaterializer) MaterializeSingleScript(content string, destPath string) (Registry, error) {
	fs := m.fnd.Fs()

	if err := afero.WriteFile(fs, destPath, []byte(content), scriptMode); err != nil {
		return nil, err
	}
	if err := fs.Chmod(destPath, scriptMode); err != nil {
		return nil, err
	}
	return Registry{destPath}, nil
}

// RewriteCommandPaths resolves every script command that matches a
// registry entry to an absolute path under scriptsDir. Commands outside
// the registry are left untouched and logged; commands that are already
// absolute (the single-script case) are left as they are. All other
// document fields round-trip unchanged.
func (m *nativeMaterializer) RewriteCommandPaths(configYAML string, registry Registry, scriptsDir string) (string, error) {
	logger := m.fnd.Logger()

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(configYAML), &doc); err != nil {
		return "", &types.ConfigParseError{Doc: "probe config", Err: err}
	}

	scripts, _ := doc["scripts"].([]interface{})
	for _, item := range scripts {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		command, _ := entry["command"].(string)
		if !registry.Contains(command) {
			logger.Debugf("%s is not part of the uploaded scripts", command)
			continue
		}
		if filepath.IsAbs(command) {
			continue
		}
		entry["command"] = filepath.Join(scriptsDir, command)
	}

	rewritten, err := yaml.Marshal(doc)
	if err != nil {
		return "", errors.Errorf("serializing probe config failed: %v", err)
	}
	return string(rewritten), nil
}

// Materialize runs the whole pipeline: it ensures the scripts directory,
// dispatches to archive or single-script materialization, computes the
// registry and rewrites the probe config. A malformed archive degrades
// only the script step; filesystem and config parse errors are fatal.
func (m *nativeMaterializer) Materialize(source Source, configYAML string, layout Layout) (*Result, error) {
	fs := m.fnd.Fs()
	logger := m.fnd.Logger()

	if err := fs.MkdirAll(layout.ScriptsDir, 0o755); err != nil {
		return nil, err
	}

	result := &Result{}
	switch {
	case source.Archive != "":
		if source.Inline != "" {
			logger.Warnf("both an inline script and a scripts archive are configured; using the archive")
		}
		tarReader, err := m.decodeArchive(source.Archive)
		if err != nil {
			var archiveErr *ArchiveError
			errors.As(err, &archiveErr)
			logger.Warnf("scripts archive could not be materialized: %v", archiveErr)
			result.ArchiveErr = archiveErr
			break
		}
		registry, written, err := m.extract(tarReader, layout.ScriptsDir)
		if err != nil {
			var archiveErr *ArchiveError
			if !errors.As(err, &archiveErr) {
				return nil, err
			}
			logger.Warnf("scripts archive could not be materialized: %v", archiveErr)
			result.ArchiveErr = archiveErr
			result.Written = written
			break
		}
		result.Registry = registry
		result.Written = written
	case source.Inline != "":
		registry, err := m.MaterializeSingleScript(source.Inline, layout.SingleScript)
		if err != nil {
			return nil, err
		}
		result.Registry = registry
		result.Written = []string{layout.SingleScript}
	}

	if configYAML != "" {
		rewritten, err := m.RewriteCommandPaths(configYAML, result.Registry, layout.ScriptsDir)
		if err != nil {
			return nil, err
		}
		result.Config = rewritten
	}

	return result, nil
}
