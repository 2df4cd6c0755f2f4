// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the parsing service credential. Credentials may
// come from explicit configuration, the process environment, a dotenv file,
// or a directory of plain-text files where each filename is a key name and
// the trimmed contents are the value.
//
// Supported key file: llamaparse-api-key.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Origin names where a credential was found.
type Origin string

const (
	OriginExplicit Origin = "config"
	OriginEnv      Origin = "environment"
	OriginDotEnv   Origin = "dotenv"
	OriginDir      Origin = "secrets-dir"
	OriginNone     Origin = "none"
)

// Source describes the places a single credential is looked up, in order.
// Empty fields are skipped.
type Source struct {
	// EnvVar is the environment variable name (e.g. "LLAMAPARSE_API_KEY").
	EnvVar string

	// DotEnvFile is a dotenv file that may define EnvVar. It is parsed
	// without exporting anything into the process environment.
	DotEnvFile string

	// Dir is a secrets directory and File the key file inside it.
	Dir  string
	File string

	// Warn receives non-fatal read problems. Nil discards them.
	Warn io.Writer
}

// Resolve returns the first non-empty credential in precedence order:
// explicit, environment, dotenv file, secrets directory. A credential that
// cannot be found anywhere is not an error; Resolve returns "" and OriginNone.
func (s Source) Resolve(explicit string) (string, Origin) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, OriginExplicit
	}

	if s.EnvVar != "" {
		if v := strings.TrimSpace(os.Getenv(s.EnvVar)); v != "" {
			return v, OriginEnv
		}
	}

	if s.EnvVar != "" && s.DotEnvFile != "" {
		env, err := godotenv.Read(s.DotEnvFile)
		switch {
		case err == nil:
			if v := strings.TrimSpace(env[s.EnvVar]); v != "" {
				return v, OriginDotEnv
			}
		case !os.IsNotExist(err):
			s.warnf("warning: could not read %s: %v\n", s.DotEnvFile, err)
		}
	}

	if s.Dir != "" && s.File != "" {
		w := s.Warn
		if w == nil {
			w = io.Discard
		}
		loaded, err := load(s.Dir, w)
		if err != nil {
			s.warnf("warning: %v\n", err)
		} else if v, ok := loaded[s.File]; ok {
			return v, OriginDir
		}
	}

	return "", OriginNone
}

func (s Source) warnf(format string, args ...any) {
	if s.Warn != nil {
		fmt.Fprintf(s.Warn, format, args...)
	}
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	return load(dir, os.Stderr)
}

// load is Load with per-file warnings sent to warn.
func load(dir string, warn io.Writer) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
