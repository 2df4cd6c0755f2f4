package main

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/pdiddy/docparse/internal/secrets"
	"github.com/pdiddy/docparse/internal/workspace"
	"github.com/pdiddy/docparse/pkg/types"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", types.DefaultEndpoint)
	v.SetDefault("user_agent", defaultUserAgent)
	v.SetDefault("timeout", "0s")
	v.SetDefault("documents_dir", workspace.DefaultDocumentsDir)
	v.SetDefault("output_dir", workspace.DefaultOutputDir)
	v.SetDefault("document", workspace.DefaultDocument)
	v.SetDefault("output_file", workspace.DefaultOutputFile)
	v.SetDefault("history.path", "")
}

// loadConfig assembles a Config from v. The credential is resolved through
// the secrets chain with api_key from v taking precedence; where it came from
// is reported on diag.
func loadConfig(v *viper.Viper, diag io.Writer) types.Config {
	cfg := types.Config{
		Submit: types.SubmitConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("timeout"),
				UserAgent: v.GetString("user_agent"),
			},
			Endpoint: v.GetString("endpoint"),
		},
		Workspace: types.WorkspaceConfig{
			DocumentsDir:  v.GetString("documents_dir"),
			OutputDir:     v.GetString("output_dir"),
			Document:      v.GetString("document"),
			OutputFile:    v.GetString("output_file"),
			WriteMetadata: v.GetBool("write_metadata"),
		},
		Archive: types.ArchiveConfig{
			Bucket:    v.GetString("archive.bucket"),
			Region:    v.GetString("archive.region"),
			Prefix:    v.GetString("archive.prefix"),
			Endpoint:  v.GetString("archive.endpoint"),
			AccessKey: v.GetString("archive.access_key"),
			SecretKey: v.GetString("archive.secret_key"),
		},
		History: types.HistoryConfig{
			Path: v.GetString("history.path"),
		},
	}

	src := secrets.Source{
		EnvVar:     credentialEnvVar,
		DotEnvFile: dotEnvFile,
		Dir:        secretsDir,
		File:       credentialFile,
		Warn:       diag,
	}
	credential, origin := src.Resolve(v.GetString("api_key"))
	if origin == secrets.OriginNone {
		fmt.Fprintf(diag, "warning: no API key found; set %s or add %s%s\n", credentialEnvVar, secretsDir, credentialFile)
	} else {
		fmt.Fprintf(diag, "Using API key from %s\n", origin)
	}
	cfg.Submit.Credential = credential

	return cfg
}
