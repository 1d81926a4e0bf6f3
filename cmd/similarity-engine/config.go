// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/similarity-engine/internal/sources"
	"github.com/pdiddy/similarity-engine/pkg/types"
)

// secretDefault returns override if set, otherwise the secret value for
// key from .secrets/, otherwise empty.
func secretDefault(key, override string) string {
	if override != "" {
		return override
	}
	return loadedSecrets[key]
}

// buildConfig assembles the pipeline configuration from the config file,
// environment, and .secrets/ values, with working defaults for everything.
func buildConfig() types.PipelineConfig {
	viper.SetDefault("sources.timeout", 15*time.Second)
	viper.SetDefault("sources.user_agent", "similarity-engine/"+version)
	viper.SetDefault("sources.max_results", 10)
	viper.SetDefault("sources.enable_crossref", true)
	viper.SetDefault("sources.enable_openalex", false)
	viper.SetDefault("sources.enable_semantic_scholar", false)
	viper.SetDefault("report.top_n", 5)
	viper.SetDefault("report.average_divisor", string(types.DivisorFixed))
	viper.SetDefault("report.output_dir", "reports")
	viper.SetDefault("records.dir", "records")

	return types.PipelineConfig{
		Sources: types.SourcesConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("sources.timeout"),
				UserAgent: viper.GetString("sources.user_agent"),
			},
			MaxResults:            viper.GetInt("sources.max_results"),
			EnableCrossref:        viper.GetBool("sources.enable_crossref"),
			EnableOpenAlex:        viper.GetBool("sources.enable_openalex"),
			EnableSemanticScholar: viper.GetBool("sources.enable_semantic_scholar"),
			CrossrefMailto:        secretDefault("crossref-mailto", viper.GetString("sources.crossref_mailto")),
			OpenAlexEmail:         secretDefault("openalex-email", viper.GetString("sources.openalex_email")),
			SemanticScholarAPIKey: secretDefault("semantic-scholar-api-key", viper.GetString("sources.semantic_scholar_api_key")),
		},
		Report: types.ReportConfig{
			TopN:           viper.GetInt("report.top_n"),
			AverageDivisor: types.DivisorPolicy(viper.GetString("report.average_divisor")),
			OutputDir:      viper.GetString("report.output_dir"),
		},
		Records: types.RecordStoreConfig{
			Dir: viper.GetString("records.dir"),
		},
	}
}

// enabledSources builds the source adapter list in declaration order:
// CrossRef first, then OpenAlex, then Semantic Scholar. Discovery order
// in reports follows this order.
func enabledSources(cfg types.SourcesConfig) []sources.Source {
	client := &http.Client{Timeout: cfg.Timeout}

	var srcs []sources.Source
	if cfg.EnableCrossref {
		srcs = append(srcs, &sources.CrossrefSource{Client: client, Mailto: cfg.CrossrefMailto})
	}
	if cfg.EnableOpenAlex {
		srcs = append(srcs, &sources.OpenAlexSource{Client: client, Email: cfg.OpenAlexEmail})
	}
	if cfg.EnableSemanticScholar {
		srcs = append(srcs, &sources.SemanticScholarSource{Client: client, APIKey: cfg.SemanticScholarAPIKey})
	}
	return srcs
}
