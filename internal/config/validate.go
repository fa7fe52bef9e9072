package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg plus anything a
// run should refuse to start on (Errors) or just mention (Warnings).
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	out.Lexicon.Path = strings.TrimSpace(out.Lexicon.Path)
	out.Export.JSON = strings.TrimSpace(out.Export.JSON)
	out.Export.CSV = strings.TrimSpace(out.Export.CSV)
	out.Collect.Remotive.Search = strings.TrimSpace(out.Collect.Remotive.Search)
	out.Collect.Remotive.AuthAccount = strings.TrimSpace(out.Collect.Remotive.AuthAccount)

	// ---- collection sanity ----

	if out.Collect.TimeoutSeconds <= 0 {
		res.addErr("collect.timeout_seconds must be > 0")
	} else if out.Collect.TimeoutSeconds < 5 {
		res.addWarn("collect.timeout_seconds is very low (%d); slow sources will be cut off.", out.Collect.TimeoutSeconds)
	}

	if out.Collect.RequestsPerSec <= 0 {
		res.addErr("collect.requests_per_sec must be > 0")
	}
	if out.Collect.Burst <= 0 {
		res.addErr("collect.burst must be > 0")
	}

	if !out.Collect.Remotive.Enabled && !out.Collect.RemoteOK.Enabled {
		res.addWarn("no collection source enabled; only -raw runs will do anything.")
	}
	if out.Collect.RemoteOK.Enabled && !out.Collect.Remotive.Enabled {
		res.addWarn("only the fallback source (remoteok) is enabled; every record will be fallback-sourced.")
	}

	// ---- annotation / export sanity ----

	if out.Lexicon.Path == "" {
		res.addErr("lexicon.path is required")
	}

	if out.Export.JSON == "" && out.Export.CSV == "" {
		res.addWarn("export.json and export.csv are both empty; results only land in the corpus db.")
	}

	return out, res
}
