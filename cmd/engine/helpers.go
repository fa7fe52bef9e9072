package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"joblabel-engine/internal/domain"
	"joblabel-engine/internal/secrets"
)

// readToken takes the token from the env override if set, otherwise
// prompts on stdin.
func readToken() string {
	if tok := strings.TrimSpace(os.Getenv(secrets.EnvToken)); tok != "" {
		return tok
	}
	fmt.Fprint(os.Stderr, "token: ")
	sc := bufio.NewScanner(os.Stdin)
	sc.Scan()
	return strings.TrimSpace(sc.Text())
}

type rawDump struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Source      string `json:"source"`
}

// loadRawFile reads a previously collected batch so labeling can be
// re-run offline, e.g. after editing the lexicon.
func loadRawFile(path string) ([]domain.RawRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dump []rawDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return nil, err
	}
	out := make([]domain.RawRecord, 0, len(dump))
	for _, d := range dump {
		src := domain.Source(d.Source)
		if src != domain.SourceFallback {
			src = domain.SourcePrimary
		}
		out = append(out, domain.RawRecord{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Company:     d.Company,
			Source:      src,
		})
	}
	return out, nil
}

func resolvePath(dataDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}
