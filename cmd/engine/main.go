package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "github.com/joho/godotenv/autoload"

	"joblabel-engine/internal/collect"
	"joblabel-engine/internal/config"
	"joblabel-engine/internal/domain"
	"joblabel-engine/internal/export"
	"joblabel-engine/internal/lexicon"
	"joblabel-engine/internal/pipeline"
	"joblabel-engine/internal/secrets"
	"joblabel-engine/internal/store"
)

func main() {
	var (
		cfgFlag     = flag.String("config", "", "config path (default: <data-dir>/config.yml, bootstrapped from config/config.yml)")
		dataDirFlag = flag.String("data-dir", "", "data directory (default: $JOBLABEL_DATA_DIR or .)")
		rawFlag     = flag.String("raw", "", "label a raw JSON dump instead of collecting from the APIs")
		setTokFlag  = flag.String("set-token", "", "store an API token for the named source in the OS keychain and exit")
		delTokFlag  = flag.String("delete-token", "", "remove the named source's API token from the OS keychain and exit")
	)
	flag.Parse()

	if *setTokFlag != "" {
		acct := secrets.SourceAccount(*setTokFlag)
		if err := secrets.SetSourceToken(acct, readToken()); err != nil {
			log.Fatalf("set token: %v", err)
		}
		log.Printf("[engine] stored token for %s", acct)
		return
	}
	if *delTokFlag != "" {
		acct := secrets.SourceAccount(*delTokFlag)
		if err := secrets.DeleteSourceToken(acct); err != nil {
			log.Fatalf("delete token: %v", err)
		}
		log.Printf("[engine] removed token for %s", acct)
		return
	}

	dataDir := *dataDirFlag
	if dataDir == "" {
		dataDir = os.Getenv("JOBLABEL_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One run at a time against the corpus db.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Fatalf("another run already holds %s", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	cfgPath := *cfgFlag
	if cfgPath == "" {
		p, err := config.EnsureUserFile(dataDir, filepath.Join("config", "config.yml"), "config.yml")
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, val := config.NormalizeAndValidate(cfg)
	for _, w := range val.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !val.OK() {
		for _, e := range val.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", cfgPath)
	}

	lexPath := cfg.Lexicon.Path
	if !filepath.IsAbs(lexPath) {
		p, err := config.EnsureUserFile(dataDir, filepath.Join("config", lexPath), lexPath)
		if err != nil {
			log.Fatalf("lexicon bootstrap failed: %v", err)
		}
		lexPath = p
	}
	lex, err := lexicon.Load(lexPath)
	if err != nil {
		// Annotation cannot proceed on a partial lexicon.
		log.Fatalf("lexicon load failed: %v", err)
	}

	var raw []domain.RawRecord
	if *rawFlag != "" {
		raw, err = loadRawFile(*rawFlag)
		if err != nil {
			log.Fatalf("raw dump load failed (%s): %v", *rawFlag, err)
		}
		log.Printf("[engine] loaded %d raw records from %s", len(raw), *rawFlag)
	} else {
		raw, err = collect.CollectOnce(context.Background(), cfg)
		if err != nil {
			log.Fatalf("collect failed: %v", err)
		}
		log.Printf("[engine] collected %d raw records", len(raw))
	}

	labeled, st := pipeline.ProcessBatch(raw, lex)
	log.Printf("[engine] batch done kept=%d malformed=%d below_quality=%d duplicates=%d",
		st.Kept, st.Malformed, st.BelowQuality, st.Duplicates)

	dbPath := filepath.Join(dataDir, "joblabel.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	added := 0
	for _, rec := range labeled {
		ok, err := store.InsertIfNew(ctx, db.Pool, rec)
		if err != nil {
			log.Printf("[store] insert error id=%q: %v", rec.ID, err)
			continue
		}
		if ok {
			added++
		}
	}
	log.Printf("[store] inserted %d new records (db=%s)", added, dbPath)

	if cfg.Export.JSON != "" {
		p := resolvePath(dataDir, cfg.Export.JSON)
		if err := export.WriteJSONFile(p, labeled); err != nil {
			log.Fatalf("export json: %v", err)
		}
		log.Printf("[export] wrote %s", p)
	}
	if cfg.Export.CSV != "" {
		p := resolvePath(dataDir, cfg.Export.CSV)
		if err := export.WriteCSVFile(p, labeled); err != nil {
			log.Fatalf("export csv: %v", err)
		}
		log.Printf("[export] wrote %s", p)
	}

	log.Printf("[engine] done")
}
