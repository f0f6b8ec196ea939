// Service research automates multi-source content research bookkeeping:
// it gathers provider data per keyword, caches every provider result in the
// content bucket, and drives the daily batch workflow that records
// success and failure per work item.
package research

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/rlog"
	"encore.dev/storage/objects"
	"encore.dev/storage/sqldb"

	"encore.app/research/collector"
	"encore.app/research/engine"
	"encore.app/research/provider"
	"encore.app/research/repository"
	"encore.app/research/rowsource"
	"encore.app/research/store"
)

var researchDB = sqldb.NewDatabase("content_research", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// contentBucket holds provider caches, per-run collected bundles and the
// daily summary logs.
var contentBucket = objects.NewBucket("research-content", objects.BucketConfig{})

var secrets struct {
	KwrdsAPIKey          string // research-volume, related-questions and ranked-results lookups
	PerplexityAPIKey     string // insight generation
	SheetsServiceAccount string // service-account credentials JSON
	SheetsSpreadsheetID  string // work-item spreadsheet
}

var validate = validator.New()

//encore:service
type Service struct {
	store     store.ContentStore
	collector collector.Collector
	engine    engine.Processor
	repo      *repository.Repository
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](researchDB)
	repo := repository.NewRepository(pgxdb)
	contentStore := store.NewBucketStore(contentBucket)

	rlog.Info("initializing row source")
	rows, err := rowsource.NewSheetsSource(context.Background(),
		[]byte(secrets.SheetsServiceAccount), secrets.SheetsSpreadsheetID)
	if err != nil {
		rlog.Error("row source initialization failed", "error", err)
		return nil, err
	}

	dataCollector := collector.New(contentStore,
		provider.NewKeywordsClient(secrets.KwrdsAPIKey),
		provider.NewPAAClient(secrets.KwrdsAPIKey),
		provider.NewSERPClient(secrets.KwrdsAPIKey),
		provider.NewInsightClient(secrets.PerplexityAPIKey),
	)

	rlog.Info("initializing workflow engine")
	return &Service{
		store:     contentStore,
		collector: dataCollector,
		engine:    engine.New(contentStore, rows, dataCollector, repo.Runs),
		repo:      repo,
	}, nil
}
