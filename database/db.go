package database

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avh/trend/shared"
	"github.com/avh/trend/strategy"
	"github.com/davecgh/go-spew/spew"
	rqlitehttp "github.com/rqlite/rqlite-go-http"
	"github.com/rs/zerolog"
)

const (
	// SQL statements. Markers are keyed by market, strategy and mark date,
	// scans by their deterministic weekly id, so repeated scans replace
	// rather than duplicate.
	createMarkerTableSQL = "CREATE TABLE IF NOT EXISTS marker (market TEXT, strategy TEXT, side TEXT, label TEXT, price REAL, markedon INTEGER, PRIMARY KEY (market, strategy, markedon))"
	createScanTableSQL   = "CREATE TABLE IF NOT EXISTS scan (id TEXT PRIMARY KEY, market TEXT, strategy TEXT, total INTEGER, wins INTEGER, winpercent REAL, losses INTEGER, losspercent REAL, createdon INTEGER)"
	persistMarkerSQL     = "INSERT OR REPLACE INTO marker(market, strategy, side, label, price, markedon) VALUES(?,?,?,?,?,?)"
	persistScanSQL       = "INSERT OR REPLACE INTO scan(id, market, strategy, total, wins, winpercent, losses, losspercent, createdon) VALUES(?,?,?,?,?,?,?,?,?)"
)

// SignalStorer defines the requirements for recording strategy output.
type SignalStorer interface {
	// PersistMarkers stores the provided strategy markers.
	PersistMarkers(ctx context.Context, market string, strategyName string, markers []shared.SignalMarker) error
	// PersistScanSummary stores the provided strategy scan summary.
	PersistScanSummary(ctx context.Context, market string, strategyName string, summary strategy.Summary) error
}

// DatabaseConfig is the configuration for the database.
type DatabaseConfig struct {
	// Endpoint represents the database connection endpoint.
	Endpoint string
	// User is the database user.
	User string
	// Pass is the database user pass.
	Pass string
	// Logger is the database logger.
	Logger *zerolog.Logger
}

// Database represents the database connection.
type Database struct {
	cfg    *DatabaseConfig
	client *rqlitehttp.Client
}

// Ensure the database implements the SignalStorer interface.
var _ SignalStorer = (*Database)(nil)

// NewDatabase initializes a new database connection.
func NewDatabase(ctx context.Context, cfg *DatabaseConfig) (*Database, error) {
	httpc := &http.Client{Timeout: time.Second * 5}
	client, err := rqlitehttp.NewClient(cfg.Endpoint, httpc)
	if err != nil {
		return nil, fmt.Errorf("creating database client: %w", err)
	}

	client.SetBasicAuth(cfg.User, cfg.Pass)

	db := &Database{
		cfg:    cfg,
		client: client,
	}

	err = db.bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping database: %w", err)
	}

	return db, nil
}

// bootstrap initializes the database.
func (db *Database) bootstrap(ctx context.Context) error {
	_, err := db.client.Execute(ctx, rqlitehttp.SQLStatements{
		{SQL: createMarkerTableSQL},
		{SQL: createScanTableSQL},
	}, &rqlitehttp.ExecuteOptions{
		Transaction: true,
		Timings:     true,
	})
	if err != nil {
		return err
	}

	return nil
}

// generateScanID generates deterministic ids for scan summaries using the
// current month, week, market and strategy.
func generateScanID(currentTime time.Time, market string, strategyName string) string {
	month := currentTime.Month().String()
	week := currentTime.Day() / 7

	id := fmt.Sprintf("%s-Week-%d-%s-%s", month, week, market, strategyName)
	return id
}

// markerStatements builds the parameterized upsert statements for the
// provided markers, skipping malformed ones.
func (db *Database) markerStatements(market string, strategyName string, markers []shared.SignalMarker) rqlitehttp.SQLStatements {
	statements := make(rqlitehttp.SQLStatements, 0, len(markers))
	for idx := range markers {
		marker := markers[idx]
		if marker.Price <= 0 || marker.Date.IsZero() {
			db.cfg.Logger.Error().Msgf("unexpected marker state for %s: %s", market, spew.Sdump(marker))
			continue
		}

		statements = append(statements, &rqlitehttp.SQLStatement{
			SQL: persistMarkerSQL,
			PositionalParams: []any{market, strategyName, marker.Side.String(), marker.Label,
				marker.Price, marker.Date.Unix()},
		})
	}

	return statements
}

// PersistMarkers stores the provided strategy markers. Re-persisting a
// marker history replaces the existing rows in place.
func (db *Database) PersistMarkers(ctx context.Context, market string, strategyName string, markers []shared.SignalMarker) error {
	if len(markers) == 0 {
		return nil
	}

	statements := db.markerStatements(market, strategyName, markers)
	if len(statements) == 0 {
		return nil
	}

	resp, err := db.client.Execute(ctx, statements,
		&rqlitehttp.ExecuteOptions{Transaction: true, Timings: true})
	if err != nil {
		return err
	}

	has, idx, errStr := resp.HasError()
	if has {
		return fmt.Errorf("persisting markers for %s: %d -> %s", market, idx, errStr)
	}

	return nil
}

// PersistScanSummary stores the provided strategy scan summary. Summaries
// share an id within a calendar week, later scans refresh the stored row.
func (db *Database) PersistScanSummary(ctx context.Context, market string, strategyName string, summary strategy.Summary) error {
	id := generateScanID(time.Now().UTC(), market, strategyName)

	resp, err := db.client.Execute(ctx, rqlitehttp.SQLStatements{
		{
			SQL: persistScanSQL,
			PositionalParams: []any{id, market, strategyName, summary.Total, summary.Wins,
				summary.WinPercent, summary.Losses, summary.LossPercent, time.Now().UTC().Unix()},
		},
	}, &rqlitehttp.ExecuteOptions{Transaction: true, Timings: true})
	if err != nil {
		return err
	}

	has, idx, errStr := resp.HasError()
	if has {
		return fmt.Errorf("persisting scan summary %s: %d -> %s", id, idx, errStr)
	}

	return nil
}
