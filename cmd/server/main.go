// Package main provides the unified service:
// - HTTP API: alchemize, recommend, planetary hour
// - Scheduled transit snapshots into ClickHouse
// - Health, status, and Prometheus metrics endpoints
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"alchm-core/internal/astro"
	"alchm-core/internal/domain"
	"alchm-core/internal/ephemeris"
	"alchm-core/internal/ingestion"
	"alchm-core/internal/metrics"
	"alchm-core/internal/observability"
	"alchm-core/internal/pipeline"
	"alchm-core/internal/recommend"
	"alchm-core/internal/refdata"
	"alchm-core/internal/storage"
	chstore "alchm-core/internal/storage/clickhouse"
	"alchm-core/internal/storage/memory"
	"alchm-core/internal/storage/migrations"
	pgstore "alchm-core/internal/storage/postgres"
)

// Server holds all components of the unified service.
type Server struct {
	engine     *pipeline.Engine
	aggregator *metrics.Aggregator
	tables     recommend.Tables
	wsEndpoint string
	limit      int
	logger     *log.Logger
	started    time.Time

	mu           sync.Mutex
	chartsServed int
	recsServed   int
}

func main() {
	loadEnvFile()

	ephemerisEndpoint := flag.String("ephemeris-endpoint", os.Getenv("EPHEMERIS_ENDPOINT"), "Ephemeris HTTP endpoint")
	ephemerisWS := flag.String("ephemeris-ws", os.Getenv("EPHEMERIS_WS_ENDPOINT"), "Ephemeris WebSocket endpoint for streamed updates")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL/ClickHouse")
	listenAddr := flag.String("listen-addr", ":8080", "HTTP listen address")
	snapshotInterval := flag.Duration("snapshot-interval", 1*time.Minute, "Transit snapshot interval")
	limit := flag.Int("limit", 10, "Max entries per recommendation list")

	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	if !*useMemory && (*postgresDSN == "" || *clickhouseDSN == "") {
		logger.Fatal("--postgres-dsn and --clickhouse-dsn are required (use --use-memory for in-memory storage)")
	}

	ctx, cancel := context.WithCancel(context.Background())

	charts, transits, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	tables, err := refdata.Tables()
	if err != nil {
		logger.Fatalf("Failed to load reference tables: %v", err)
	}

	var source ephemeris.PositionSource
	sourceKind := "stub"
	if *ephemerisEndpoint != "" {
		source = ephemeris.NewHTTPClient(*ephemerisEndpoint)
		sourceKind = "ephemeris-http"
	} else {
		logger.Println("No ephemeris endpoint configured, using the mean-motion approximation")
		source = ephemeris.NewMeanMotionSource()
	}

	engine := pipeline.NewEngine(source, sourceKind).
		WithChartStore(charts).
		WithTransitStore(transits).
		WithTables(tables).
		WithLimit(*limit).
		WithMetrics(observability.DefaultMetrics)

	server := &Server{
		engine:     engine,
		aggregator: metrics.NewAggregator(transits),
		tables:     tables,
		wsEndpoint: *ephemerisWS,
		limit:      *limit,
		logger:     logger,
		started:    time.Now().UTC(),
	}

	done := make(chan error, 1)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)
		cancel()

		select {
		case sig := <-sigCh:
			logger.Printf("Received second signal %v, forcing immediate shutdown", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			logger.Println("Graceful shutdown timed out after 30s, forcing exit")
			os.Exit(1)
		case <-done:
		}
	}()

	go server.startHTTPServer(*listenAddr)

	err = server.Run(ctx, *snapshotInterval)
	done <- err
	cancel()

	if err != nil && err != context.Canceled {
		logger.Fatalf("Server error: %v", err)
	}

	logger.Println("Shutdown complete")
}

// createStores creates the chart and transit stores.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory bool) (storage.ChartStore, storage.TransitSnapshotStore, func(), error) {
	if useMemory {
		return memory.NewChartStore(), memory.NewTransitSnapshotStore(), func() {}, nil
	}

	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("run postgres migrations: %w", err)
	}

	chConn, err := migrations.RunClickhouseMigrations(ctx, clickhouseDSN)
	if err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("run clickhouse migrations: %w", err)
	}

	cleanup := func() {
		chConn.Close()
		pool.Close()
	}

	return pgstore.NewChartStore(pool), chstore.NewTransitSnapshotStore(chConn), cleanup, nil
}

// Run starts the snapshot scheduler, and the stream runner when a WebSocket
// endpoint is configured, then blocks until shutdown.
func (s *Server) Run(ctx context.Context, interval time.Duration) error {
	errCh := make(chan error, 2)

	go func() {
		s.logger.Printf("Starting transit snapshot scheduler (interval: %v)...", interval)
		sched := pipeline.NewSnapshotScheduler(s.engine, interval)
		if err := sched.Run(ctx); err != nil && err != context.Canceled {
			errCh <- fmt.Errorf("snapshot scheduler: %w", err)
		}
	}()

	if s.wsEndpoint != "" {
		go func() {
			if err := s.runStream(ctx); err != nil && err != context.Canceled {
				errCh <- fmt.Errorf("stream runner: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// runStream consumes streamed ephemeris updates.
func (s *Server) runStream(ctx context.Context) error {
	s.logger.Printf("Connecting to ephemeris stream at %s...", s.wsEndpoint)

	ws, err := ephemeris.NewWSClient(ctx, s.wsEndpoint, nil)
	if err != nil {
		return fmt.Errorf("create websocket client: %w", err)
	}
	defer ws.Close()

	runner := ingestion.NewRunner(ingestion.RunnerOptions{
		Stream: ws,
		Engine: s.engine,
		Logger: log.New(os.Stdout, "[ingestion] ", log.LstdFlags|log.Lshortfile),
	})

	return runner.Run(ctx)
}

// startHTTPServer starts the HTTP API.
func (s *Server) startHTTPServer(addr string) {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", observability.Handler())
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/v1/alchemize", s.handleAlchemize)
	mux.HandleFunc("/v1/recommend", s.handleRecommend)
	mux.HandleFunc("/v1/planetary-hour", s.handlePlanetaryHour)
	mux.HandleFunc("/v1/transit-summary", s.handleTransitSummary)

	s.logger.Printf("Starting HTTP server on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		s.logger.Printf("HTTP server error: %v", err)
	}
}

// AlchemizeRequest is the JSON request for /v1/alchemize. Both fields are
// optional: a missing time means now, missing positions are fetched from the
// configured source.
type AlchemizeRequest struct {
	At        string            `json:"at,omitempty"` // RFC3339
	Positions []PositionRequest `json:"positions,omitempty"`
}

// PositionRequest is one body in an explicit position set.
type PositionRequest struct {
	Planet     string  `json:"planet"`
	Longitude  float64 `json:"longitude"`
	Retrograde bool    `json:"retrograde"`
}

func (s *Server) handleAlchemize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AlchemizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	at := time.Now().UTC()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid at: %v", err), http.StatusBadRequest)
			return
		}
		at = parsed.UTC()
	}

	var result *pipeline.Result
	var err error
	if len(req.Positions) > 0 {
		positions := make([]domain.PlanetaryPosition, 0, len(req.Positions))
		for _, p := range req.Positions {
			planet := domain.Planet(p.Planet)
			if !planet.IsValid() {
				http.Error(w, fmt.Sprintf("unknown body: %s", p.Planet), http.StatusBadRequest)
				return
			}
			positions = append(positions, domain.PlanetaryPosition{
				Planet:           planet,
				LongitudeDegrees: p.Longitude,
				IsRetrograde:     p.Retrograde,
			})
		}
		result, err = s.engine.AlchemizePositions(r.Context(), at, positions)
	} else {
		result, err = s.engine.Alchemize(r.Context(), at)
	}
	if err != nil {
		s.logger.Printf("alchemize error: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.chartsServed++
	s.mu.Unlock()

	writeJSON(w, newChartResponse(result))
}

// RecommendRequest is the JSON request for /v1/recommend: score the reference
// tables against an explicit elemental profile instead of the current sky.
type RecommendRequest struct {
	Fire  float64 `json:"fire"`
	Water float64 `json:"water"`
	Earth float64 `json:"earth"`
	Air   float64 `json:"air"`
	Limit int     `json:"limit,omitempty"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.limit
	}

	start := time.Now()
	now := time.Now().UTC()
	recs := recommend.Recommend(recommend.Context{
		Fractions: domain.ElementalFractions{
			Fire: req.Fire, Water: req.Water, Earth: req.Earth, Air: req.Air,
		},
		HourRuler:      astro.HourRuler(now),
		LunarPhase:     astro.CurrentLunarPhase(now).Phase,
		SeasonalBoosts: astro.SeasonalBoostIDs(now),
		Limit:          limit,
	}, s.tables)
	observability.RecordRecommendation(time.Since(start).Seconds())

	s.mu.Lock()
	s.recsServed++
	s.mu.Unlock()

	writeJSON(w, newRecommendationResponse(recs))
}

// PlanetaryHourResponse is the JSON response for /v1/planetary-hour.
type PlanetaryHourResponse struct {
	At           string  `json:"at"`
	HourRuler    string  `json:"hour_ruler"`
	DayRuler     string  `json:"day_ruler"`
	HourElement  string  `json:"hour_element"`
	LunarPhase   string  `json:"lunar_phase"`
	Illumination float64 `json:"illumination"`
	SeasonSign   string  `json:"season_sign"`
}

func (s *Server) handlePlanetaryHour(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	now := time.Now().UTC()
	hourRuler := astro.HourRuler(now)
	lunar := astro.CurrentLunarPhase(now)

	writeJSON(w, PlanetaryHourResponse{
		At:           now.Format(time.RFC3339),
		HourRuler:    string(hourRuler),
		DayRuler:     string(astro.DayRuler(now)),
		HourElement:  string(astro.PlanetaryElements[hourRuler]),
		LunarPhase:   string(lunar.Phase),
		Illumination: lunar.Illumination,
		SeasonSign:   string(astro.SeasonSign(now)),
	})
}

func (s *Server) handleTransitSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Default window: the trailing 24 hours
	end := time.Now().UTC().UnixMilli()
	start := end - 24*time.Hour.Milliseconds()
	var err error
	if v := r.URL.Query().Get("start"); v != "" {
		if start, err = parseMillis(v); err != nil {
			http.Error(w, fmt.Sprintf("invalid start: %v", err), http.StatusBadRequest)
			return
		}
	}
	if v := r.URL.Query().Get("end"); v != "" {
		if end, err = parseMillis(v); err != nil {
			http.Error(w, fmt.Sprintf("invalid end: %v", err), http.StatusBadRequest)
			return
		}
	}

	summary, err := s.aggregator.Summarize(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, metrics.ErrNoSnapshots) {
			http.Error(w, "no snapshots in window", http.StatusNotFound)
			return
		}
		s.logger.Printf("transit summary error: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, newTransitSummaryResponse(summary))
}

func parseMillis(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

// StatusResponse is the JSON response for /status.
type StatusResponse struct {
	Status       string    `json:"status"`
	Uptime       string    `json:"uptime"`
	Started      time.Time `json:"started"`
	ChartsServed int       `json:"charts_served"`
	RecsServed   int       `json:"recommendations_served"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, StatusResponse{
		Status:       "running",
		Uptime:       time.Since(s.started).String(),
		Started:      s.started,
		ChartsServed: s.chartsServed,
		RecsServed:   s.recsServed,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// loadEnvFile loads environment variables from .env file if it exists.
func loadEnvFile() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return // File doesn't exist, use system env vars
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Don't override existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}
