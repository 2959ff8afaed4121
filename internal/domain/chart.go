package domain

// ChartRecord is a persisted computed chart.
// Corresponds to the charts table in PostgreSQL.
type ChartRecord struct {
	ChartID     string // PRIMARY KEY, deterministic hash of the input positions
	ShareCode   string // base58 short code derived from ChartID
	ObservedAt  int64  // Unix timestamp in milliseconds of the position set
	Balance     ElementalBalance
	Properties  AlchemicalProperties
	Thermo      ThermodynamicResult
	CreatedAt   int64  // record creation timestamp (ms)
	SourceKind  string // "ephemeris-http", "ephemeris-ws", "file", "stub"
	PlanetCount int    // number of bodies contributing to the balance
}

// TransitSnapshot is one timestamped thermodynamic observation of the sky.
// Corresponds to the transit_history table in ClickHouse; append-only.
type TransitSnapshot struct {
	TimestampMs int64 // Unix timestamp in milliseconds
	Fire        float64
	Water       float64
	Earth       float64
	Air         float64
	Heat        float64
	Entropy     float64
	Reactivity  float64
	GregsEnergy float64
	Kalchm      float64
	Monica      float64 // NaN is stored as NULL
	SunSign     ZodiacSign
	HourRuler   Planet // planetary hour ruler at snapshot time
}
