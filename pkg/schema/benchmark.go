package schema

// Benchmark is a scenario definition for one of the fixed inspector
// frameworks (bogomips, bw_mem, compression_text, geekbench, openssl,
// stress_ng). Populated once per framework/config combination as
// BenchmarkScore rows are harvested (internal/inspector).
type Benchmark struct {
	Meta
	BenchmarkID     string                 `json:"benchmark_id"`
	Name            string                 `json:"name"`
	Description     *string                `json:"description,omitempty"`
	Framework       string                 `json:"framework"`
	ConfigFields    map[string]interface{} `json:"config_fields"`
	Measurement     *string                `json:"measurement,omitempty"`
	Unit            *string                `json:"unit,omitempty"`
	HigherIsBetter  bool                   `json:"higher_is_better"`
}

func (b Benchmark) TableName() string { return "benchmark" }

func (b Benchmark) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{"benchmark_id": b.BenchmarkID}
}

func (b Benchmark) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"name":             b.Name,
		"description":      b.Description,
		"framework":        b.Framework,
		"config_fields":    b.ConfigFields,
		"measurement":      b.Measurement,
		"unit":             b.Unit,
		"higher_is_better": b.HigherIsBetter,
		"status":           b.Status,
		"observed_at":      b.ObservedAt,
	}
}

func (b Benchmark) Validate() error {
	verr := &ValidationError{Entity: "Benchmark"}
	if b.BenchmarkID == "" {
		verr.Add("benchmark_id is required")
	}
	if b.Framework == "" {
		verr.Add("framework is required")
	}
	return verr.AsError()
}

// BenchmarkScore is the result of running a Benchmark scenario on one
// Server. There is no SCD companion per spec.md §3.3's exception list;
// BenchmarkScore's own primary key already includes Config, so re-running
// the same scenario with a different config produces a distinct row, and
// observed_at tracks the framework run's own timestamp rather than the
// pull time (spec.md §4.6).
type BenchmarkScore struct {
	Meta
	VendorID    string                 `json:"vendor_id"`
	ServerID    string                 `json:"server_id"`
	BenchmarkID string                 `json:"benchmark_id"`
	Config      map[string]interface{} `json:"config"`
	Score       float64                `json:"score"`
	Note        *string                `json:"note,omitempty"`
}

func (s BenchmarkScore) TableName() string { return "benchmark_score" }

func (s BenchmarkScore) PrimaryKeys() map[string]interface{} {
	return map[string]interface{}{
		"vendor_id":    s.VendorID,
		"server_id":    s.ServerID,
		"benchmark_id": s.BenchmarkID,
		"config":       PKKey(s.Config),
	}
}

func (s BenchmarkScore) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"score":       s.Score,
		"note":        s.Note,
		"status":      s.Status,
		"observed_at": s.ObservedAt,
	}
}

func (s BenchmarkScore) Validate() error {
	verr := &ValidationError{Entity: "BenchmarkScore"}
	if s.VendorID == "" || s.ServerID == "" || s.BenchmarkID == "" {
		verr.Add("vendor_id, server_id and benchmark_id are all required")
	}
	return verr.AsError()
}
