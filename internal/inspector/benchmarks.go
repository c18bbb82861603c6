package inspector

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sparecores/sc-crawler/pkg/schema"
)

// HarvestBenchmarks collects every BenchmarkScore row available for a
// server across the six fixed inspector frameworks. Each framework is
// independently best-effort: a missing or malformed capture for one
// framework never blocks the others (ported from inspector.py's
// inspect_server_benchmarks).
func HarvestBenchmarks(d *Dataset, log *slog.Logger, s schema.Server) []schema.BenchmarkScore {
	root, err := d.Root()
	if err != nil {
		if log != nil {
			log.Debug("inspector dataset unavailable, skipping benchmarks", "error", err)
		}
		return nil
	}

	h := &harvester{root: root, log: log, vendorID: s.VendorID, serverID: s.ServerID, apiRef: s.APIReference, vcpus: s.Vcpus}

	var scores []schema.BenchmarkScore
	scores = append(scores, h.bogomips()...)
	scores = append(scores, h.bwMem()...)
	scores = append(scores, h.compressionText()...)
	scores = append(scores, h.geekbench()...)
	scores = append(scores, h.openssl()...)
	scores = append(scores, h.stressNG()...)
	return scores
}

type harvester struct {
	root     string
	log      *slog.Logger
	vendorID string
	serverID string
	apiRef   string
	vcpus    int
}

func (h *harvester) debugSkip(benchmarkID string, err error) {
	if h.log != nil {
		h.log.Debug("benchmark not loaded", "vendor", h.vendorID, "server", h.serverID, "benchmark", benchmarkID, "error", err)
	}
}

func (h *harvester) observedAt(framework string) (time.Time, error) {
	raw, err := os.ReadFile(benchmarkMetaPath(h.root, h.vendorID, h.apiRef, framework))
	if err != nil {
		return time.Time{}, err
	}
	var meta struct {
		End     *time.Time `json:"end"`
		Version string     `json:"version"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return time.Time{}, err
	}
	if meta.End == nil {
		return time.Time{}, fmt.Errorf("meta.json for %s has no end timestamp", framework)
	}
	return *meta.End, nil
}

func (h *harvester) version(framework string) (string, error) {
	raw, err := os.ReadFile(benchmarkMetaPath(h.root, h.vendorID, h.apiRef, framework))
	if err != nil {
		return "", err
	}
	var meta struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return "", err
	}
	return meta.Version, nil
}

func (h *harvester) row(framework, benchmarkID string, score float64, config map[string]interface{}, note *string) (schema.BenchmarkScore, error) {
	observedAt, err := h.observedAt(framework)
	if err != nil {
		return schema.BenchmarkScore{}, err
	}
	return schema.BenchmarkScore{
		Meta:        schema.Meta{ObservedAt: observedAt},
		VendorID:    h.vendorID,
		ServerID:    h.serverID,
		BenchmarkID: benchmarkID,
		Config:      config,
		Score:       score,
		Note:        note,
	}, nil
}

func (h *harvester) bogomips() []schema.BenchmarkScore {
	const framework = "bogomips"
	entries, err := readLscpu(lscpuPath(h.root, h.vendorID, h.apiRef))
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	value, ok := lscpuField(entries, "BogoMIPS:")
	if !ok {
		h.debugSkip(framework, fmt.Errorf("BogoMIPS field not found"))
		return nil
	}
	score, err := strconv.ParseFloat(value, 64)
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	// BogoMIPS is reported under the lscpu capture's own timestamp, same as
	// Python's inspect_server_benchmarks(framework="lscpu", benchmark_id="bogomips").
	row, err := h.row("lscpu", framework, score, nil, nil)
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	return []schema.BenchmarkScore{row}
}

func (h *harvester) bwMem() []schema.BenchmarkScore {
	const framework = "bw_mem"
	f, err := os.Open(benchmarkStdoutPath(h.root, h.vendorID, h.apiRef, framework))
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	defer f.Close()

	var out []schema.BenchmarkScore
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		size, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		row, err := h.row(framework, framework, score, map[string]interface{}{"what": fields[0], "size": size}, nil)
		if err != nil {
			h.debugSkip(framework, err)
			continue
		}
		out = append(out, row)
	}
	return out
}

var nonWord = regexp.MustCompile(`\W+`)

func (h *harvester) compressionText() []schema.BenchmarkScore {
	const framework = "compression_text"
	raw, err := os.ReadFile(benchmarkStdoutPath(h.root, h.vendorID, h.apiRef, framework))
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	var algos map[string]map[string][]struct {
		Threads   int                    `json:"threads"`
		ExtraArgs map[string]interface{} `json:"extra_args"`
		Ratio     float64                `json:"ratio"`
		Compress  float64                `json:"compress"`
		Decompress float64               `json:"decompress"`
	}
	if err := json.Unmarshal(raw, &algos); err != nil {
		h.debugSkip(framework, err)
		return nil
	}

	var out []schema.BenchmarkScore
	for algo, levels := range algos {
		for level, datas := range levels {
			var configLevel interface{}
			if level != "null" {
				if n, err := strconv.Atoi(level); err == nil {
					configLevel = n
				}
			}
			for _, data := range datas {
				config := map[string]interface{}{
					"algo":              algo,
					"compression_level": configLevel,
					"threads":           data.Threads,
				}
				if bs, ok := data.ExtraArgs["block_size"]; ok && bs != nil {
					config["block_size"] = bs
				}
				measurements := map[string]float64{"ratio": data.Ratio, "compress": data.Compress, "decompress": data.Decompress}
				for _, name := range []string{"ratio", "compress", "decompress"} {
					row, err := h.row(framework, framework+":"+name, measurements[name], config, nil)
					if err != nil {
						h.debugSkip(framework, err)
						continue
					}
					out = append(out, row)
				}
			}
		}
	}
	return out
}

func (h *harvester) geekbench() []schema.BenchmarkScore {
	const framework = "geekbench"
	raw, err := os.ReadFile(benchmarkResultsPath(h.root, h.vendorID, h.apiRef, framework))
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	var scores map[string]map[string]struct {
		Score       float64 `json:"score"`
		Description string  `json:"description"`
	}
	if err := json.Unmarshal(raw, &scores); err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	version, err := h.version(framework)
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}

	var out []schema.BenchmarkScore
	for cores, workloads := range scores {
		for workload, values := range workloads {
			benchmarkID := framework + ":" + nonWord.ReplaceAllString(strings.ToLower(workload), "_")
			config := map[string]interface{}{"cores": cores, "framework_version": version}
			var note *string
			if values.Description != "" {
				note = &values.Description
			}
			row, err := h.row(framework, benchmarkID, values.Score, config, note)
			if err != nil {
				h.debugSkip(framework, err)
				continue
			}
			out = append(out, row)
		}
	}
	return out
}

func (h *harvester) openssl() []schema.BenchmarkScore {
	const framework = "openssl"
	raw, err := os.ReadFile(benchmarkParsedPath(h.root, h.vendorID, h.apiRef, framework))
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	var workloads []struct {
		Algo      string  `json:"algo"`
		BlockSize int     `json:"block_size"`
		Speed     float64 `json:"speed"`
	}
	if err := json.Unmarshal(raw, &workloads); err != nil {
		h.debugSkip(framework, err)
		return nil
	}
	version, err := h.version(framework)
	if err != nil {
		h.debugSkip(framework, err)
		return nil
	}

	var out []schema.BenchmarkScore
	for _, w := range workloads {
		config := map[string]interface{}{"algo": w.Algo, "block_size": w.BlockSize, "framework_version": version}
		row, err := h.row(framework, framework, w.Speed, config, nil)
		if err != nil {
			h.debugSkip(framework, err)
			continue
		}
		out = append(out, row)
	}
	return out
}

var bogoOpsLine = regexp.MustCompile(`bogo-ops-per-second-real-time`)

func (h *harvester) stressNG() []schema.BenchmarkScore {
	const framework = "stress_ng"
	var out []schema.BenchmarkScore
	for _, run := range []struct {
		dir   string
		cores int
	}{
		{"stressng", 1},
		{"stressngsinglecore", h.vcpus},
	} {
		version, err := h.version(run.dir)
		if err != nil {
			h.debugSkip(framework, err)
			continue
		}
		line, err := extractLine(benchmarkStderrPath(h.root, h.vendorID, h.apiRef, run.dir), bogoOpsLine)
		if err != nil {
			h.debugSkip(framework, err)
			continue
		}
		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 {
			h.debugSkip(framework, fmt.Errorf("unexpected stress-ng line format %q", line))
			continue
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			h.debugSkip(framework, err)
			continue
		}
		config := map[string]interface{}{"cores": run.cores, "framework_version": version}
		observedAt, err := h.observedAt(run.dir)
		if err != nil {
			h.debugSkip(framework, err)
			continue
		}
		out = append(out, schema.BenchmarkScore{
			Meta:        schema.Meta{ObservedAt: observedAt},
			VendorID:    h.vendorID,
			ServerID:    h.serverID,
			BenchmarkID: framework + ":cpu_all",
			Config:      config,
			Score:       score,
		})
	}
	return out
}

func extractLine(path string, re *regexp.Regexp) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if re.MatchString(scanner.Text()) {
			return strings.TrimSpace(scanner.Text()), nil
		}
	}
	return "", fmt.Errorf("no line in %s matched %s", path, re)
}
