package inspector

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// lscpuEntry is one row of `lscpu --json`'s flat field/data list, the shape
// sc-inspector captures it in.
type lscpuEntry struct {
	Field string `json:"field"`
	Data  string `json:"data"`
}

func readLscpu(path string) ([]lscpuEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Lscpu []lscpuEntry `json:"lscpu"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Lscpu, nil
}

func lscpuField(entries []lscpuEntry, field string) (string, bool) {
	for _, e := range entries {
		if e.Field == field {
			return e.Data, true
		}
	}
	return "", false
}

// l123CacheFromLscpu ports _l123_cache: L1 sums the separate i/d cache
// entries lscpu reports; L2/L3 are single fields. Values are given in KB.
func l123CacheFromLscpu(entries []lscpuEntry, level int) (int, error) {
	firstToken := func(data string) (int, error) {
		fields := strings.Fields(data)
		if len(fields) == 0 {
			return 0, fmt.Errorf("empty cache field")
		}
		return strconv.Atoi(fields[0])
	}

	switch level {
	case 1:
		l1i, ok := lscpuField(entries, "L1i cache:")
		if !ok {
			return 0, fmt.Errorf("L1i cache field not found")
		}
		l1d, ok := lscpuField(entries, "L1d cache:")
		if !ok {
			return 0, fmt.Errorf("L1d cache field not found")
		}
		i, err := firstToken(l1i)
		if err != nil {
			return 0, err
		}
		d, err := firstToken(l1d)
		if err != nil {
			return 0, err
		}
		return i + d, nil
	case 2:
		data, ok := lscpuField(entries, "L2 cache:")
		if !ok {
			return 0, fmt.Errorf("L2 cache field not found")
		}
		return firstToken(data)
	case 3:
		data, ok := lscpuField(entries, "L3 cache:")
		if !ok {
			return 0, fmt.Errorf("L3 cache field not found")
		}
		return firstToken(data)
	default:
		return 0, fmt.Errorf("unknown cache level %d", level)
	}
}
