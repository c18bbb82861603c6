package inspector

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// nvidiaSMILog mirrors the handful of `nvidia-smi -q -x` fields inspector
// hydration actually reads; the rest of the document is ignored.
type nvidiaSMILog struct {
	GPUs []nvidiaGPU `xml:"gpu"`
}

type nvidiaGPU struct {
	ProductName         string `xml:"product_name"`
	ProductBrand        string `xml:"product_brand"`
	ProductArchitecture string `xml:"product_architecture"`
	GSPFirmwareVersion  string `xml:"gsp_firmware_version"`
	VBIOSVersion        string `xml:"vbios_version"`
	FBMemoryUsage       struct {
		Total string `xml:"total"`
	} `xml:"fb_memory_usage"`
}

func readNvidiaSMI(path string) (*nvidiaSMILog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var log nvidiaSMILog
	if err := xml.Unmarshal(raw, &log); err != nil {
		return nil, err
	}
	return &log, nil
}

// gpuDetail is the Go port of _gpu_details: standardized manufacturer/model
// plus the onboard memory size in MiB, parsed out of a "24576 MiB"-style
// string the way sc-inspector's nvidia-smi capture reports it.
type gpuDetail struct {
	Manufacturer string
	Family       string
	Model        string
	MemoryMiB    int
}

func dropNA(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}

func parseMiB(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, " MiB")
	return strconv.Atoi(s)
}

func gpuDetails(g nvidiaGPU) (gpuDetail, error) {
	mem, err := parseMiB(g.FBMemoryUsage.Total)
	if err != nil {
		return gpuDetail{}, fmt.Errorf("parsing fb_memory_usage.total %q: %w", g.FBMemoryUsage.Total, err)
	}
	return gpuDetail{
		Manufacturer: standardizeManufacturer(dropNA(g.ProductBrand)),
		Family:       g.ProductArchitecture,
		Model:        g.ProductName,
		MemoryMiB:    mem,
	}, nil
}

func gpusDetails(gpus []nvidiaGPU) ([]gpuDetail, error) {
	out := make([]gpuDetail, 0, len(gpus))
	for _, g := range gpus {
		d, err := gpuDetails(g)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
