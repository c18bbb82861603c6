package inspector

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sparecores/sc-crawler/pkg/scfields"
	"github.com/sparecores/sc-crawler/pkg/schema"
)

// HydrateServer fills in a Server's hardware detail fields (CPU cache/flags,
// memory generation/speed, GPU inventory) from the inspector dataset, the
// way inspect_update_server_dict does: every field is looked up and
// assigned independently, so one missing capture never prevents the rest
// from being filled in.
func HydrateServer(d *Dataset, log *slog.Logger, s *schema.Server) {
	root, err := d.Root()
	if err != nil {
		if log != nil {
			log.Debug("inspector dataset unavailable, skipping hydration", "error", err)
		}
		return
	}

	skip := func(field string, err error) {
		if log != nil {
			log.Debug("cannot update server field from inspector data", "vendor", s.VendorID, "server", s.ServerID, "field", field, "error", err)
		}
	}

	cpuSection, cpuErr := readDmidecodeSection(dmidecodeParsedPath(root, s.VendorID, s.APIReference), "Processor Information")
	memSection, memErr := readDmidecodeSection(dmidecodeParsedPath(root, s.VendorID, s.APIReference), "Memory Device")
	lscpu, lscpuErr := readLscpu(lscpuPath(root, s.VendorID, s.APIReference))
	smi, smiErr := readNvidiaSMI(nvidiaSMIPath(root, s.VendorID, s.APIReference))

	if cpuErr != nil {
		skip("cpu_cores", cpuErr)
	} else {
		if cores, ok := propFloat(cpuSection, "Core Count"); ok {
			n := int(cores)
			s.CpuCores = &n
		} else {
			skip("cpu_cores", fmt.Errorf("Core Count not present"))
		}

		if maxSpeed, ok := propFloat(cpuSection, "Max Speed"); ok {
			ghz := maxSpeed / 1e9
			s.CpuSpeed = &ghz
		} else {
			skip("cpu_speed", fmt.Errorf("Max Speed not present"))
		}

		if manufacturer, ok := propString(cpuSection, "Manufacturer"); ok {
			m := standardizeManufacturer(manufacturer)
			s.CpuManufacturer = &m
		} else {
			skip("cpu_manufacturer", fmt.Errorf("Manufacturer not present"))
		}

		if family, ok := propString(cpuSection, "Family"); ok {
			s.CpuFamily = &family
		} else {
			skip("cpu_family", fmt.Errorf("Family not present"))
		}

		if version, ok := propString(cpuSection, "Version"); ok {
			model := standardizeCPUModel(version)
			s.CpuModel = &model
		} else {
			skip("cpu_model", fmt.Errorf("Version not present"))
		}
	}

	if lscpuErr != nil {
		skip("cpu_l1_cache", lscpuErr)
		skip("cpu_l2_cache", lscpuErr)
		skip("cpu_l3_cache", lscpuErr)
		skip("cpu_flags", lscpuErr)
	} else {
		if l1, err := l123CacheFromLscpu(lscpu, 1); err == nil {
			s.CpuL1Cache = &l1
		} else {
			skip("cpu_l1_cache", err)
		}
		if l2, err := l123CacheFromLscpu(lscpu, 2); err == nil {
			s.CpuL2Cache = &l2
		} else {
			skip("cpu_l2_cache", err)
		}
		if l3, err := l123CacheFromLscpu(lscpu, 3); err == nil {
			s.CpuL3Cache = &l3
		} else {
			skip("cpu_l3_cache", err)
		}
		if flags, ok := lscpuField(lscpu, "Flags:"); ok {
			s.CpuFlags = strings.Fields(flags)
		} else {
			skip("cpu_flags", fmt.Errorf("Flags field not found"))
		}
	}

	if memErr != nil {
		skip("memory_generation", memErr)
		skip("memory_speed", memErr)
	} else {
		if ddrType, ok := propString(memSection, "Type"); ok {
			gen := scfields.MemoryGeneration(ddrType)
			if gen.Valid() && gen != "" {
				s.MemoryGeneration = gen
			} else {
				skip("memory_generation", fmt.Errorf("unrecognized DDR type %q", ddrType))
			}
		} else {
			skip("memory_generation", fmt.Errorf("Type not present"))
		}
		if speed, ok := propFloat(memSection, "Speed"); ok {
			mhz := int(speed / 1e6)
			s.MemorySpeed = &mhz
		} else {
			skip("memory_speed", fmt.Errorf("Speed not present"))
		}
	}

	if smiErr != nil || len(smi.GPUs) == 0 {
		err := smiErr
		if err == nil {
			err = fmt.Errorf("no gpu elements in nvidia-smi capture")
		}
		skip("gpus", err)
		return
	}

	details, err := gpusDetails(smi.GPUs)
	if err != nil {
		skip("gpus", err)
		return
	}

	gpus := make([]scfields.Gpu, 0, len(details))
	manufacturers := make([]string, 0, len(details))
	families := make([]string, 0, len(details))
	models := make([]string, 0, len(details))
	total, memMin := 0, -1
	for _, gd := range details {
		gpus = append(gpus, scfields.Gpu{Manufacturer: gd.Manufacturer, Family: gd.Family, Model: gd.Model, Memory: gd.MemoryMiB})
		manufacturers = append(manufacturers, gd.Manufacturer)
		families = append(families, gd.Family)
		models = append(models, gd.Model)
		total += gd.MemoryMiB
		if memMin == -1 || gd.MemoryMiB < memMin {
			memMin = gd.MemoryMiB
		}
	}

	s.Gpus = scfields.JSONColumn[[]scfields.Gpu]{Data: gpus}
	if m := mostCommonString(manufacturers); m != "" {
		s.GpuManufacturer = &m
	}
	if f := mostCommonString(families); f != "" {
		s.GpuFamily = &f
	}
	if mo := mostCommonString(models); mo != "" {
		s.GpuModel = &mo
	}
	s.GpuMemoryTotal = &total
	s.GpuMemoryMin = &memMin
}

