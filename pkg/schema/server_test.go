package schema

import (
	"testing"

	"github.com/sparecores/sc-crawler/pkg/scfields"
)

func validServer() Server {
	return Server{
		VendorID: "aws", ServerID: "p4d.24xlarge", Name: "p4d.24xlarge",
		Vcpus:           96,
		MemoryAmount:    1179648,
		CpuAllocation:   scfields.CPUDedicated,
		CpuArchitecture: scfields.ArchX86_64,
		StorageType:     scfields.StorageNVMeSSD,
	}
}

func TestServer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Server) Server
		wantErr bool
	}{
		{"valid", func(s Server) Server { return s }, false},
		{"zero vcpus", func(s Server) Server { s.Vcpus = 0; return s }, true},
		{"zero memory", func(s Server) Server { s.MemoryAmount = 0; return s }, true},
		{"bad cpu allocation", func(s Server) Server { s.CpuAllocation = "WEIRD"; return s }, true},
		{"bad architecture", func(s Server) Server { s.CpuArchitecture = "WEIRD"; return s }, true},
		{"negative gpu count", func(s Server) Server { s.GpuCount = -1; return s }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(validServer()).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServer_GpuMemoryTotalMustMatchSum(t *testing.T) {
	s := validServer()
	total := 160000
	s.GpuMemoryTotal = &total
	s.Gpus.Data = []scfields.Gpu{
		{Manufacturer: "Nvidia", Model: "A100", Memory: 40000},
		{Manufacturer: "Nvidia", Model: "A100", Memory: 40000},
	}
	if err := s.Validate(); err == nil {
		t.Fatal("expected mismatched gpu_memory_total to fail validation")
	}

	s.Gpus.Data = append(s.Gpus.Data,
		scfields.Gpu{Manufacturer: "Nvidia", Model: "A100", Memory: 40000},
		scfields.Gpu{Manufacturer: "Nvidia", Model: "A100", Memory: 40000},
	)
	if err := s.Validate(); err != nil {
		t.Fatalf("expected matching gpu_memory_total to validate, got %v", err)
	}
}
