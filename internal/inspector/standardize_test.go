package inspector

import "testing"

func TestStandardizeManufacturer(t *testing.T) {
	cases := map[string]string{
		"Advanced Micro Devices, Inc.": "AMD",
		"Intel(R) Corporation":         "Intel",
		"NVIDIA":                       "Nvidia",
		"Tesla":                        "Nvidia",
		"Ampere(R) Computing":          "Ampere(R) Computing",
		"":                             "",
	}
	for raw, want := range cases {
		if got := standardizeManufacturer(raw); got != want {
			t.Errorf("standardizeManufacturer(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestStandardizeCPUModel(t *testing.T) {
	cases := map[string]string{
		"Not Specified":                                          "",
		"Intel(R) Xeon(R) Platinum 8259CL CPU @ 2.50GHz":         "8259CL",
		"AMD EPYC 7R13 Processor":                                "AMD EPYC 7R13 Processor",
	}
	for raw, want := range cases {
		if got := standardizeCPUModel(raw); got != want {
			t.Errorf("standardizeCPUModel(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestMostCommonString(t *testing.T) {
	if got := mostCommonString([]string{"Nvidia", "Nvidia", "AMD"}); got != "Nvidia" {
		t.Errorf("expected Nvidia, got %q", got)
	}
	if got := mostCommonString(nil); got != "" {
		t.Errorf("expected empty string for no values, got %q", got)
	}
}
