package lookup

import "github.com/sparecores/sc-crawler/pkg/schema"

func strp(s string) *string { return &s }

// ComplianceFrameworks is keyed by compliance_framework_id, ported verbatim
// from original_source/src/sc_crawler/lookup.py's module-level
// compliance_frameworks dict. Extend this as new frameworks are curated
// (the Python original leaves a TODO for soc2t1/iso27701/gdpr/pci/ccpa/csa;
// none of those are wired to a vendor yet, so they stay out until one is).
var ComplianceFrameworks = map[string]schema.ComplianceFramework{
	"hipaa": {
		ComplianceFrameworkID: "hipaa",
		Name:                  "The Health Insurance Portability and Accountability Act",
		Abbreviation:          strp("HIPAA"),
		Description: strp("HIPAA (Health Insurance Portability and Accountability Act) is a U.S. " +
			"federal law designed to safeguard the privacy and security of individuals' health " +
			"information, establishing standards for its protection and regulating its use in " +
			"the healthcare industry."),
		Homepage: strp("https://www.cdc.gov/phlp/publications/topic/hipaa.html"),
	},
	"soc2t2": {
		ComplianceFrameworkID: "soc2t2",
		Name:                  "System and Organization Controls Level 2 Type 2",
		Abbreviation:          strp("SOC 2 Type 2"),
		Description: strp("SOC 2 Type 2 is a framework for assessing and certifying the " +
			"effectiveness of a service organization's information security policies and " +
			"procedures over time, emphasizing the operational aspects and ongoing monitoring " +
			"of controls."),
		Homepage: strp("https://www.aicpa-cima.com/topic/audit-assurance/audit-and-assurance-greater-than-soc-2"),
	},
	"iso27001": {
		ComplianceFrameworkID: "iso27001",
		Name:                  "ISO/IEC 27001",
		Abbreviation:          strp("ISO 27001"),
		Description:           strp("ISO 27001 is standard for information security management systems."),
		Homepage:              strp("https://www.iso.org/standard/27001"),
	},
}

// VendorCompliance maps a vendor id to the compliance framework ids it
// holds, ported from vendors.py's per-vendor "for cf in [...]:
// VendorComplianceLink(...)" declarations.
var VendorCompliance = map[string][]string{
	"aws":     {"hipaa", "soc2t2"},
	"gcp":     {"hipaa", "soc2t2"},
	"azure":   {"hipaa", "soc2t2", "iso27001"},
	"hetzner": {"iso27001"},
	"ovh":     {"iso27001"},
	"upcloud": {"iso27001"},
	"alibaba": {"soc2t2", "iso27001"},
}
