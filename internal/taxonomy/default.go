package taxonomy

// DefaultEntries returns the built-in ECARE keyword table used when no
// external taxonomy file is provided. The keyword sets are a heuristic
// first pass, not a substitute for the authoritative taxonomy document.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Code:        "A.",
			Description: "Engineering and design services",
			Keywords:    []string{"engineering", "design", "development"},
		},
		{
			Code:        "A1.",
			Description: "Structural and mechanical design",
			Keywords:    []string{"structural", "airframe", "mechanical design", "stress analysis"},
		},
		{
			Code:        "A1.01",
			Description: "Composite structures",
			Keywords:    []string{"composite", "carbon fibre", "carbon fiber", "laminate"},
		},
		{
			Code:        "A1.02",
			Description: "Metallic structures",
			Keywords:    []string{"metallic", "sheet metal", "alloy", "titanium"},
		},
		{
			Code:        "A2.",
			Description: "Systems and avionics design",
			Keywords:    []string{"avionics", "embedded systems", "flight control", "electronics"},
		},
		{
			Code:        "B.",
			Description: "Manufacturing and production",
			Keywords:    []string{"manufacturing", "production", "assembly", "fabrication"},
		},
		{
			Code:        "B1.",
			Description: "Machining and metalwork",
			Keywords:    []string{"machining", "milling", "turning", "cnc"},
		},
		{
			Code:        "B2.",
			Description: "Composite part manufacturing",
			Keywords:    []string{"layup", "moulding", "molding", "resin", "autoclave"},
		},
		{
			Code:        "C.",
			Description: "Testing and certification",
			Keywords:    []string{"testing", "certification", "qualification", "test bench"},
		},
		{
			Code:        "D.",
			Description: "Software and digital services",
			Keywords:    []string{"software", "simulation", "digital", "data analytics"},
		},
		{
			Code:        "E.",
			Description: "Materials and special processes",
			Keywords:    []string{"materials", "surface treatment", "coating", "heat treatment", "welding"},
		},
		{
			Code:        "F.",
			Description: "Maintenance, repair and overhaul",
			Keywords:    []string{"maintenance", "repair", "overhaul", "mro", "spare parts"},
		},
	}
}
