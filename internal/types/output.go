package types

// InheritanceRecord summarises what a pass did to one class schema.
type InheritanceRecord struct {
	Class               string           `yaml:"class"`
	Schema              string           `yaml:"schema,omitempty"`
	State               InheritanceState `yaml:"state"`
	Ancestors           []string         `yaml:"ancestors,omitempty"`
	InheritedProperties []string         `yaml:"inherited_properties,omitempty"`
	Reference           string           `yaml:"reference,omitempty"`
	ReferencePresent    bool             `yaml:"reference_present,omitempty"`
	Extracted           bool             `yaml:"extracted,omitempty"`
}

type InheritanceReport struct {
	ReportVersion string              `yaml:"report_version"`
	Records       []InheritanceRecord `yaml:"records"`
}
