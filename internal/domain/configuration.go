package domain

// Configuration is the scenario file: any combination of the four comparisons.
type Configuration struct {
	Name         string              `yaml:"name,omitempty" json:"name,omitempty"`
	Seed         int64               `yaml:"seed,omitempty" json:"seed,omitempty"`
	DownPayment  *DownPaymentInput   `yaml:"down_payment,omitempty" json:"down_payment,omitempty"`
	ExtraPayment *ExtraPaymentInput  `yaml:"extra_payment,omitempty" json:"extra_payment,omitempty"`
	Points       *PointsInput        `yaml:"points,omitempty" json:"points,omitempty"`
	Arm          *ArmComparisonInput `yaml:"arm,omitempty" json:"arm,omitempty"`
}

// ScenarioCount is the number of comparisons the file requests.
func (c *Configuration) ScenarioCount() int {
	n := 0
	if c.DownPayment != nil {
		n++
	}
	if c.ExtraPayment != nil {
		n++
	}
	if c.Points != nil {
		n++
	}
	if c.Arm != nil {
		n++
	}
	return n
}
