package input

// Config defines the input section of the gfsbuddy configuration.
type Config struct {
	// Format is the strftime format used to parse piped dates.
	Format string `json:"format,omitempty" jsonschema:"title=Date Format"`
	// Stdin reads dates from stdin even when it is a terminal.
	Stdin bool `json:"stdin,omitempty" jsonschema:"title=Force Stdin"`
}

// NewConfig creates a new [Config] with default values.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes empty fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
}
