package config

import (
	"bytes"

	"github.com/rwjstewart/gfsbuddy/api"
	"github.com/rwjstewart/gfsbuddy/pkg/yaml"
)

// Validator validates configuration data against a schema.
type Validator interface {
	Validate(data any) error
}

// LoaderOpt configures a [Loader].
type LoaderOpt func(*Loader)

// WithValidator sets a custom validator.
func WithValidator(v Validator) LoaderOpt {
	return func(l *Loader) {
		l.validator = v
	}
}

// Loader handles validation and YAML parsing of configuration data.
type Loader struct {
	validator Validator
	data      []byte
}

// NewLoaderFromBytes creates a [Loader] from byte data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	l := &Loader{
		data:      data,
		validator: DefaultValidator,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewLoaderFromFile creates a [Loader] from a file path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := api.ReadFile(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Return the original error.
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate validates the configuration data against the schema.
func (l *Loader) Validate() error {
	var anyConfig any

	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(&anyConfig)
	if err != nil {
		return err //nolint:wrapcheck // Decode returns a *yaml.Error.
	}

	if l.validator != nil {
		err = l.validator.Validate(anyConfig)
		if err != nil {
			return err //nolint:wrapcheck // Validate returns a *yaml.Error.
		}
	}

	return nil
}

// Load parses and returns the configuration.
func (l *Loader) Load() (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(l.data))

	err := dec.Decode(c)
	if err != nil {
		return nil, err //nolint:wrapcheck // Decode returns a *yaml.Error.
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return c, nil
}
