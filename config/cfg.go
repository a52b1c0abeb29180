package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"ia2amp/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// Dimensions is explicitly configured media size in pixels.
	Dimensions struct {
		Width  int `yaml:"width" validate:"gt=0"`
		Height int `yaml:"height" validate:"gt=0"`
	}

	// MediaConfig controls how media dimensions are resolved when article
	// does not carry them.
	MediaConfig struct {
		CacheDir      string                `yaml:"cache_dir,omitempty"`
		Fetch         bool                  `yaml:"fetch"`
		FetchTimeout  time.Duration         `yaml:"fetch_timeout" validate:"gte=0"`
		FetchLimit    int64                 `yaml:"fetch_limit" validate:"gte=0"`
		DefaultWidth  int                   `yaml:"default_width" validate:"gte=0"`
		DefaultHeight int                   `yaml:"default_height" validate:"gte=0"`
		Sizes         map[string]Dimensions `yaml:"sizes,omitempty" validate:"omitempty,dive"`
	}

	CoverConfig struct {
		Sizing common.ImageSizingMode `yaml:"sizing" validate:"gte=0"`
	}

	DocumentConfig struct {
		Language           string       `yaml:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
		RTL                bool         `yaml:"rtl"`
		CSSPrefix          string       `yaml:"css_prefix" validate:"required"`
		StylesDir          string       `yaml:"styles_dir,omitempty"`
		Style              string       `yaml:"style,omitempty"`
		StylesheetPath     string       `yaml:"global_stylesheet_path,omitempty"`
		DateTemplate       string       `yaml:"date_template"`
		OutputNameTemplate string       `yaml:"output_name_template"`
		Cover              CoverConfig  `yaml:"cover"`
		Media              MediaConfig  `yaml:"media"`
		Publisher          any          `yaml:"publisher,omitempty"`
		MapsAPIKey         SecretString `yaml:"maps_api_key,omitempty"`
		Analytics          []string     `yaml:"analytics,omitempty" validate:"dive,required"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	DateTemplateFieldName       TemplateFieldName = "date_template"
)

const (
	DefaultMediaWidth  = 380
	DefaultMediaHeight = 240
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(DateTemplateFieldName)),
)

// DefaultSize returns configured fallback media size, 380x240 unless set.
func (m *MediaConfig) DefaultSize() (int, int) {
	w, h := m.DefaultWidth, m.DefaultHeight
	if w <= 0 {
		w = DefaultMediaWidth
	}
	if h <= 0 {
		h = DefaultMediaHeight
	}
	return w, h
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump returns actual configuration as YAML, secrets are masked.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
