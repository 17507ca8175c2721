package toast

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the file-backed part of a Notifier's configuration.
//
//	targets:
//	  success: {message: toastMessage, container: successToast}
//	  error:   {message: errorMessage, container: errorToast}
//	options:
//	  animation: true
//	  autohide: true
//	  delay: 3s        # or milliseconds: 3000
//	mount: false
//	mount_selector: body
type Settings struct {
	Targets Targets
	Options Options
	// Mount asks the host to create the toast markup for any container
	// missing from the page.
	Mount bool
	// MountSelector is the CSS selector the markup is appended under.
	MountSelector string
}

// DefaultSettings returns the stock targets and options.
func DefaultSettings() Settings {
	return Settings{Targets: DefaultTargets(), Options: DefaultOptions(), MountSelector: "body"}
}

// Apply copies the settings into cfg.
func (s Settings) Apply(cfg *Config) {
	cfg.Targets = s.Targets
	cfg.Options = s.Options
}

type settingsFile struct {
	Targets       map[string]targetFile `yaml:"targets"`
	Options       optionsFile           `yaml:"options"`
	Mount         bool                  `yaml:"mount"`
	MountSelector string                `yaml:"mount_selector"`
}

type targetFile struct {
	Message   string `yaml:"message"`
	Container string `yaml:"container"`
}

type optionsFile struct {
	Animation *bool  `yaml:"animation"`
	Autohide  *bool  `yaml:"autohide"`
	Delay     *delay `yaml:"delay"`
}

const maxDelayMS = math.MaxInt64 / int64(time.Millisecond)

// delay accepts a Go duration string ("3s") or an integer number of milliseconds.
type delay time.Duration

func (d *delay) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: delay must be a scalar", value.Line)
	}
	if ms, err := strconv.ParseInt(value.Value, 10, 64); err == nil {
		if ms > maxDelayMS || ms < -maxDelayMS {
			return fmt.Errorf("line %d: delay %s ms out of range", value.Line, value.Value)
		}
		*d = delay(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid delay %q: %w", value.Line, value.Value, err)
	}
	*d = delay(parsed)
	return nil
}

// ParseSettings decodes YAML settings on top of DefaultSettings.
// Keys left out of the document keep their default values, including
// the message or container id of a level that is only partly given.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()

	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("parse toast settings: %w", err)
	}

	for name, tf := range f.Targets {
		if name == "" {
			return Settings{}, fmt.Errorf("parse toast settings: empty level name")
		}
		level := Level(name)
		t := s.Targets[level]
		if tf.Message != "" {
			t.MessageID = tf.Message
		}
		if tf.Container != "" {
			t.ContainerID = tf.Container
		}
		if t.ContainerID == "" {
			return Settings{}, fmt.Errorf("parse toast settings: level %q has no container", name)
		}
		s.Targets[level] = t
	}

	if f.Options.Animation != nil {
		s.Options.Animation = *f.Options.Animation
	}
	if f.Options.Autohide != nil {
		s.Options.Autohide = *f.Options.Autohide
	}
	if f.Options.Delay != nil {
		if *f.Options.Delay < 0 {
			return Settings{}, fmt.Errorf("parse toast settings: negative delay")
		}
		if *f.Options.Delay > 0 {
			s.Options.Delay = time.Duration(*f.Options.Delay)
		}
	}
	s.Mount = f.Mount
	if f.MountSelector != "" {
		s.MountSelector = f.MountSelector
	}

	return s, nil
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read toast settings: %w", err)
	}
	return ParseSettings(data)
}
