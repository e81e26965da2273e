package cli

import (
	"fmt"
	"os"

	"github.com/func/prompt/ui"
	"github.com/ghodss/yaml"
)

// LoadConfig reads a render configuration from the YAML file in path. Values
// in the file override the defaults; keys that are not set keep their
// default value.
//
//	prompt_prefix:
//	  text: "?"
//	  style: [hi_green, bold]
//	option_index_prefix: space_padded
//	selected_option: [hi_cyan]
func LoadConfig(path string) (ui.RenderConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ui.RenderConfig{}, fmt.Errorf("read config: %w", err)
	}
	cfg := ui.DefaultRenderConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return ui.RenderConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
