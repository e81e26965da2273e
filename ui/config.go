package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// IndexPrefix controls how an option's 1-based ordinal is rendered ahead of
// its value.
type IndexPrefix int

//go:generate stringer -type IndexPrefix -trimprefix IndexPrefix

// Index prefix modes.
const (
	IndexPrefixNone        IndexPrefix = iota // No index
	IndexPrefixSimple                         // "7)"
	IndexPrefixSpacePadded                    // "  7)"
	IndexPrefixZeroPadded                     // "007)"
)

// MarshalJSON encodes the mode as snake case, for example "space_padded".
func (p IndexPrefix) MarshalJSON() ([]byte, error) {
	return json.Marshal(snakeCase(p.String()))
}

// UnmarshalJSON decodes a mode from its name. Both "space_padded" and
// "SpacePadded" are accepted.
func (p *IndexPrefix) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return fmt.Errorf("index prefix must be a string: %w", err)
	}
	v, err := ParseIndexPrefix(name)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseIndexPrefix returns the index prefix mode with the given name,
// ignoring case and underscores.
func ParseIndexPrefix(name string) (IndexPrefix, error) {
	want := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	for v := IndexPrefixNone; v <= IndexPrefixZeroPadded; v++ {
		if strings.ToLower(v.String()) == want {
			return v, nil
		}
	}
	return IndexPrefixNone, fmt.Errorf("unknown index prefix %q", name)
}

func snakeCase(s string) string {
	var out strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		out.WriteRune(r)
	}
	return out.String()
}

// ErrorMessageConfig configures how validation errors are rendered.
type ErrorMessageConfig struct {
	Prefix         Styled `json:"prefix"`
	Separator      Styles `json:"separator,omitempty"`
	Message        Styles `json:"message,omitempty"`
	DefaultMessage string `json:"default_message"`
}

// RenderConfig is the bundle of style descriptors and literal spans the
// Backend renders prompts with. A RenderConfig is treated as read-only once
// handed to a Backend.
type RenderConfig struct {
	PromptPrefix            Styled `json:"prompt_prefix"`
	AnsweredPromptPrefix    Styled `json:"answered_prompt_prefix"`
	HighlightedOptionPrefix Styled `json:"highlighted_option_prefix"`
	ScrollUpPrefix          Styled `json:"scroll_up_prefix"`
	ScrollDownPrefix        Styled `json:"scroll_down_prefix"`
	SelectedCheckbox        Styled `json:"selected_checkbox"`
	UnselectedCheckbox      Styled `json:"unselected_checkbox"`
	CanceledPromptIndicator Styled `json:"canceled_prompt_indicator"`

	OptionIndexPrefix IndexPrefix `json:"option_index_prefix"`

	Prompt       Styles `json:"prompt,omitempty"`
	DefaultValue Styles `json:"default_value,omitempty"`
	Placeholder  Styles `json:"placeholder,omitempty"`
	TextInput    Styles `json:"text_input,omitempty"`
	Answer       Styles `json:"answer,omitempty"`
	HelpMessage  Styles `json:"help_message,omitempty"`
	Option       Styles `json:"option,omitempty"`

	// SelectedOption styles the option under the cursor. When empty the
	// cursor row uses the Option style and checkboxes keep their own style.
	SelectedOption Styles `json:"selected_option,omitempty"`

	ErrorMessage ErrorMessageConfig `json:"error_message"`
}

// EmptyRenderConfig returns a configuration with the default glyphs and no
// styling at all.
func EmptyRenderConfig() RenderConfig {
	return RenderConfig{
		PromptPrefix:            NewStyled("?"),
		AnsweredPromptPrefix:    NewStyled(">"),
		HighlightedOptionPrefix: NewStyled(">"),
		ScrollUpPrefix:          NewStyled("^"),
		ScrollDownPrefix:        NewStyled("v"),
		SelectedCheckbox:        NewStyled("[x]"),
		UnselectedCheckbox:      NewStyled("[ ]"),
		CanceledPromptIndicator: NewStyled("<canceled>"),
		OptionIndexPrefix:       IndexPrefixNone,
		ErrorMessage: ErrorMessageConfig{
			Prefix:         NewStyled("#"),
			DefaultMessage: "Invalid input.",
		},
	}
}

// DefaultRenderConfig returns the colored configuration used unless another
// one is set with SetConfiguration.
func DefaultRenderConfig() RenderConfig {
	c := EmptyRenderConfig()
	c.PromptPrefix = c.PromptPrefix.WithStyle(HiGreen)
	c.AnsweredPromptPrefix = c.AnsweredPromptPrefix.WithStyle(HiGreen)
	c.HighlightedOptionPrefix = c.HighlightedOptionPrefix.WithStyle(HiCyan)
	c.SelectedCheckbox = c.SelectedCheckbox.WithStyle(HiGreen)
	c.CanceledPromptIndicator = c.CanceledPromptIndicator.WithStyle(Red)
	c.Placeholder = Styles{HiBlack}
	c.HelpMessage = Styles{Cyan}
	c.Answer = Styles{Cyan}
	c.SelectedOption = Styles{HiCyan}
	c.ErrorMessage.Prefix = c.ErrorMessage.Prefix.WithStyle(HiRed)
	c.ErrorMessage.Message = Styles{HiRed}
	return c
}

// clone returns a deep copy so that callers cannot modify the stored
// configuration through shared slices.
func (c RenderConfig) clone() RenderConfig {
	spans := []*Styled{
		&c.PromptPrefix, &c.AnsweredPromptPrefix, &c.HighlightedOptionPrefix,
		&c.ScrollUpPrefix, &c.ScrollDownPrefix, &c.SelectedCheckbox,
		&c.UnselectedCheckbox, &c.CanceledPromptIndicator, &c.ErrorMessage.Prefix,
	}
	for _, s := range spans {
		s.Style = s.Style.clone()
	}
	styles := []*Styles{
		&c.Prompt, &c.DefaultValue, &c.Placeholder, &c.TextInput, &c.Answer,
		&c.HelpMessage, &c.Option, &c.SelectedOption,
		&c.ErrorMessage.Separator, &c.ErrorMessage.Message,
	}
	for _, s := range styles {
		*s = s.clone()
	}
	return c
}

var (
	globalMu     sync.Mutex
	globalConfig *RenderConfig
)

// Configuration returns a copy of the process-wide render configuration. The
// default configuration is used until SetConfiguration is called.
//
// Backends take a snapshot at construction, so a later SetConfiguration has
// no effect on a prompt that is already running.
func Configuration() RenderConfig {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		c := DefaultRenderConfig()
		globalConfig = &c
	}
	return globalConfig.clone()
}

// SetConfiguration replaces the process-wide render configuration.
func SetConfiguration(c RenderConfig) {
	c = c.clone()
	globalMu.Lock()
	globalConfig = &c
	globalMu.Unlock()
}
