package rules

// File is a decoded rules file.
type File struct {
	Parameters map[string]interface{} `toml:"parameters" yaml:"parameters" json:"parameters"`
	Rules      []Rule                 `toml:"rules" yaml:"rules" json:"rules"`
}

// Rule groups mappings under one description, like a Karabiner rule.
type Rule struct {
	Description string    `toml:"description" yaml:"description" json:"description"`
	Map         []Mapping `toml:"map" yaml:"map" json:"map"`
}

// Mapping is one remapping as written by the user. Modifier fields are kept
// as generic decoded values until Build resolves them.
type Mapping struct {
	From          string      `toml:"from" yaml:"from" json:"from"`
	Modifiers     interface{} `toml:"modifiers" yaml:"modifiers" json:"modifiers"`
	To            string      `toml:"to" yaml:"to" json:"to"`
	ToModifiers   interface{} `toml:"to_modifiers" yaml:"to_modifiers" json:"to_modifiers"`
	ToIfAlone     string      `toml:"to_if_alone" yaml:"to_if_alone" json:"to_if_alone"`
	Shell         string      `toml:"shell" yaml:"shell" json:"shell"`
	FrontmostApps []string    `toml:"frontmost_apps" yaml:"frontmost_apps" json:"frontmost_apps"`
}

// Format identifies a rules file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)
