package output

// PlanResult is the output of the `plan` command.
type PlanResult struct {
	Workspace  string   `yaml:"workspace,omitempty"   json:"workspace,omitempty"`
	Focused    int64    `yaml:"focused,omitempty"     json:"focused,omitempty"`
	MainColumn int64    `yaml:"main_column,omitempty" json:"main_column,omitempty"`
	Commands   []string `yaml:"commands"              json:"commands"`
	Error      string   `yaml:"error,omitempty"       json:"error,omitempty"`
}
