package terminal

// Config is the data behind a terminal: vocabulary, logs and passwords.
// It is loaded from the story file; zero fields fall back to DefaultConfig.
type Config struct {
	Welcome  []string        `yaml:"welcome" json:"welcome"`
	Help     []string        `yaml:"help" json:"help"`
	Commands []CommandConfig `yaml:"commands,omitempty" json:"commands,omitempty"`
	Logs     []LogEntry      `yaml:"logs" json:"logs"`
	LogGate  GateConfig      `yaml:"log_gate" json:"log_gate"`
	// Dossier enables `unlock dossier` when Secret is set.
	Dossier  GateConfig `yaml:"dossier,omitempty" json:"dossier,omitempty"`
	Messages Messages   `yaml:"messages,omitempty" json:"messages,omitempty"`
}

// CommandConfig is an extra fixed-output command.
type CommandConfig struct {
	Name  string   `yaml:"name" json:"name" jsonschema:"required"`
	Lines []string `yaml:"lines" json:"lines"`
}

// GateConfig describes a password prompt and its outcomes.
type GateConfig struct {
	Prompt  string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	Secret  string `yaml:"secret,omitempty" json:"secret,omitempty"`
	Granted string `yaml:"granted,omitempty" json:"granted,omitempty"`
	Denied  string `yaml:"denied,omitempty" json:"denied,omitempty"`
}

// Messages are the fixed replies of the dispatcher itself.
type Messages struct {
	NotFound     string `yaml:"not_found,omitempty" json:"not_found,omitempty"`
	Unrecognized string `yaml:"unrecognized,omitempty" json:"unrecognized,omitempty"`
}

// DefaultConfig is the stock terminal from the dossier.
func DefaultConfig() Config {
	return Config{
		Welcome: []string{
			"Welcome to Treat's Terminal.",
			"Type `help` to see available commands.",
		},
		Help: []string{
			"`help` - List commands",
			"`logs` - List available logs",
			"`access log [id]` - View specific memory log (e.g. access log 001)",
			"`access memories` - Recall what is left",
			"`unlock dossier` - Open restricted dossier sections",
			"`clear` - Clear terminal",
			"`exit` - Return to menu",
		},
		Commands: []CommandConfig{
			{
				Name:  "access memories",
				Lines: []string{"Fragments only. A name, a muzzle, a promise to make it right this time."},
			},
		},
		Logs: []LogEntry{
			{ID: "001", Label: "TEXT.LOG.001", Text: `TEXT.LOG.001: "Where did they go...Where am I...Who...Are you..?"`},
			{ID: "009", Label: "TEXT.LOG.009", Text: `TEXT.LOG.009: "W-What are you doing? Back off! Get the FUCK away from me you fuck!"`},
			{ID: "023", Label: "TEXT.LOG.023", Text: `TEXT.LOG.023: "...Who are you...? Where am I...? Who...-"`},
			{ID: "02%", Label: "TEXT.LOG.02%", Glitch: "AM I?", Format: `TEXT.LOG.02%%: "%s"`, Gated: true},
		},
		LogGate: GateConfig{
			Prompt: "Access restricted. Enter password:",
			Secret: "kernel.404",
			Denied: "Nice try.",
		},
		Dossier: GateConfig{
			Prompt:  "Dossier sealed. Enter passphrase:",
			Secret:  "dead.link",
			Granted: "Dossier Unlocked.",
			Denied:  "Access Denied.",
		},
		Messages: Messages{
			NotFound:     "Log not found.",
			Unrecognized: "Unrecognized command.",
		},
	}
}

// withDefaults fills blank fields from DefaultConfig. Lists are only
// replaced when nil so an explicit empty list stays empty.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Welcome == nil {
		c.Welcome = d.Welcome
	}
	if c.Help == nil {
		c.Help = d.Help
	}
	if c.Logs == nil {
		c.Logs = d.Logs
	}
	if c.LogGate.Prompt == "" {
		c.LogGate.Prompt = d.LogGate.Prompt
	}
	if c.LogGate.Secret == "" {
		c.LogGate.Secret = d.LogGate.Secret
	}
	if c.LogGate.Denied == "" {
		c.LogGate.Denied = d.LogGate.Denied
	}
	if c.Dossier.Secret != "" {
		if c.Dossier.Prompt == "" {
			c.Dossier.Prompt = d.Dossier.Prompt
		}
		if c.Dossier.Granted == "" {
			c.Dossier.Granted = d.Dossier.Granted
		}
		if c.Dossier.Denied == "" {
			c.Dossier.Denied = d.Dossier.Denied
		}
	}
	if c.Messages.NotFound == "" {
		c.Messages.NotFound = d.Messages.NotFound
	}
	if c.Messages.Unrecognized == "" {
		c.Messages.Unrecognized = d.Messages.Unrecognized
	}
	return c
}
