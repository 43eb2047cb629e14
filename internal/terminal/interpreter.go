package terminal

import (
	"math/rand/v2"
	"strings"

	clog "github.com/charmbracelet/log"

	"dossier/internal/system"
)

const accessLogPrefix = "access log "

// State is the interpreter state owned by the caller. A new terminal
// session starts from the zero value.
type State struct {
	// Unlocked opens gated logs.
	Unlocked bool
	// DossierUnlocked is set by `unlock dossier`.
	DossierUnlocked bool
}

// Result is the outcome of one evaluation.
type Result struct {
	Lines  []Line
	State  State
	Signal Signal
	// Prompt is set when dispatch is waiting on a password. Lines then hold
	// only what was emitted before the question.
	Prompt *Prompt
}

// Prompt is a suspended dispatch waiting for a secret.
type Prompt struct {
	Message string

	state State
	entry *LogEntry
	gate  *Gate
}

// Prompter asks the user for a secret. ok=false means the user cancelled.
type Prompter interface {
	PromptSecret(message string) (answer string, ok bool)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(message string) (string, bool)

func (f PrompterFunc) PromptSecret(message string) (string, bool) { return f(message) }

// Interpreter evaluates terminal input against a command table and a log
// registry. It holds no per-session state.
type Interpreter struct {
	table   *Table
	logs    *Registry
	welcome []string
	msgs    Messages
	rng     *rand.Rand
	logger  *clog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithRand sets the random source used for glitch text.
func WithRand(rng *rand.Rand) Option {
	return func(in *Interpreter) { in.rng = rng }
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *clog.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// New builds an interpreter from cfg with the builtin commands help, logs,
// clear, exit and, when a dossier secret is configured, unlock dossier.
func New(cfg Config, opts ...Option) (*Interpreter, error) {
	cfg = cfg.withDefaults()
	logs, err := NewRegistry(cfg.Logs, cfg.LogGate)
	if err != nil {
		return nil, err
	}
	cmds := []Command{
		{Name: "help", Response: FixedLines(cfg.Help)},
		{Name: "logs", Response: FixedLines(logs.Labels())},
	}
	for _, c := range cfg.Commands {
		cmds = append(cmds, Command{Name: c.Name, Response: FixedLines(c.Lines)})
	}
	if cfg.Dossier.Secret != "" {
		cmds = append(cmds, Command{Name: "unlock dossier", Response: unlockDossier(cfg.Dossier)})
	}
	cmds = append(cmds,
		Command{Name: "clear", Response: Action(func() ActionResult { return ActionResult{Signal: SignalClear} })},
		Command{Name: "exit", Response: Action(func() ActionResult { return ActionResult{Signal: SignalExit} })},
	)
	table, err := NewTable(cmds...)
	if err != nil {
		return nil, err
	}
	in := &Interpreter{
		table:   table,
		logs:    logs,
		welcome: cfg.Welcome,
		msgs:    cfg.Messages,
		logger:  system.Logger,
	}
	for _, o := range opts {
		o(in)
	}
	if in.rng == nil {
		in.rng = newRand()
	}
	return in, nil
}

func unlockDossier(g GateConfig) Action {
	return func() ActionResult {
		return ActionResult{Gate: &Gate{
			Prompt:  g.Prompt,
			Secret:  g.Secret,
			Granted: []string{g.Granted},
			Denied:  []string{g.Denied},
			Grant:   func(s *State) { s.DossierUnlocked = true },
		}}
	}
}

// Commands lists the command vocabulary in table order.
func (in *Interpreter) Commands() []string { return in.table.Names() }

// LogIDs lists the ids accepted by "access log".
func (in *Interpreter) LogIDs() []string { return in.logs.IDs() }

// Welcome returns the lines a fresh transcript starts with.
func (in *Interpreter) Welcome() []Line {
	out := make([]Line, 0, len(in.welcome))
	for _, s := range in.welcome {
		out = append(out, Line{Text: s, Kind: Welcome})
	}
	return out
}

// Rand exposes the glitch random source so hosts can re-roll lines.
func (in *Interpreter) Rand() *rand.Rand { return in.rng }

// Eval runs one line of input. Empty input yields a zero Result carrying st.
func (in *Interpreter) Eval(raw string, st State) Result {
	cmd := Normalize(raw)
	if cmd == "" {
		return Result{State: st}
	}
	echo := echoLine(cmd)

	if strings.HasPrefix(cmd, accessLogPrefix) {
		return in.accessLog(cmd, echo, st)
	}
	if resp, ok := in.table.Lookup(cmd); ok {
		in.logger.Debug("dispatch", "cmd", cmd)
		return in.respond(resp.respond(), echo, st)
	}
	in.logger.Debug("unrecognized", "cmd", cmd)
	return Result{Lines: []Line{echo, plain(in.msgs.Unrecognized)}, State: st}
}

func (in *Interpreter) accessLog(cmd string, echo Line, st State) Result {
	var id string
	if fields := strings.Fields(cmd); len(fields) > 2 {
		id = fields[2]
	}
	e, ok := in.logs.Lookup(id)
	if !ok {
		in.logger.Debug("log not found", "id", id)
		return Result{Lines: []Line{echo, plain(in.msgs.NotFound)}, State: st}
	}
	if e.Gated && !st.Unlocked {
		in.logger.Debug("log gated", "id", id)
		return Result{
			Lines:  []Line{echo},
			State:  st,
			Prompt: &Prompt{Message: in.logs.Gate().Prompt, state: st, entry: &e},
		}
	}
	return Result{Lines: []Line{echo, in.logs.Render(e, in.rng)}, State: st}
}

func (in *Interpreter) respond(ar ActionResult, echo Line, st State) Result {
	if ar.Signal == SignalClear {
		// clearing also drops the echo of the clear itself
		return Result{State: st, Signal: SignalClear}
	}
	res := Result{
		Lines:  append([]Line{echo}, plainLines(ar.Lines)...),
		State:  st,
		Signal: ar.Signal,
	}
	if ar.Gate != nil {
		res.Prompt = &Prompt{Message: ar.Gate.Prompt, state: st, gate: ar.Gate}
	}
	return res
}

// Resume completes a dispatch suspended on p. The returned lines follow
// the ones already emitted by Eval. A wrong answer or a cancellation leaves
// the state untouched.
func (in *Interpreter) Resume(p *Prompt, answer string, ok bool) Result {
	if p == nil {
		return Result{}
	}
	st := p.state
	switch {
	case p.entry != nil:
		if ok && answer == in.logs.Gate().Secret {
			st.Unlocked = true
			in.logger.Debug("log gate opened", "id", p.entry.ID)
			return Result{Lines: []Line{in.logs.Render(*p.entry, in.rng)}, State: st}
		}
		in.logger.Debug("log gate denied", "id", p.entry.ID, "cancelled", !ok)
		return Result{Lines: []Line{plain(in.logs.Gate().Denied)}, State: st}
	case p.gate != nil:
		if ok && answer == p.gate.Secret {
			if p.gate.Grant != nil {
				p.gate.Grant(&st)
			}
			in.logger.Debug("gate opened")
			return Result{Lines: plainLines(p.gate.Granted), State: st}
		}
		in.logger.Debug("gate denied", "cancelled", !ok)
		return Result{Lines: plainLines(p.gate.Denied), State: st}
	}
	return Result{State: st}
}

// Execute evaluates raw and, if a password is needed, asks ask right away.
// A nil ask counts as a cancelled prompt.
func (in *Interpreter) Execute(raw string, st State, ask Prompter) Result {
	res := in.Eval(raw, st)
	if res.Prompt == nil {
		return res
	}
	var answer string
	var ok bool
	if ask != nil {
		answer, ok = ask.PromptSecret(res.Prompt.Message)
	}
	next := in.Resume(res.Prompt, answer, ok)
	return Result{
		Lines:  append(res.Lines, next.Lines...),
		State:  next.State,
		Signal: res.Signal,
	}
}
