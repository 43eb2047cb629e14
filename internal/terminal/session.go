package terminal

// Transcript is the ordered list of displayed lines. It only grows, except
// for Reset.
type Transcript struct {
	lines []Line
}

// Append adds lines at the end.
func (t *Transcript) Append(lines ...Line) { t.lines = append(t.lines, lines...) }

// Reset empties the transcript.
func (t *Transcript) Reset() { t.lines = nil }

// Lines returns a copy of the current lines.
func (t *Transcript) Lines() []Line { return append([]Line(nil), t.lines...) }

// Len reports the number of lines.
func (t *Transcript) Len() int { return len(t.lines) }

// Session is one mounted terminal: interpreter state, transcript and the
// host's exit callback. It is not safe for concurrent use; hosts drive it
// from their single event loop.
type Session struct {
	interp     *Interpreter
	state      State
	transcript Transcript
	pending    *Prompt
	onExit     func()
}

// NewSession starts a session with the interpreter's welcome lines and a
// zero State. onExit may be nil.
func NewSession(in *Interpreter, onExit func()) *Session {
	s := &Session{interp: in, onExit: onExit}
	s.transcript.Append(in.Welcome()...)
	return s
}

// Submit evaluates raw synchronously, asking ask when a password is needed.
func (s *Session) Submit(raw string, ask Prompter) Result {
	if s.pending != nil {
		return Result{State: s.state}
	}
	res := s.interp.Execute(raw, s.state, ask)
	s.apply(res)
	return res
}

// Begin evaluates raw for hosts that cannot block. When a password is
// needed the lines emitted so far are recorded and the prompt is returned;
// call Answer to finish. Input is ignored while a prompt is pending.
func (s *Session) Begin(raw string) *Prompt {
	if s.pending != nil {
		return s.pending
	}
	res := s.interp.Eval(raw, s.state)
	if res.Prompt == nil {
		s.apply(res)
		return nil
	}
	s.transcript.Append(res.Lines...)
	s.pending = res.Prompt
	return res.Prompt
}

// Answer resolves the pending prompt. It is a no-op without one.
func (s *Session) Answer(answer string, ok bool) Result {
	if s.pending == nil {
		return Result{State: s.state}
	}
	p := s.pending
	s.pending = nil
	res := s.interp.Resume(p, answer, ok)
	s.apply(res)
	return res
}

// Pending returns the prompt awaiting an answer, if any.
func (s *Session) Pending() *Prompt { return s.pending }

func (s *Session) apply(res Result) {
	s.state = res.State
	switch res.Signal {
	case SignalClear:
		s.transcript.Reset()
		return
	case SignalExit:
		s.transcript.Append(res.Lines...)
		if s.onExit != nil {
			s.onExit()
		}
		return
	}
	s.transcript.Append(res.Lines...)
}

// Lines returns the transcript lines.
func (s *Session) Lines() []Line { return s.transcript.Lines() }

// State returns the current interpreter state.
func (s *Session) State() State { return s.state }

// Interpreter returns the session's interpreter.
func (s *Session) Interpreter() *Interpreter { return s.interp }
