package tui

import (
	"context"
	"math/rand/v2"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/session"
)

// viewID selects which screen the model renders.
type viewID int

const (
	viewName viewID = iota
	viewKnows
	viewContext
	viewLoading
	viewQuestion
	viewFeedback
	viewSummary
	viewFailed
)

// Model is the root Bubble Tea model: a short intake flow followed by the
// training session. All session logic lives in the machine; the model
// only renders state and forwards input events.
type Model struct {
	client *content.Client
	disp   *dispatcher
	logger *zap.Logger

	machine *session.Machine

	view   viewID
	width  int
	height int

	nameInput    textinput.Model
	contextInput textinput.Model
	knowsCursor  int // 0 = yes, 1 = no

	// notice carries the latest fault notification, shown until the next
	// screen change.
	notice string

	state  session.SessionState
	busy   bool
	order  []int // display row -> canonical option index
	cursor int

	feedback         content.FeedbackResult
	feedbackFallback bool

	summary string
	final   session.SessionState
}

func newModel(client *content.Client, disp *dispatcher, logger *zap.Logger) Model {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 40
	name.Focus()

	ctx := textinput.New()
	ctx.Placeholder = "e.g. disagreements in code review (optional)"
	ctx.CharLimit = 120

	return Model{
		client:       client,
		disp:         disp,
		logger:       logger,
		view:         viewName,
		nameInput:    name,
		contextInput: ctx,
	}
}

func (m Model) Init() tea.Cmd {
	return m.nameInput.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case faultMsg:
		m.notice = msg.kind.Message()
		return m, nil

	case scenariosLoadedMsg:
		// Counts and view transition arrive with the state snapshot; the
		// fallback flag is all this message adds.
		if msg.usedFallback {
			m.state.UsedFallback = true
		}
		return m, nil

	case feedbackMsg:
		m.feedback = msg.feedback
		m.feedbackFallback = msg.usedFallback
		return m, nil

	case completedMsg:
		m.final = msg.final
		m.summary = msg.summary
		m.view = viewSummary
		return m, nil

	case loadFailedMsg:
		m.notice = msg.kind.Message()
		m.view = viewFailed
		return m, nil

	case stateMsg:
		return m.syncState(msg.state), nil
	}

	return m.updateInputs(msg)
}

// syncState aligns the rendered view with a machine state snapshot.
func (m Model) syncState(s session.SessionState) Model {
	enteredQuestion := s.Phase == session.PhasePresenting &&
		(m.view != viewQuestion || s.Index != m.state.Index)
	m.state = s
	m.busy = false

	switch s.Phase {
	case session.PhasePresenting:
		if enteredQuestion {
			m.order = rand.Perm(len(content.AllKinds))
			m.cursor = 0
			m.notice = ""
		}
		m.view = viewQuestion
	case session.PhaseShowingFeedback:
		m.view = viewFeedback
	case session.PhaseCompleted:
		m.view = viewSummary
	case session.PhaseFailed:
		m.view = viewFailed
	}

	return m
}

func (m Model) updateKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.view {
	case viewName:
		if key == "enter" {
			if m.nameInput.Value() != "" {
				m.view = viewKnows
			}
			return m, nil
		}

	case viewKnows:
		switch key {
		case "up", "down", "k", "j", "tab":
			m.knowsCursor = 1 - m.knowsCursor
			return m, nil
		case "enter":
			m.view = viewContext
			return m, m.contextInput.Focus()
		}
		return m, nil

	case viewContext:
		if key == "enter" {
			return m.startSession()
		}

	case viewQuestion:
		if m.busy {
			return m, nil
		}
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.order)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			m.busy = true
			canonical := m.order[m.cursor]
			return m, m.machineCmd(func(ctx context.Context) {
				// Out-of-range indices cannot come from this UI; the
				// error return exists for other callers.
				_ = m.machine.SelectAnswer(ctx, canonical)
			})
		}
		return m, nil

	case viewFeedback:
		if key == "enter" || key == "space" {
			m.busy = true
			return m, m.machineCmd(func(ctx context.Context) {
				m.machine.Continue(ctx)
			})
		}
		return m, nil

	case viewFailed:
		switch key {
		case "r":
			m.view = viewLoading
			return m, m.machineCmd(func(ctx context.Context) {
				m.machine.RetryLoad(ctx)
			})
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case viewSummary:
		if key == "enter" || key == "q" || key == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// startSession freezes the intake answers into a profile and kicks off
// scenario loading.
func (m Model) startSession() (tea.Model, tea.Cmd) {
	profile := content.UserProfile{
		Name:     m.nameInput.Value(),
		KnowsCNV: m.knowsCursor == 0,
	}
	if v := m.contextInput.Value(); v != "" {
		profile.Answers = append(profile.Answers, v)
	}

	machine, err := session.New(m.client, m.disp, profile, m.logger)
	if err != nil {
		// Unreachable: the name view refuses to advance on empty input.
		return m, tea.Quit
	}
	m.machine = machine
	m.view = viewLoading
	m.notice = ""

	return m, m.machineCmd(func(ctx context.Context) {
		m.machine.Load(ctx)
	})
}

// machineCmd runs a machine call off the update loop and returns a state
// snapshot when it finishes. Presenter events arrive separately through
// the dispatcher.
func (m Model) machineCmd(call func(ctx context.Context)) tea.Cmd {
	machine := m.machine
	return func() tea.Msg {
		call(context.Background())
		return stateMsg{state: machine.State()}
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case viewContext:
		m.contextInput, cmd = m.contextInput.Update(msg)
	}
	return m, cmd
}

// Run starts the training session TUI.
func Run(client *content.Client, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	disp := &dispatcher{}
	p := tea.NewProgram(newModel(client, disp, logger))
	disp.bind(p.Send)

	_, err := p.Run()
	return err
}
