package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/fault"
	"github.com/empatlab/cnvcoach/internal/session"
)

// Messages delivered from the session machine to the Bubble Tea loop.
type (
	// scenariosLoadedMsg only carries the fallback flag; the model reads
	// the scenario data itself from the post-call state snapshot.
	scenariosLoadedMsg struct {
		usedFallback bool
	}

	feedbackMsg struct {
		feedback     content.FeedbackResult
		usedFallback bool
	}

	completedMsg struct {
		final   session.SessionState
		summary string
	}

	faultMsg struct {
		kind fault.Kind
	}

	loadFailedMsg struct {
		kind fault.Kind
	}

	// stateMsg is a post-call snapshot, returned by the command that
	// invoked the machine so the model can sync index/score/phase.
	stateMsg struct {
		state session.SessionState
	}
)

// dispatcher adapts session.Presenter callbacks into Bubble Tea messages.
// Machine calls run inside command goroutines; p.Send delivers their
// events back into the update loop.
type dispatcher struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ session.Presenter = (*dispatcher)(nil)

func (d *dispatcher) bind(send func(tea.Msg)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.send = send
}

func (d *dispatcher) post(msg tea.Msg) {
	d.mu.Lock()
	send := d.send
	d.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (d *dispatcher) ScenariosLoaded(_ []content.Scenario, usedFallback bool) {
	d.post(scenariosLoadedMsg{usedFallback: usedFallback})
}

func (d *dispatcher) FeedbackReady(feedback content.FeedbackResult, usedFallback bool) {
	d.post(feedbackMsg{feedback: feedback, usedFallback: usedFallback})
}

func (d *dispatcher) SessionCompleted(final session.SessionState, summary string) {
	d.post(completedMsg{final: final, summary: summary})
}

func (d *dispatcher) FaultNotice(kind fault.Kind) {
	d.post(faultMsg{kind: kind})
}

func (d *dispatcher) LoadFailed(kind fault.Kind) {
	d.post(loadFailedMsg{kind: kind})
}
