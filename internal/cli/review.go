package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mealweek/mealweek/internal/cli/formatter"
	"github.com/mealweek/mealweek/internal/domain"
)

// reviewKeyMap defines the key bindings of the plan review screen.
type reviewKeyMap struct {
	Accept    key.Binding
	Reshuffle key.Binding
	Quit      key.Binding
}

func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Reshuffle, k.Quit}
}

func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Accept, k.Reshuffle, k.Quit}}
}

var reviewKeys = reviewKeyMap{
	Accept:    key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a/enter", "accept")),
	Reshuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reshuffle")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "discard")),
}

// reviewModel shows a generated plan and lets the user accept it,
// reshuffle with the next seed, or discard it.
type reviewModel struct {
	plan     *domain.Plan
	seed     int64
	generate func(seed int64) (*domain.Plan, error)

	help     help.Model
	accepted bool
	err      error
}

func newReviewModel(plan *domain.Plan, generate func(seed int64) (*domain.Plan, error)) reviewModel {
	return reviewModel{
		plan:     plan,
		seed:     plan.Seed,
		generate: generate,
		help:     help.New(),
	}
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, reviewKeys.Accept):
		m.accepted = true
		return m, tea.Quit

	case key.Matches(keyMsg, reviewKeys.Reshuffle):
		m.seed++
		plan, err := m.generate(m.seed)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.plan = plan
		return m, nil

	case key.Matches(keyMsg, reviewKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m reviewModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("reshuffle failed: "+m.err.Error()) + "\n"
	}
	return formatter.FormatPlan(m.plan) + "\n" + m.help.View(reviewKeys) + "\n"
}

// runPlanReview runs the interactive review loop. It returns the plan
// the user accepted, or nil if they discarded it.
func runPlanReview(ctx context.Context, app *App, cfg domain.WeekConfig, plan *domain.Plan) (*domain.Plan, error) {
	generate := func(seed int64) (*domain.Plan, error) {
		next := cfg
		next.Seed = seed
		return app.Plans.Generate(ctx, next)
	}

	final, err := tea.NewProgram(newReviewModel(plan, generate)).Run()
	if err != nil {
		return nil, fmt.Errorf("running plan review: %w", err)
	}

	m := final.(reviewModel)
	if m.err != nil {
		return nil, m.err
	}
	if !m.accepted {
		return nil, nil
	}
	return m.plan, nil
}
