package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jjunho/lunar-year/internal/domain"
	"github.com/jjunho/lunar-year/internal/ports"
)

type cycleItem struct {
	ordinal int
	han     string
	display string
}

func (i cycleItem) Title() string       { return fmt.Sprintf("%2d  %s", i.ordinal, i.han) }
func (i cycleItem) Description() string { return i.display }
func (i cycleItem) FilterValue() string { return i.display + " " + i.han }

type model struct {
	theme Theme
	deps  Deps

	langs   []domain.Language
	langIdx int
	entries list.Model
}

func Run(deps Deps) error {
	m, err := newModel(deps)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(deps Deps) (model, error) {
	langs := domain.Languages()
	langIdx := 0
	for i, l := range langs {
		if l == deps.Language {
			langIdx = i
		}
	}

	items, err := buildItems(deps.Catalog, langs[langIdx])
	if err != nil {
		return model{}, err
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sexagenary cycle"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		langs:   langs,
		langIdx: langIdx,
		entries: l,
	}

	// Start on the entry of the requested year when it is in range.
	if pos, rerr := domain.Resolve(deps.Year); rerr == nil {
		m.entries.Select(pos.Ordinal - 1)
	}

	return m, nil
}

func buildItems(catalog ports.NameCatalog, lang domain.Language) ([]list.Item, error) {
	items := make([]list.Item, 0, domain.CycleLength)
	for ordinal := 1; ordinal <= domain.CycleLength; ordinal++ {
		pos, err := domain.PositionForOrdinal(ordinal)
		if err != nil {
			return nil, err
		}

		name, err := catalog.Localize(pos, lang)
		if err != nil {
			return nil, err
		}

		items = append(items, cycleItem{ordinal: ordinal, han: name.Han, display: name.Display})
	}
	return items, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.entries.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if m.entries.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab", "right":
			return m.switchLanguage(1)

		case "shift+tab", "left":
			return m.switchLanguage(-1)
		}
	}

	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)
	return m, cmd
}

func (m model) switchLanguage(step int) (tea.Model, tea.Cmd) {
	n := len(m.langs)
	m.langIdx = (m.langIdx + step + n) % n
	lang := m.langs[m.langIdx]

	items, err := buildItems(m.deps.Catalog, lang)
	if err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Error("tui.switch_language", "language", string(lang), "err", err.Error())
		}
		return m, nil
	}

	selected := m.entries.Index()
	cmd := m.entries.SetItems(items)
	m.entries.Select(selected)

	if m.deps.Logger != nil {
		m.deps.Logger.Debug("tui.switch_language", "language", string(lang))
	}
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	lang := m.langs[m.langIdx]

	header := m.theme.Title.Render("Lunar Year") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("60-year cycle — %s (%s)", lang.LongName(), lang)) + "\n"
	help := m.theme.Help.Render("tab/→ next language · shift+tab/← previous · / filter · q quit")

	return wrap.Render(header + "\n" + m.entries.View() + "\n\n" + help)
}
