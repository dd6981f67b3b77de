package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"marlow-cli/internal/schedule"
	"marlow-cli/internal/store"
	"marlow-cli/internal/views"
)

type view int

const (
	viewOverview view = iota
	viewClients
	viewCalendar
	viewSchedule
)

var viewNames = []string{"Overview", "Clients", "Calendar", "Schedule"}

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	view view

	clientsList  list.Model
	scheduleList list.Model

	// Calendar cursor: first of the displayed month.
	calYear  int
	calMonth time.Month

	// Rolling window preset for the schedule view.
	windowDays int
}

func newAppModel(s store.Store, db *store.DB) appModel {
	now := time.Now()
	m := appModel{
		store:      s,
		db:         db,
		view:       viewOverview,
		calYear:    now.Year(),
		calMonth:   now.Month(),
		windowDays: 30,
	}
	m.clientsList = newList("Clients", "client")
	m.scheduleList = newList("Schedule", "entry")
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) refresh() {
	counts := views.CountsByClient(m.db.Events)
	clientItems := make([]list.Item, 0, len(m.db.Clients))
	for _, c := range m.db.Clients {
		clientItems = append(clientItems, clientRow{
			client:  c,
			entries: counts[c.ID],
			active:  c.ID == m.db.ActiveClientID,
		})
	}
	m.clientsList.SetItems(clientItems)

	entries := views.Schedule(m.db.Clients, m.db.Events, m.windowDays)
	entryItems := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		entryItems = append(entryItems, entryRow{entry: e})
	}
	m.scheduleList.SetItems(entryItems)
}

func (m *appModel) reload() {
	if db, err := m.store.Load(); err == nil {
		m.db = db
	}
	m.refresh()
}

func (m *appModel) resizeLists() {
	h := m.height - 4 // tab bar + help line
	if h < 3 {
		h = 3
	}
	m.clientsList.SetSize(m.width, h)
	m.scheduleList.SetSize(m.width, h)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			// Pick up changes made by CLI commands in another terminal.
			m.reload()
			return m, nil
		case "tab":
			m.view = (m.view + 1) % view(len(viewNames))
			return m, nil
		case "shift+tab":
			m.view = (m.view + view(len(viewNames)) - 1) % view(len(viewNames))
			return m, nil
		}

		switch m.view {
		case viewCalendar:
			switch msg.String() {
			case "left", "h":
				m.calYear, m.calMonth = prevMonth(m.calYear, m.calMonth)
				return m, nil
			case "right", "l":
				m.calYear, m.calMonth = nextMonth(m.calYear, m.calMonth)
				return m, nil
			case "t":
				now := time.Now()
				m.calYear, m.calMonth = now.Year(), now.Month()
				return m, nil
			}
		case viewSchedule:
			if i := presetIndex(msg.String()); i >= 0 {
				m.windowDays = schedule.WindowPresets[i]
				m.refresh()
				return m, nil
			}
			var cmd tea.Cmd
			m.scheduleList, cmd = m.scheduleList.Update(msg)
			return m, cmd
		case viewClients:
			var cmd tea.Cmd
			m.clientsList, cmd = m.clientsList.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewOverview:
		body = m.viewOverview()
	case viewClients:
		body = m.clientsList.View()
	case viewCalendar:
		grid, days := views.Month(m.db.Clients, m.db.Events, m.calYear, m.calMonth)
		body = renderCalendar(m.width, m.calYear, m.calMonth, grid, days)
	case viewSchedule:
		body = m.viewScheduleHeader() + "\n" + m.scheduleList.View()
	}
	return m.tabBar() + "\n" + body + "\n" + m.helpLine()
}

func (m appModel) tabBar() string {
	tabs := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.view {
			tabs = append(tabs, styleTabActive.Render(name))
		} else {
			tabs = append(tabs, styleTab.Render(name))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m appModel) viewOverview() string {
	totals := views.ComputeTotals(m.db.Clients, m.db.Events)
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		styleHeader.Render(fmt.Sprintf("Clients %d", totals.Clients)),
		styleHeader.Render(fmt.Sprintf("Entries %d", totals.Events)),
		styleHeader.Render(fmt.Sprintf("Today %d", totals.TodayCount)),
	)
	b.WriteString(styleHeader.Render("Today"))
	b.WriteString("\n")
	today := views.Today(m.db.Clients, m.db.Events)
	if len(today) == 0 {
		b.WriteString(styleMuted.Render("No entries today."))
		b.WriteString("\n")
	}
	for _, e := range today {
		slot := "all day"
		if !e.AllDay && e.Time != "" {
			slot = e.Time
		}
		fmt.Fprintf(&b, "%s %s · %s  %s %s\n",
			clientStyle(e.ClientColor).Render("●"),
			e.ClientName, e.Title,
			styleMuted.Render(slot),
			phaseStyle(e.Phase).Render(string(e.Phase)),
		)
	}
	return b.String()
}

func (m appModel) viewScheduleHeader() string {
	labels := []string{"1:week", "2:2wk", "3:month", "4:3mo", "5:6mo", "6:all"}
	for i, days := range schedule.WindowPresets {
		if days == m.windowDays {
			labels[i] = styleTabActive.Render(labels[i])
		} else {
			labels[i] = styleMuted.Render(labels[i])
		}
	}
	return strings.Join(labels, " ")
}

func (m appModel) helpLine() string {
	help := "tab: switch view · r: reload · q: quit"
	if m.view == viewCalendar {
		help = "←/→: month · t: today · " + help
	}
	if m.view == viewSchedule {
		help = "1-6: window · " + help
	}
	return styleHelp.Render(help)
}

func presetIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '6' {
		return int(key[0] - '1')
	}
	return -1
}

func prevMonth(y int, m time.Month) (int, time.Month) {
	if m == time.January {
		return y - 1, time.December
	}
	return y, m - 1
}

func nextMonth(y int, m time.Month) (int, time.Month) {
	if m == time.December {
		return y + 1, time.January
	}
	return y, m + 1
}
