package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leetterm/api"
	"leetterm/config"
	"leetterm/keys"
	"leetterm/log"
	"leetterm/ui"
	"leetterm/ui/overlay"
	"leetterm/util"
	"leetterm/workspace"
)

// pageSize is how many problems are fetched per page of the list.
const pageSize = 50

// Run is the main entrypoint into the application.
func Run(ctx context.Context, session, csrf string) error {
	p := tea.NewProgram(
		newHome(ctx, session, csrf),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse scroll
	)
	_, err := p.Run()
	return err
}

type state int

const (
	// stateHome is the problem list.
	stateHome state = iota
	// stateDetail is the tabbed problem view.
	stateDetail
	// stateResult is the run/submit result screen.
	stateResult
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// stateConfirm is the state when a confirmation modal is displayed.
	stateConfirm
	// stateSearch is the state when the search input is displayed.
	stateSearch
	// stateFavorites is the state when the favorites list selector is displayed.
	stateFavorites
	// stateNewList is the state when naming a new favorites list.
	stateNewList
	// stateSettingsSession and stateSettingsCSRF are the two steps of the
	// settings/setup flow.
	stateSettingsSession
	stateSettingsCSRF
)

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores persistent application state like seen help screens
	appState config.AppState
	// client talks to the problem service
	client *api.Client

	// -- State --

	// state is the current discrete state of the application
	state state
	// returnState is where overlay states return to on dismissal
	returnState state

	// detail is the currently open problem, nil while loading
	detail *api.QuestionDetail

	// active list filters
	difficulty string
	search     string
	hideSolved bool

	// loadingMore guards against duplicate page fetches
	loadingMore bool

	// pendingSession holds the session cookie between the two settings steps
	pendingSession string
	// browsingFavorites is true when the favorites overlay is browsing lists
	// rather than picking one to add a problem to
	browsingFavorites bool
	// pendingCmd stores a command to be executed after confirmation
	pendingCmd tea.Cmd

	// -- UI Components --

	// statusBar is the top row with user info and activity messages
	statusBar *ui.StatusBar
	// list displays the problem list
	list *ui.HomePane
	// tabbedWindow displays the description, code and hints panes
	tabbedWindow *ui.TabbedWindow
	// resultPane displays run/submit results
	resultPane *ui.ResultPane
	// errBox displays error messages
	errBox *ui.ErrBox
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model

	textOverlay         *overlay.TextOverlay
	inputOverlay        *overlay.TextInputOverlay
	listOverlay         *overlay.ListSelectorOverlay
	confirmationOverlay *overlay.ConfirmationOverlay

	width  int
	height int
}

func newHome(ctx context.Context, session, csrf string) *home {
	appConfig, configExisted := config.LoadConfig()
	appState := config.LoadState()

	// Flags override the stored credentials.
	if session != "" {
		appConfig.Session = session
	}
	if csrf != "" {
		appConfig.CSRFToken = csrf
	}

	h := &home{
		ctx:          ctx,
		appConfig:    appConfig,
		appState:     appState,
		client:       api.NewClient(appConfig.Session, appConfig.CSRFToken),
		spinner:      spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		statusBar:    ui.NewStatusBar(),
		list:         ui.NewHomePane(),
		tabbedWindow: ui.NewTabbedWindow(ui.NewDescriptionPane(), ui.NewCodePane(), ui.NewHintsPane()),
		resultPane:   ui.NewResultPane(),
		errBox:       ui.NewErrBox(),
		state:        stateHome,
	}

	if !configExisted {
		// First run: walk the user through entering credentials. Browsing
		// works without them, so this can be escaped out of.
		h.openSettings(stateHome)
	}

	return h
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchProblemsCmd(0, false),
		m.fetchUserCmd(),
	)
}

// -- Messages --

type problemsLoadedMsg struct {
	problems []api.ProblemSummary
	total    int
	appended bool
	err      error
}

type detailLoadedMsg struct {
	detail *api.QuestionDetail
	err    error
}

type userLoadedMsg struct {
	username string
	stats    *api.UserStats
}

type favoritesLoadedMsg struct {
	lists []api.FavoriteList
	// forAdd is the problem waiting to be added; nil means browsing.
	forAdd *api.ProblemSummary
	err    error
}

type favoriteUpdatedMsg struct {
	message string
	err     error
}

type judgeResultMsg struct {
	resp *api.CheckResponse
	kind ui.ResultKind
	err  error
}

type editorFinishedMsg struct {
	path string
	err  error
}

type hideErrMsg struct{}

// -- Commands --

func (m *home) fetchProblemsCmd(skip int, appended bool) tea.Cmd {
	client, ctx := m.client, m.ctx
	difficulty, search := m.difficulty, m.search
	return func() tea.Msg {
		problems, total, err := client.FetchProblems(ctx, pageSize, skip, difficulty, search)
		return problemsLoadedMsg{problems: problems, total: total, appended: appended, err: err}
	}
}

func (m *home) fetchDetailCmd(slug string) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		detail, err := client.FetchProblemDetail(ctx, slug)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *home) fetchUserCmd() tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		username := client.FetchUsername(ctx)
		if username == "" {
			return userLoadedMsg{}
		}
		stats, err := client.FetchUserStats(ctx, username)
		if err != nil {
			log.WarningLog.Printf("failed to fetch user stats: %v", err)
			return userLoadedMsg{username: username}
		}
		return userLoadedMsg{username: username, stats: stats}
	}
}

func (m *home) fetchFavoritesCmd(forAdd *api.ProblemSummary) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		lists, err := client.FetchFavorites(ctx)
		return favoritesLoadedMsg{lists: lists, forAdd: forAdd, err: err}
	}
}

func (m *home) addToFavoriteCmd(list api.FavoriteList, questionID string) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		err := client.AddToFavorite(ctx, list.IDHash, questionID)
		return favoriteUpdatedMsg{message: "added to " + list.Name, err: err}
	}
}

func (m *home) removeFromFavoriteCmd(list api.FavoriteList, questionID string) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		err := client.RemoveFromFavorite(ctx, list.IDHash, questionID)
		return favoriteUpdatedMsg{message: "removed from " + list.Name, err: err}
	}
}

func (m *home) createFavoriteListCmd(name string) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		err := client.CreateFavoriteList(ctx, name)
		return favoriteUpdatedMsg{message: "created list " + name, err: err}
	}
}

func (m *home) deleteFavoriteListCmd(list api.FavoriteList) tea.Cmd {
	client, ctx := m.client, m.ctx
	return func() tea.Msg {
		err := client.DeleteFavoriteList(ctx, list.IDHash)
		return favoriteUpdatedMsg{message: "deleted list " + list.Name, err: err}
	}
}

func (m *home) runSolutionCmd(detail *api.QuestionDetail) tea.Cmd {
	client, ctx, cfg := m.client, m.ctx, m.appConfig
	return func() tea.Msg {
		code, err := workspace.ReadSolution(cfg.WorkspaceDir, detail, cfg.Language)
		if err != nil {
			return judgeResultMsg{kind: ui.ResultRun, err: err}
		}
		testcase := workspace.ReadTestcase(cfg.WorkspaceDir, detail)
		id, err := client.RunCode(ctx, detail.TitleSlug, detail.QuestionID, cfg.Language, code, testcase)
		if err != nil {
			return judgeResultMsg{kind: ui.ResultRun, err: err}
		}
		resp, err := client.PollResult(ctx, id)
		return judgeResultMsg{resp: resp, kind: ui.ResultRun, err: err}
	}
}

func (m *home) submitSolutionCmd(detail *api.QuestionDetail) tea.Cmd {
	client, ctx, cfg := m.client, m.ctx, m.appConfig
	return func() tea.Msg {
		code, err := workspace.ReadSolution(cfg.WorkspaceDir, detail, cfg.Language)
		if err != nil {
			return judgeResultMsg{kind: ui.ResultSubmit, err: err}
		}
		id, err := client.SubmitCode(ctx, detail.TitleSlug, detail.QuestionID, cfg.Language, code)
		if err != nil {
			return judgeResultMsg{kind: ui.ResultSubmit, err: err}
		}
		resp, err := client.PollResult(ctx, id)
		return judgeResultMsg{resp: resp, kind: ui.ResultSubmit, err: err}
	}
}

func (m *home) openInEditorCmd(detail *api.QuestionDetail) tea.Cmd {
	path, err := workspace.Scaffold(m.appConfig.WorkspaceDir, detail, m.appConfig.Language)
	if err != nil {
		return m.handleError(err)
	}
	cmd := util.Command("editor", m.appConfig.Editor, path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

// handleError logs the error, shows it in the error box and schedules it to
// disappear.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return hideErrMsg{}
	})
}

// -- Update --

func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	// Status bar and error box take one row each.
	contentHeight := msg.Height - 2
	m.statusBar.SetSize(msg.Width)
	m.errBox.SetSize(msg.Width, 1)
	m.list.SetSize(msg.Width, contentHeight)
	m.tabbedWindow.SetSize(msg.Width, contentHeight)
	m.resultPane.SetSize(msg.Width, contentHeight)

	overlayWidth := int(float32(msg.Width) * 0.6)
	if m.textOverlay != nil {
		m.textOverlay.SetSize(overlayWidth, int(float32(msg.Height)*0.8))
	}
	if m.inputOverlay != nil {
		m.inputOverlay.SetWidth(overlayWidth)
	}
	if m.listOverlay != nil {
		m.listOverlay.SetWidth(overlayWidth)
	}
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.resultPane.SetSpinner(m.spinner.View())
		return m, cmd
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.scrollUp()
			case tea.MouseButtonWheelDown:
				m.scrollDown()
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case problemsLoadedMsg:
		m.loadingMore = false
		m.statusBar.SetMessage("")
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		if msg.appended {
			m.list.AppendProblems(msg.problems, msg.total)
		} else {
			m.list.SetProblems(msg.problems, msg.total)
		}
		// Prefetch the rest in the background so navigation never stalls.
		if m.list.HasMore() {
			m.loadingMore = true
			m.statusBar.SetMessage(fmt.Sprintf("loading problems %d/%d", m.list.Loaded(), msg.total))
			return m, m.fetchProblemsCmd(m.list.Loaded(), true)
		}
		return m, nil
	case detailLoadedMsg:
		m.statusBar.SetMessage("")
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.detail = msg.detail
		m.tabbedWindow.SetDetail(msg.detail, m.appConfig.Language)
		m.appState.LastSlug = msg.detail.TitleSlug
		config.SaveState(m.appState)
		m.state = stateDetail
		return m, nil
	case userLoadedMsg:
		m.statusBar.SetUser(msg.username, msg.stats)
		return m, nil
	case favoritesLoadedMsg:
		m.statusBar.SetMessage("")
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.openFavoritesOverlay(msg.lists, msg.forAdd)
		return m, nil
	case favoriteUpdatedMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.statusBar.SetMessage(msg.message)
		return m, nil
	case judgeResultMsg:
		m.statusBar.SetMessage("")
		if msg.err != nil {
			m.resultPane.SetError(msg.err)
			return m, nil
		}
		m.resultPane.SetResult(msg.resp)
		if msg.kind == ui.ResultSubmit && msg.resp.StatusCode == api.StatusAccepted {
			// Solve counts changed; refresh the status bar.
			return m, m.fetchUserCmd()
		}
		return m, nil
	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		if m.detail != nil {
			if code, err := workspace.ReadSolution(m.appConfig.WorkspaceDir, m.detail, m.appConfig.Language); err == nil {
				m.tabbedWindow.Code().SetCode(code, m.appConfig.Language, msg.path)
			}
		}
		return m.showHelpScreen(helpTypeScaffold{path: msg.path}, nil)
	case submitConfirmedMsg:
		return m.startJudge(ui.ResultSubmit)
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateHelp:
		return m.handleHelpState(msg)
	case stateConfirm:
		return m.handleConfirmState(msg)
	case stateSearch:
		return m.handleSearchState(msg)
	case stateFavorites:
		return m.handleFavoritesState(msg)
	case stateNewList:
		return m.handleNewListState(msg)
	case stateSettingsSession, stateSettingsCSRF:
		return m.handleSettingsState(msg)
	case stateDetail:
		return m.handleDetailState(msg)
	case stateResult:
		return m.handleResultState(msg)
	}
	return m.handleHomeState(msg)
}

func (m *home) handleHomeState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.quit()
	case keys.KeyUp:
		m.list.Up()
	case keys.KeyDown:
		m.list.Down()
		return m, m.maybeFetchMore()
	case keys.KeyTop:
		m.list.Top()
	case keys.KeyBottom:
		m.list.Bottom()
		return m, m.maybeFetchMore()
	case keys.KeyHalfUp:
		m.list.HalfUp()
	case keys.KeyHalfDown:
		m.list.HalfDown()
		return m, m.maybeFetchMore()
	case keys.KeyEnter:
		selected := m.list.Selected()
		if selected == nil {
			return m, nil
		}
		m.statusBar.SetMessage("loading " + selected.TitleSlug + "...")
		return m, m.fetchDetailCmd(selected.TitleSlug)
	case keys.KeySearch:
		m.returnState = stateHome
		m.inputOverlay = overlay.NewTextInputOverlay("Search problems", "keywords", m.search)
		m.inputOverlay.SetWidth(int(float32(m.width) * 0.6))
		m.state = stateSearch
	case keys.KeyFilter:
		m.difficulty = nextDifficulty(m.difficulty)
		m.list.SetFilters(m.difficulty, m.search, m.hideSolved)
		return m, m.fetchProblemsCmd(0, false)
	case keys.KeyHideSolved:
		m.hideSolved = !m.hideSolved
		m.list.SetFilters(m.difficulty, m.search, m.hideSolved)
	case keys.KeyFavorites:
		m.statusBar.SetMessage("loading lists...")
		return m, m.fetchFavoritesCmd(nil)
	case keys.KeyAddFavorite:
		selected := m.list.Selected()
		if selected == nil {
			return m, nil
		}
		m.statusBar.SetMessage("loading lists...")
		return m, m.fetchFavoritesCmd(selected)
	case keys.KeyYank:
		if selected := m.list.Selected(); selected != nil {
			return m, m.yank(selected.TitleSlug)
		}
	case keys.KeySettings:
		m.openSettings(stateHome)
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	}
	return m, nil
}

func (m *home) handleDetailState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.quit()
	case keys.KeyBack:
		m.state = stateHome
	case keys.KeyTab:
		m.tabbedWindow.Toggle()
	case keys.KeyUp:
		m.tabbedWindow.ScrollUp()
	case keys.KeyDown:
		m.tabbedWindow.ScrollDown()
	case keys.KeyHalfUp:
		m.tabbedWindow.HalfUp()
	case keys.KeyHalfDown:
		m.tabbedWindow.HalfDown()
	case keys.KeyTop:
		m.tabbedWindow.GotoTop()
	case keys.KeyBottom:
		m.tabbedWindow.GotoBottom()
	case keys.KeyEnter:
		if m.tabbedWindow.ActiveTab() == ui.HintsTab {
			m.tabbedWindow.Hints().Reveal()
		}
	case keys.KeyScaffold:
		if m.detail == nil {
			return m, nil
		}
		return m, m.openInEditorCmd(m.detail)
	case keys.KeyRun:
		return m.startJudge(ui.ResultRun)
	case keys.KeySubmit:
		if m.detail == nil {
			return m, nil
		}
		return m, m.confirmAction(
			fmt.Sprintf("Submit your %s solution for %q?", m.appConfig.Language, m.detail.Title),
			m.startSubmitCmd())
	case keys.KeyYank:
		if m.detail != nil {
			return m, m.yank(m.detail.TitleSlug)
		}
	case keys.KeyAddFavorite:
		if m.detail == nil {
			return m, nil
		}
		m.statusBar.SetMessage("loading lists...")
		return m, m.fetchFavoritesCmd(&api.ProblemSummary{
			FrontendQuestionID: m.detail.FrontendQuestionID,
			Title:              m.detail.Title,
			TitleSlug:          m.detail.TitleSlug,
		})
	case keys.KeySettings:
		m.openSettings(stateDetail)
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	}
	return m, nil
}

func (m *home) handleResultState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyQuit:
		return m.quit()
	case keys.KeyBack:
		m.state = stateDetail
	case keys.KeyUp:
		m.resultPane.ScrollUp()
	case keys.KeyDown:
		m.resultPane.ScrollDown()
	case keys.KeyHalfUp:
		m.resultPane.HalfUp()
	case keys.KeyHalfDown:
		m.resultPane.HalfDown()
	}
	return m, nil
}

func (m *home) handleConfirmState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmationOverlay.HandleKeyPress(msg) {
		m.confirmationOverlay = nil
		cmd := m.pendingCmd
		m.pendingCmd = nil
		if m.state == stateConfirm {
			m.state = m.returnState
		}
		return m, cmd
	}
	return m, nil
}

func (m *home) handleSearchState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search = m.inputOverlay.Value()
		m.inputOverlay = nil
		m.state = m.returnState
		m.list.SetFilters(m.difficulty, m.search, m.hideSolved)
		return m, m.fetchProblemsCmd(0, false)
	case "esc":
		m.inputOverlay = nil
		m.state = m.returnState
		return m, nil
	}
	m.inputOverlay.HandleKeyPress(msg)
	return m, nil
}

func (m *home) handleFavoritesState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// List management shortcuts, only while browsing (not mid-add).
	if m.browsingFavorites {
		switch msg.String() {
		case "n":
			m.listOverlay = nil
			m.inputOverlay = overlay.NewTextInputOverlay("New list", "list name", "")
			m.inputOverlay.SetWidth(int(float32(m.width) * 0.6))
			m.state = stateNewList
			return m, nil
		case "x":
			list, ok := m.listOverlay.Selected()
			if !ok {
				return m, nil
			}
			m.listOverlay = nil
			m.state = m.returnState
			return m, m.confirmAction(fmt.Sprintf("Delete list %q?", list.Name), m.deleteFavoriteListCmd(list))
		}
	}

	if m.listOverlay.HandleKeyPress(msg) {
		m.listOverlay = nil
		cmd := m.pendingCmd
		m.pendingCmd = nil
		if m.state == stateFavorites {
			m.state = m.returnState
		}
		return m, cmd
	}
	return m, nil
}

func (m *home) handleNewListState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.inputOverlay.Value()
		m.inputOverlay = nil
		m.state = m.returnState
		if name == "" {
			return m, nil
		}
		return m, m.createFavoriteListCmd(name)
	case "esc":
		m.inputOverlay = nil
		m.state = m.returnState
		return m, nil
	}
	m.inputOverlay.HandleKeyPress(msg)
	return m, nil
}

func (m *home) handleSettingsState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.state == stateSettingsSession {
			m.pendingSession = m.inputOverlay.Value()
			m.inputOverlay = overlay.NewTextInputOverlay(
				"CSRF token", "csrftoken cookie value", m.appConfig.CSRFToken)
			m.inputOverlay.SetWidth(int(float32(m.width) * 0.6))
			m.state = stateSettingsCSRF
			return m, nil
		}

		m.appConfig.Session = m.pendingSession
		m.appConfig.CSRFToken = m.inputOverlay.Value()
		m.inputOverlay = nil
		m.state = m.returnState
		if err := config.SaveConfig(m.appConfig); err != nil {
			return m, m.handleError(err)
		}
		m.client = api.NewClient(m.appConfig.Session, m.appConfig.CSRFToken)
		return m, tea.Batch(m.fetchProblemsCmd(0, false), m.fetchUserCmd())
	case "esc":
		m.inputOverlay = nil
		m.state = m.returnState
		return m, nil
	}
	m.inputOverlay.HandleKeyPress(msg)
	return m, nil
}

// -- helpers --

func nextDifficulty(current string) string {
	switch current {
	case "":
		return "EASY"
	case "EASY":
		return "MEDIUM"
	case "MEDIUM":
		return "HARD"
	}
	return ""
}

// maybeFetchMore kicks the next page fetch if the background prefetch was
// interrupted, e.g. by a transient network error.
func (m *home) maybeFetchMore() tea.Cmd {
	if m.loadingMore || !m.list.HasMore() || !m.list.NearEnd() {
		return nil
	}
	m.loadingMore = true
	return m.fetchProblemsCmd(m.list.Loaded(), true)
}

func (m *home) scrollUp() {
	switch m.state {
	case stateDetail:
		m.tabbedWindow.ScrollUp()
	case stateResult:
		m.resultPane.ScrollUp()
	default:
		m.list.Up()
	}
}

func (m *home) scrollDown() {
	switch m.state {
	case stateDetail:
		m.tabbedWindow.ScrollDown()
	case stateResult:
		m.resultPane.ScrollDown()
	default:
		m.list.Down()
	}
}

func (m *home) openSettings(returnTo state) {
	m.returnState = returnTo
	m.pendingSession = m.appConfig.Session
	m.inputOverlay = overlay.NewTextInputOverlay(
		"Session cookie", "LEETCODE_SESSION cookie value", m.appConfig.Session)
	if m.width > 0 {
		m.inputOverlay.SetWidth(int(float32(m.width) * 0.6))
	}
	m.state = stateSettingsSession
}

func (m *home) openFavoritesOverlay(lists []api.FavoriteList, forAdd *api.ProblemSummary) {
	title := "Favorites lists"
	if forAdd != nil {
		title = "Add " + forAdd.Title + " to list"
	}
	m.returnState = m.state
	m.browsingFavorites = forAdd == nil
	m.listOverlay = overlay.NewListSelectorOverlay(title, lists)
	if m.width > 0 {
		m.listOverlay.SetWidth(int(float32(m.width) * 0.6))
	}
	m.listOverlay.OnSelect = func(list api.FavoriteList) {
		if forAdd != nil {
			// Selecting a list the problem is already on removes it instead.
			if entry, ok := favoriteEntry(list, forAdd.TitleSlug); ok {
				m.pendingCmd = m.removeFromFavoriteCmd(list, entry.QuestionID)
			} else {
				m.pendingCmd = m.addToFavoriteCmd(list, forAdd.FrontendQuestionID)
			}
			return
		}
		// Browsing: show the list's problems in a text overlay.
		m.textOverlay = overlay.NewTextOverlay(renderFavoriteList(list))
		m.textOverlay.SetSize(int(float32(m.width)*0.6), int(float32(m.height)*0.8))
		m.state = stateHelp
	}
	m.state = stateFavorites
}

func favoriteEntry(list api.FavoriteList, slug string) (api.FavoriteQuestion, bool) {
	for _, q := range list.Questions {
		if q.TitleSlug == slug {
			return q, true
		}
	}
	return api.FavoriteQuestion{}, false
}

func renderFavoriteList(list api.FavoriteList) string {
	content := titleStyle.Render(list.Name) + "\n\n"
	if len(list.Questions) == 0 {
		content += descStyle.Render("This list is empty.")
	}
	for _, q := range list.Questions {
		marker := " "
		if q.Status == "ac" {
			marker = "✓"
		}
		content += fmt.Sprintf("%s %s. %s\n", marker, q.QuestionID, q.Title)
	}
	return content
}

// confirmAction shows a confirmation modal and stores action to run when the
// user confirms.
func (m *home) confirmAction(message string, action tea.Cmd) tea.Cmd {
	m.returnState = m.state
	m.confirmationOverlay = overlay.NewConfirmationOverlay(message)
	m.confirmationOverlay.OnConfirm = func() {
		m.pendingCmd = action
	}
	m.pendingCmd = nil
	m.state = stateConfirm
	return nil
}

func (m *home) startJudge(kind ui.ResultKind) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}
	if !m.appConfig.Authenticated() {
		return m, m.handleError(fmt.Errorf("sign in first: press S to enter your session cookie"))
	}
	m.resultPane.Start(kind, m.detail.Title)
	m.state = stateResult
	if kind == ui.ResultSubmit {
		return m, m.submitSolutionCmd(m.detail)
	}
	return m, m.runSolutionCmd(m.detail)
}

// startSubmitCmd wraps startJudge for use as a deferred confirmation action.
func (m *home) startSubmitCmd() tea.Cmd {
	return func() tea.Msg {
		return submitConfirmedMsg{}
	}
}

type submitConfirmedMsg struct{}

func (m *home) yank(slug string) tea.Cmd {
	url := fmt.Sprintf("https://leetcode.com/problems/%s/", slug)
	if err := clipboard.WriteAll(url); err != nil {
		return m.handleError(fmt.Errorf("failed to copy to clipboard: %w", err))
	}
	m.statusBar.SetMessage("copied " + url)
	return nil
}

var (
	hintKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	hintDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// keyHints renders the bottom hint row for the current screen from the
// global key bindings.
func (m *home) keyHints() string {
	var names []keys.KeyName
	switch m.state {
	case stateDetail:
		names = []keys.KeyName{keys.KeyTab, keys.KeyScaffold, keys.KeyRun, keys.KeySubmit, keys.KeyYank, keys.KeyBack}
	case stateResult:
		names = []keys.KeyName{keys.KeyDown, keys.KeyBack, keys.KeyQuit}
	default:
		names = []keys.KeyName{keys.KeyEnter, keys.KeySearch, keys.KeyFilter, keys.KeyHideSolved, keys.KeyFavorites, keys.KeyHelp, keys.KeyQuit}
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		help := keys.GlobalkeyBindings[name].Help()
		parts = append(parts, hintKeyStyle.Render(help.Key)+" "+hintDescStyle.Render(help.Desc))
	}
	return " " + strings.Join(parts, hintDescStyle.Render(" • "))
}

func (m *home) quit() (tea.Model, tea.Cmd) {
	config.SaveState(m.appState)
	return m, tea.Quit
}

func (m *home) View() string {
	// Overlays render on top of whatever screen they were opened from.
	base := m.state
	switch m.state {
	case stateHelp, stateConfirm, stateSearch, stateFavorites, stateNewList, stateSettingsSession, stateSettingsCSRF:
		base = m.returnState
	}

	var content string
	switch base {
	case stateDetail:
		content = m.tabbedWindow.String()
	case stateResult:
		content = m.resultPane.String()
	default:
		content = m.list.String()
	}

	// The bottom row shows key hints unless an error is up.
	bottom := m.errBox.String()
	if bottom == "" {
		bottom = m.keyHints()
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.statusBar.String(),
		content,
		bottom,
	)

	switch m.state {
	case stateHelp:
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			m.state = stateHome
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true, true)
	case stateConfirm:
		if m.confirmationOverlay == nil {
			log.ErrorLog.Printf("confirmation overlay is nil")
			m.state = stateHome
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.confirmationOverlay.Render(), mainView, true, true)
	case stateSearch, stateNewList, stateSettingsSession, stateSettingsCSRF:
		if m.inputOverlay == nil {
			log.ErrorLog.Printf("input overlay is nil")
			m.state = stateHome
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.inputOverlay.Render(), mainView, true, true)
	case stateFavorites:
		if m.listOverlay == nil {
			log.ErrorLog.Printf("list overlay is nil")
			m.state = stateHome
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.listOverlay.Render(), mainView, true, true)
	}

	return mainView
}
