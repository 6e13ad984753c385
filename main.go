package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracklist/internal/config"
	"github.com/llehouerou/tracklist/internal/errmsg"
	"github.com/llehouerou/tracklist/internal/icons"
	"github.com/llehouerou/tracklist/internal/library"
	"github.com/llehouerou/tracklist/internal/playlist"
	"github.com/llehouerou/tracklist/internal/state"
	"github.com/llehouerou/tracklist/internal/tags"
	"github.com/llehouerou/tracklist/internal/ui/action"
	"github.com/llehouerou/tracklist/internal/ui/canvas"
	"github.com/llehouerou/tracklist/internal/ui/delegate"
	"github.com/llehouerou/tracklist/internal/ui/playlistview"
)

type model struct {
	view    playlistview.Model
	lib     *library.Library
	session *state.Manager
}

func initialModel(args []string) (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	icons.Init(cfg.Icons)

	dbPath, err := cfg.GetLibraryDB()
	if err != nil {
		return model{}, errors.New(errmsg.Format(errmsg.OpLibraryOpen, err))
	}
	lib, err := library.Open(dbPath)
	if err != nil {
		return model{}, errors.New(errmsg.Format(errmsg.OpLibraryOpen, err))
	}

	// Session state lives next to the index
	session, err := state.New(lib.DB())
	if err != nil {
		lib.Close()
		return model{}, errors.New(errmsg.Format(errmsg.OpSessionLoad, err))
	}

	opts, err := delegateOptions(cfg, lib)
	if err != nil {
		lib.Close()
		return model{}, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	table := delegate.Default(opts)
	for col, suffix := range cfg.GetSuffixes() {
		table.SetSuffix(col, suffix)
	}

	var (
		list  *playlist.Playlist
		saved *state.Session
		errs  []error
	)
	if len(args) > 0 {
		list, errs = loadFiles(args, lib)
	} else {
		list, saved, err = restoreSession(context.Background(), session, lib)
		if err != nil {
			errs = append(errs, err)
		}
	}

	viewCfg := playlistview.Config{
		Columns: cfg.GetColumns(),
		Widths:  cfg.GetWidths(),
		Store:   lib,
	}
	if cfg.WriteTags {
		viewCfg.Tags = tags.Write
	}
	view := playlistview.New(list, table, viewCfg)
	if saved != nil {
		view.SetCursor(saved.CursorRow, saved.CursorCol)
	}
	switch {
	case len(errs) == 1:
		view.SetStatus(errs[0].Error(), true)
	case len(errs) > 1:
		view.SetStatus(fmt.Sprintf("%d files could not be loaded", len(errs)), true)
	}

	return model{view: view, lib: lib, session: session}, nil
}

// delegateOptions maps the configuration onto the shared delegate options.
func delegateOptions(cfg *config.Config, lib *library.Library) (delegate.Options, error) {
	opts := delegate.DefaultOptions()
	opts.IndicatorColumn = cfg.GetIndicatorColumn()
	opts.CurrentIndent = cfg.GetCurrentIndent()
	opts.MinHeight = cfg.GetMinRowHeight()
	opts.Locale = cfg.GetLocale()
	opts.Completion = lib
	opts.CompletionLimit = cfg.GetCompletionLimit()

	b := cfg.GetBadgeConfig()
	opts.Badge.BoxLength = b.BoxLength
	opts.Badge.Border = *b.Border
	opts.Badge.Inset = b.Inset
	opts.Badge.OpacityFloor = *b.OpacityFloor
	opts.Badge.OpacitySteps = b.OpacitySteps

	colors := []struct {
		hex string
		dst *canvas.Color
	}{
		{b.GradientTop, &opts.Badge.GradientTop},
		{b.GradientBottom, &opts.Badge.GradientBottom},
		{b.Outline, &opts.Badge.Outline},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		col, err := canvas.Hex(c.hex)
		if err != nil {
			return delegate.Options{}, fmt.Errorf("badge color %q: %w", c.hex, err)
		}
		*c.dst = col
	}
	return opts, nil
}

// loadFiles builds the playlist from command line paths. Files the index
// already knows with the same mtime keep their indexed tags, so earlier
// edits survive; the others are indexed.
func loadFiles(args []string, lib *library.Library) (*playlist.Playlist, []error) {
	tracks, errs := playlist.Collect(args)

	known, err := indexedByPath(lib)
	if err != nil {
		errs = append(errs, errors.New(errmsg.Format(errmsg.OpLibraryLoad, err)))
	}

	for i := range tracks {
		t := &tracks[i]
		if lt, ok := known[t.Path]; ok && lt.Mtime == t.Modified.Unix() {
			*t = playlist.FromLibraryTrack(lt)
			continue
		}
		id, err := lib.Upsert(playlist.ToLibraryTrack(*t))
		if err != nil {
			errs = append(errs, errors.New(errmsg.FormatWith(errmsg.OpLibraryUpdate, t.Path, err)))
			continue
		}
		t.ID = id
	}

	list := playlist.NewPlaylist()
	list.Add(tracks...)
	return list, errs
}

// restoreSession rebuilds the last playlist, reading tracks from the index
// first and from disk for paths it does not know.
func restoreSession(ctx context.Context, session *state.Manager, lib *library.Library) (*playlist.Playlist, *state.Session, error) {
	saved, err := session.Load(ctx)
	if err != nil {
		return playlist.NewPlaylist(), nil, errors.New(errmsg.Format(errmsg.OpSessionLoad, err))
	}

	// an unreadable index only means every track comes from disk
	known, _ := indexedByPath(lib)
	load := func(path string) (playlist.Track, bool) {
		if lt, ok := known[path]; ok {
			return playlist.FromLibraryTrack(lt), true
		}
		t, err := playlist.TrackFromFile(path)
		return t, err == nil
	}
	return state.Restore(*saved, load), saved, nil
}

func indexedByPath(lib *library.Library) (map[string]library.Track, error) {
	tracks, err := lib.Tracks()
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]library.Track, len(tracks))
	for _, t := range tracks {
		byPath[t.Path] = t
	}
	return byPath, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// ctrl+c quits even while editing
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

	case action.Msg:
		a, _ := action.From(msg, playlistview.Source)
		switch a.(type) {
		case playlistview.SessionChanged:
			m.saveSession()
			return m, nil
		case playlistview.TrackEdited:
			return m, nil
		case playlistview.Quit:
			return m.quit()
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *model) saveSession() {
	row, col := m.view.Cursor()
	m.session.Save(state.Capture(m.view.Playlist(), row, col))
	if err := m.session.Err(); err != nil {
		m.view.SetStatus(errmsg.Format(errmsg.OpSessionSave, err), true)
	}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.saveSession()
	if err := m.session.Close(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpSessionSave, err))
	}
	return m, tea.Quit
}

func (m model) View() string {
	return m.view.View()
}

func main() {
	m, err := initialModel(os.Args[1:])
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}
	defer m.lib.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		m.lib.Close()
		os.Exit(1)
	}
}
