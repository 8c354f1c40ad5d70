package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"snake-classic/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	SettingsFile = "settings.json"

	keyBest  = "snake-best"
	keyTheme = "snake-theme"
)

// SettingsManager holds the values that outlive a play session: the best
// score and the theme. They are stored as a flat string map so the file
// stays a plain key-value store.
type SettingsManager struct {
	path         string
	best         int
	theme        types.Theme
	defaultTheme types.Theme
	log          zerolog.Logger
}

func NewSettingsManager(dir string, defaultTheme types.Theme, log zerolog.Logger) *SettingsManager {
	return &SettingsManager{
		path:         filepath.Join(dir, SettingsFile),
		theme:        defaultTheme,
		defaultTheme: defaultTheme,
		log:          log.With().Str("component", "settings").Logger(),
	}
}

// Load reads the settings file. Anything missing or unreadable falls back
// to the defaults: 0 for the best score, the system theme for the theme.
func (sm *SettingsManager) Load() {
	sm.best = 0
	sm.theme = sm.defaultTheme

	data, err := os.ReadFile(sm.path)
	if err != nil {
		if !os.IsNotExist(err) {
			sm.log.Warn().Err(err).Str("path", sm.path).Msg("settings unreadable, using defaults")
		}
		return
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		sm.log.Warn().Err(err).Str("path", sm.path).Msg("settings corrupt, using defaults")
		return
	}

	if raw, ok := values[keyBest]; ok {
		best, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || best < 0 {
			sm.log.Warn().Str("value", raw).Msg("ignoring stored best score")
		} else {
			sm.best = best
		}
	}
	if raw, ok := values[keyTheme]; ok {
		if theme, ok := types.ParseTheme(raw); ok {
			sm.theme = theme
		} else {
			sm.log.Warn().Str("value", raw).Msg("ignoring stored theme")
		}
	}
	sm.log.Debug().Int("best", sm.best).Stringer("theme", sm.theme).Msg("settings loaded")
}

func (sm *SettingsManager) Save() error {
	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return errors.Wrap(err, "create settings directory")
	}

	values := map[string]string{
		keyBest:  strconv.Itoa(sm.best),
		keyTheme: sm.theme.String(),
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}

	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", sm.path)
	}
	return nil
}

func (sm *SettingsManager) Best() int {
	return sm.best
}

// RecordBest raises the best score to score and reports whether it changed.
func (sm *SettingsManager) RecordBest(score int) bool {
	if score > sm.best {
		sm.best = score
		return true
	}
	return false
}

func (sm *SettingsManager) Theme() types.Theme {
	return sm.theme
}

func (sm *SettingsManager) ToggleTheme() types.Theme {
	sm.theme = sm.theme.Toggle()
	return sm.theme
}

// SystemTheme guesses the preferred theme: SNAKE_THEME wins, then the
// terminal background advertised in COLORFGBG ("fg;bg"), else dark.
func SystemTheme(getenv func(string) string) types.Theme {
	if theme, ok := types.ParseTheme(getenv("SNAKE_THEME")); ok {
		return theme
	}
	colors := strings.Split(getenv("COLORFGBG"), ";")
	switch strings.TrimSpace(colors[len(colors)-1]) {
	case "7", "15":
		return types.ThemeLight
	}
	return types.ThemeDark
}
