package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dd-commander/internal/pane"

	"github.com/spf13/viper"
)

// AppName is used for the state directory and the title bar.
const AppName = "dd-commander"

// EnvPrefix is prepended to every setting name when read from the environment.
const EnvPrefix = "DDC"

// Settings holds runtime options. They come from the environment only;
// there is no configuration file.
type Settings struct {
	Sort       pane.SortMode
	ShowHidden bool
	Hide       []string
	Opener     string
	Watch      bool
	LogLevel   string
	LogFile    string
}

// Load reads settings from DDC_* environment variables.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("sort", string(pane.SortDirsFirst))
	v.SetDefault("show_hidden", true)
	v.SetDefault("hide", "")
	v.SetDefault("opener", os.Getenv("PAGER"))
	v.SetDefault("watch", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	mode, err := pane.ParseSortMode(v.GetString("sort"))
	if err != nil {
		return nil, fmt.Errorf("%s_SORT: %w", EnvPrefix, err)
	}

	s := &Settings{
		Sort:       mode,
		ShowHidden: v.GetBool("show_hidden"),
		Hide:       splitList(v.GetString("hide")),
		Opener:     strings.TrimSpace(v.GetString("opener")),
		Watch:      v.GetBool("watch"),
		LogLevel:   v.GetString("log_level"),
		LogFile:    v.GetString("log_file"),
	}
	return s, nil
}

// Lister builds the directory lister described by the settings.
func (s *Settings) Lister() (*pane.Lister, error) {
	l, err := pane.NewLister(s.Sort, s.ShowHidden, s.Hide)
	if err != nil {
		return nil, fmt.Errorf("%s_HIDE: %w", EnvPrefix, err)
	}
	return l, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LogPath returns the path for the debug log file.
// An explicit DDC_LOG_FILE wins. When running from the project directory
// (go run / ./bin/dd-commander) logs go to .logs/debug.log; when installed
// they go to ~/.local/state/dd-commander/debug.log following XDG conventions.
func (s *Settings) LogPath() string {
	if s.LogFile != "" {
		return s.LogFile
	}
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		cwd, _ := os.Getwd()
		if within(exeDir, cwd) || strings.Contains(exeDir, "go-build") {
			return filepath.Join(cwd, ".logs", "debug.log")
		}
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, _ := os.UserHomeDir()
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, AppName, "debug.log")
}

// within reports whether dir is root or lies below it. The filesystem
// root contains everything and never counts.
func within(dir, root string) bool {
	if root == "" || filepath.Dir(root) == root {
		return false
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
