package engineconfig

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultPath is the path to the simulator config file, relative to the process working directory.
// Files ending in .toml are read and written as TOML, anything else as JSON.
const DefaultPath = "config/sim.json"

// SimPrefs holds simulator settings: stepping, gravity, window and debug overlays. Persisted across runs.
type SimPrefs struct {
	TimeStep      float32    `json:"time_step" toml:"time_step"`
	Gravity       [2]float32 `json:"gravity" toml:"gravity"`
	WindowWidth   int32      `json:"window_width" toml:"window_width"`
	WindowHeight  int32      `json:"window_height" toml:"window_height"`
	TargetFPS     int32      `json:"target_fps" toml:"target_fps"`
	PixelsPerUnit float32    `json:"pixels_per_unit" toml:"pixels_per_unit"`
	ShowFPS       bool       `json:"show_fps" toml:"show_fps"`
	ShowMemAlloc  bool       `json:"show_memalloc" toml:"show_memalloc"`
	ShowStats     bool       `json:"show_stats" toml:"show_stats"`
	Audio         bool       `json:"audio" toml:"audio"`
	LogPath       string     `json:"log_path,omitempty" toml:"log_path,omitempty"`
	Scene         string     `json:"scene,omitempty" toml:"scene,omitempty"`
}

// Default returns default preferences: 60 Hz fixed step, screen-space gravity, overlays off.
func Default() SimPrefs {
	return SimPrefs{
		TimeStep:      1.0 / 60,
		Gravity:       [2]float32{0, 9.8},
		WindowWidth:   1280,
		WindowHeight:  720,
		TargetFPS:     60,
		PixelsPerUnit: 20,
		LogPath:       "logs/sim.txt",
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads preferences from path on top of Default(). A missing file returns Default() and no error.
// A file that cannot be decoded returns Default() and the decode error.
func Load(path string) (SimPrefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, errors.Wrapf(err, "read %s", path)
	}
	if isTOML(path) {
		_, err = toml.Decode(string(data), &p)
	} else {
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return Default(), errors.Wrapf(err, "decode %s", path)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p SimPrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = json.MarshalIndent(p, "", "\t")
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyOverrides sets fields from variables such as those returned by env.Collect.
// Keys are the upper-case TOML names (TIME_STEP, GRAVITY_X, SHOW_FPS, ...). Unknown keys are ignored.
func ApplyOverrides(p SimPrefs, vars map[string]string) (SimPrefs, error) {
	for key, raw := range vars {
		var err error
		switch key {
		case "TIME_STEP":
			p.TimeStep, err = parseFloat(raw)
		case "GRAVITY_X":
			p.Gravity[0], err = parseFloat(raw)
		case "GRAVITY_Y":
			p.Gravity[1], err = parseFloat(raw)
		case "WINDOW_WIDTH":
			p.WindowWidth, err = parseInt(raw)
		case "WINDOW_HEIGHT":
			p.WindowHeight, err = parseInt(raw)
		case "TARGET_FPS":
			p.TargetFPS, err = parseInt(raw)
		case "PIXELS_PER_UNIT":
			p.PixelsPerUnit, err = parseFloat(raw)
		case "SHOW_FPS":
			p.ShowFPS, err = strconv.ParseBool(raw)
		case "SHOW_MEMALLOC":
			p.ShowMemAlloc, err = strconv.ParseBool(raw)
		case "SHOW_STATS":
			p.ShowStats, err = strconv.ParseBool(raw)
		case "AUDIO":
			p.Audio, err = strconv.ParseBool(raw)
		case "LOG_PATH":
			p.LogPath = raw
		case "SCENE":
			p.Scene = raw
		}
		if err != nil {
			return p, errors.Wrapf(err, "override %s", key)
		}
	}
	return p, nil
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(f), err
}

func parseInt(s string) (int32, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	return int32(i), err
}

// Validate rejects settings the simulator cannot run with.
func (p SimPrefs) Validate() error {
	switch {
	case !(p.TimeStep > 0):
		return errors.Errorf("time_step must be positive, got %v", p.TimeStep)
	case p.TargetFPS <= 0:
		return errors.Errorf("target_fps must be positive, got %d", p.TargetFPS)
	case p.WindowWidth <= 0 || p.WindowHeight <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", p.WindowWidth, p.WindowHeight)
	case !(p.PixelsPerUnit > 0):
		return errors.Errorf("pixels_per_unit must be positive, got %v", p.PixelsPerUnit)
	}
	return nil
}
