package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/noriah/stepchart"
	"github.com/noriah/stepchart/scale"
	"github.com/spf13/viper"
)

// isolate keeps the user's own config file and environment out of the test
func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	for _, key := range []string{"MAX_HEIGHT", "VIEW", "COLOR", "LOG_LEVEL"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	var cfg, err = Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if cfg != NewZeroConfig() {
		t.Errorf("Load() = %+v, want %+v", cfg, NewZeroConfig())
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)

	t.Setenv("STEPCHART_MAX_HEIGHT", "30")
	t.Setenv("STEPCHART_VIEW", "top")
	t.Setenv("STEPCHART_COLOR", "never")
	t.Setenv("STEPCHART_LOG_LEVEL", "debug")

	var cfg, err = Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	var want = Config{MaxHeight: 30, View: "top", Color: "never", LogLevel: "debug"}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadBadHeight(t *testing.T) {
	isolate(t)

	t.Setenv("STEPCHART_MAX_HEIGHT", "tall")

	if _, err := Load(viper.New(), ""); err == nil {
		t.Error("Load() accepted a non numeric height")
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	var path = filepath.Join(t.TempDir(), "chart.yaml")
	var data = []byte("max-height: 5\nview: top\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg, err = Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if cfg.MaxHeight != 5 || cfg.View != "top" {
		t.Errorf("Load() = %+v", cfg)
	}

	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want default %q", cfg.Color, ColorAuto)
	}

	// environment wins over the file
	t.Setenv("STEPCHART_MAX_HEIGHT", "7")

	if cfg, err = Load(viper.New(), path); err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if cfg.MaxHeight != 7 {
		t.Errorf("MaxHeight = %d, want 7", cfg.MaxHeight)
	}
}

func TestLoadSearchesConfigDir(t *testing.T) {
	isolate(t)

	var dir, err = os.UserConfigDir()
	if err != nil {
		t.Skip("no user config dir:", err)
	}

	if err = os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}

	var data = []byte("color = \"always\"\n")
	if err := os.WriteFile(filepath.Join(dir, FileName+".toml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if cfg, err = Load(viper.New(), ""); err != nil {
		t.Fatalf("Load() err = %v", err)
	}

	if cfg.Color != ColorAlways {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAlways)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	var path = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := Load(viper.New(), path); err == nil {
		t.Error("Load() should fail on a missing explicit config file")
	}
}

func TestSanitize(t *testing.T) {
	var tests = []struct {
		name    string
		cfg     Config
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  NewZeroConfig(),
			want: NewZeroConfig(),
		},
		{
			name: "height too small",
			cfg:  Config{MaxHeight: -3, View: "top", Color: "auto", LogLevel: "warn"},
			want: Config{MaxHeight: 1, View: "top", Color: "auto", LogLevel: "warn"},
		},
		{
			name: "height too large",
			cfg:  Config{MaxHeight: 100000, View: "top", Color: "auto", LogLevel: "warn"},
			want: Config{MaxHeight: stepchart.MaxHeight, View: "top", Color: "auto", LogLevel: "warn"},
		},
		{
			name: "normalized",
			cfg:  Config{MaxHeight: 4, View: " TOP ", Color: "Never", LogLevel: "WARNING"},
			want: Config{MaxHeight: 4, View: "top", Color: "never", LogLevel: "warn"},
		},
		{
			name:    "bad view",
			cfg:     Config{MaxHeight: 4, View: "middle", Color: "auto", LogLevel: "warn"},
			wantErr: true,
		},
		{
			name:    "bad color",
			cfg:     Config{MaxHeight: 4, View: "top", Color: "sometimes", LogLevel: "warn"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			cfg:     Config{MaxHeight: 4, View: "top", Color: "auto", LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg = tt.cfg
			var err = cfg.Sanitize()

			if (err != nil) != tt.wantErr {
				t.Fatalf("Sanitize() err = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && cfg != tt.want {
				t.Errorf("Sanitize() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestChartView(t *testing.T) {
	var cfg = Config{View: "top"}
	if cfg.ChartView() != scale.Top {
		t.Errorf("ChartView() = %v, want top", cfg.ChartView())
	}
}

func TestHeight(t *testing.T) {
	var tests = []struct {
		max     int
		dataMax uint32
		want    int
	}{
		{max: 16, dataMax: 1000, want: 16},
		{max: 16, dataMax: 5, want: 5},
		{max: 16, dataMax: 0, want: 1},
		{max: 4095, dataMax: 4294967295, want: 4095},
		{max: 1, dataMax: 1, want: 1},
	}

	for _, tt := range tests {
		var cfg = Config{MaxHeight: tt.max}
		if got := cfg.Height(tt.dataMax); got != tt.want {
			t.Errorf("Height(%d) with max %d = %d, want %d", tt.dataMax, tt.max, got, tt.want)
		}
	}
}
