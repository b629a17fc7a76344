package command

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-zuul/internal/game"
	"golang.org/x/text/language"
)

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		cfg    Config
		expErr string
	}{
		"console only": {
			cfg: Config{Console: true},
		},
		"telnet only": {
			cfg: Config{Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}}},
		},
		"nothing to serve": {
			cfg:    Config{},
			expErr: "nothing to serve",
		},
		"listener without port": {
			cfg:    Config{Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet}}},
			expErr: "listener 0: port must be set to a positive integer",
		},
		"host key on telnet": {
			cfg:    Config{Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000, HostKeyPath: "key"}}},
			expErr: "host_key_path is only used by ssh listeners",
		},
		"bad nats timeout": {
			cfg:    Config{Console: true, Nats: NatsConfig{Enabled: true, StartTimeout: "soon"}},
			expErr: "parsing start_timeout",
		},
		"bad metrics port": {
			cfg:    Config{Console: true, Metrics: MetricsConfig{Port: 70000}},
			expErr: "metrics port 70000 is out of range",
		},
		"partial world": {
			cfg:    Config{Console: true, World: WorldConfig{Start: "hall"}},
			expErr: "world.rooms: path is required",
		},
		"locale without language": {
			cfg:    Config{Console: true, Locale: LocaleConfig{Path: os.TempDir()}},
			expErr: "locale: language is required when path is set",
		},
		"locale with bad language": {
			cfg:    Config{Console: true, Locale: LocaleConfig{Path: os.TempDir(), Language: "not a tag!"}},
			expErr: `locale: parsing language "not a tag!"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestListenerType_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		in     string
		exp    ListenerType
		expErr string
	}{
		"telnet":  {in: "telnet", exp: ListenerTypeTelnet},
		"ssh":     {in: "ssh", exp: ListenerTypeSSH},
		"unknown": {in: "gopher", expErr: "unknown listener type: gopher"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var lt ListenerType
			err := lt.UnmarshalText([]byte(tt.in))
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "type", lt, tt.exp)
		})
	}
}

func TestLogLevel(t *testing.T) {
	testutil.AssertEqual(t, "debug", LogLevel("debug"), slog.LevelDebug)
	testutil.AssertEqual(t, "warn", LogLevel("WARN"), slog.LevelWarn)
	testutil.AssertEqual(t, "empty", LogLevel(""), slog.LevelInfo)
	testutil.AssertEqual(t, "garbage", LogLevel("loud"), slog.LevelInfo)
}

func TestGotextLanguage(t *testing.T) {
	testutil.AssertEqual(t, "with region", gotextLanguage(language.MustParse("de-AT")), "de_AT")
	testutil.AssertEqual(t, "british", gotextLanguage(language.BritishEnglish), "en_GB")
}

func writeAsset(t *testing.T, dir string, id string, spec any) {
	t.Helper()
	data, err := json.Marshal(map[string]any{"version": 1, "id": id, "spec": spec})
	if err != nil {
		t.Fatalf("marshalling %s: %v", id, err)
	}
	err = os.WriteFile(filepath.Join(dir, id+".json"), data, 0644)
	if err != nil {
		t.Fatalf("writing %s: %v", id, err)
	}
}

func TestWorldConfig_BuildLayout(t *testing.T) {
	t.Run("built in campus", func(t *testing.T) {
		wc := WorldConfig{}
		layout, err := wc.BuildLayout()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, "start", layout.Start, "outside")
		testutil.AssertEqual(t, "rooms", len(layout.Rooms), 6)
	})

	tests := map[string]struct {
		start  string
		exit   string
		expErr string
	}{
		"loads from assets": {
			start: "hall",
			exit:  "cellar",
		},
		"unknown start": {
			start:  "attic",
			exit:   "cellar",
			expErr: `start "attic": unknown room`,
		},
		"dangling exit": {
			start:  "hall",
			exit:   "garden",
			expErr: `room "hall" exit down -> "garden": unknown room`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rooms := t.TempDir()
			items := t.TempDir()

			writeAsset(t, items, "lamp", map[string]any{
				"name": "lamp", "description": "a brass lamp", "weight": 1.5, "type": "other",
			})
			writeAsset(t, rooms, "hall", map[string]any{
				"description": "in a hall",
				"exits":       map[string]string{"down": tt.exit},
				"items":       []string{"lamp"},
			})
			writeAsset(t, rooms, "cellar", map[string]any{
				"description": "in a damp cellar",
				"exits":       map[string]string{"up": "hall"},
			})

			wc := WorldConfig{
				Rooms: AssetConfig[*game.RoomSpec]{Path: rooms},
				Items: AssetConfig[*game.ItemSpec]{Path: items},
				Start: tt.start,
			}
			err := wc.validate()
			if err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}

			layout, err := wc.BuildLayout()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "rooms", len(layout.Rooms), 2)
			testutil.AssertEqual(t, "items", len(layout.Items), 1)
			testutil.AssertEqual(t, "hall description", layout.Rooms["hall"].Description, "in a hall")
		})
	}
}
