package cmd_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"gravclock/cmd/gravclock/cmd"
	"gravclock/internal/config"
)

const home = "/home/test"

func newCommand(t *testing.T, fs afero.Fs, opts ...cmd.Option) *cmd.Command {
	t.Helper()
	opts = append([]cmd.Option{cmd.WithFs(fs), cmd.WithHomeDir(home)}, opts...)
	c, err := cmd.New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestVersionCmd(t *testing.T) {
	var outputBuf bytes.Buffer
	if err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("version"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := cmd.Version + "\n"
	got := outputBuf.String()
	if got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestAnglesCmd(t *testing.T) {
	var out bytes.Buffer
	if err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("angles", "--at", "06:30"),
		cmd.WithOutput(&out),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := "hour   3.403392\nminute 3.141593\nsecond 0.000000\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestAnglesCmd_Speed(t *testing.T) {
	var out bytes.Buffer
	if err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("angles", "--at", "01:00:00.000", "--time-speed", "3"),
		cmd.WithOutput(&out),
	).Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "hour   1.570796\n") {
		t.Errorf("got %q, want hour π/2", out.String())
	}
}

func TestAnglesCmd_BadTime(t *testing.T) {
	err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("angles", "--at", "noon"),
		cmd.WithOutput(&bytes.Buffer{}),
	).Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid time of day") {
		t.Fatalf("err = %v", err)
	}
}

func TestConfigCmd_ReadsHomeConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, home+"/.gravclock.yaml", []byte("time-speed: 3\nfps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := newCommand(t, fs,
		cmd.WithArgs("config", "--hour-length", "80"),
		cmd.WithOutput(&out),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	var got config.Config
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not yaml: %v\n%s", err, out.String())
	}
	want := config.Default()
	want.TimeSpeed = 3
	want.FPS = 30
	want.HourLength = 80
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !strings.HasPrefix(out.String(), "# "+home+"/.gravclock.yaml\n") {
		t.Errorf("config file not reported:\n%s", out.String())
	}
}

func TestConfigCmd_Invalid(t *testing.T) {
	err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("config", "--time-speed", "12", "--fps", "0"),
		cmd.WithOutput(&bytes.Buffer{}),
	).Execute()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"time-speed", "fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestConfigCmd_MissingExplicitFile(t *testing.T) {
	err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("config", "--config", "/nope.yaml"),
		cmd.WithOutput(&bytes.Buffer{}),
	).Execute()
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
}

func TestSnapshotCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	if err := newCommand(t, fs,
		cmd.WithArgs("snapshot",
			"--at", "06:30:00.000",
			"--width", "200", "--height", "100", "--dpr", "2",
			"--frames", "3", "--fps", "500",
			"--out", "/tmp/clock.png",
			"--verbosity", "silent",
		),
		cmd.WithOutput(&out),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "wrote /tmp/clock.png (3 frames)") {
		t.Errorf("unexpected output %q", out.String())
	}

	f, err := fs.Open("/tmp/clock.png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Errorf("image = %v, want 400x200", b)
	}
	// Centre of the face, under the hands' hub: never transparent.
	if _, _, _, a := img.At(200, 100).RGBA(); a == 0 {
		t.Errorf("centre pixel is transparent")
	}
}

func TestSnapshotCmd_ZeroFrames(t *testing.T) {
	err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("snapshot", "--frames", "0"),
		cmd.WithOutput(&bytes.Buffer{}),
	).Execute()
	if err == nil {
		t.Fatal("expected error for zero frames")
	}
}

func TestSnapshotCmd_UnknownVerbosity(t *testing.T) {
	err := newCommand(t, afero.NewMemMapFs(),
		cmd.WithArgs("snapshot", "--verbosity", "loud"),
		cmd.WithOutput(&bytes.Buffer{}),
	).Execute()
	if err == nil || !strings.Contains(err.Error(), "verbosity") {
		t.Fatalf("err = %v", err)
	}
}
