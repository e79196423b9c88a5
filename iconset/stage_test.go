package iconset

import (
	"context"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/setanarut/iconbuilder"
)

// recordingPackager lists the staged files and writes their names to out.
type recordingPackager struct {
	staged []string
	err    error
	noOp   bool
}

func (p *recordingPackager) Package(_ context.Context, dir, out string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		p.staged = append(p.staged, e.Name())
	}
	if p.err != nil {
		return p.err
	}
	if p.noOp {
		return nil
	}
	return os.WriteFile(out, []byte("icns"), 0o644)
}

func renditions(t *testing.T, set iconbuilder.IconSizeSet) []iconbuilder.Rendition {
	t.Helper()
	src := iconbuilder.Solid(64, 64, color.NRGBA{200, 30, 30, 255})
	out, err := iconbuilder.Resample(src, set, iconbuilder.FilterLanczos)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "App.icns")
	p := &recordingPackager{}

	if err := Build(context.Background(), out, renditions(t, iconbuilder.MacIconSet()), p); err != nil {
		t.Fatal(err)
	}
	if len(p.staged) != 10 {
		t.Errorf("staged %d files, want 10: %v", len(p.staged), p.staged)
	}
	for _, s := range iconbuilder.MacIconSet() {
		if !slices.Contains(p.staged, s.Filename()) {
			t.Errorf("%s not staged", s.Filename())
		}
	}
	if names := dirNames(t, dir); !slices.Equal(names, []string{"App.icns"}) {
		t.Errorf("directory holds %v, want only App.icns", names)
	}
}

func TestBuildFailureLeavesNothing(t *testing.T) {
	tests := []struct {
		name string
		p    *recordingPackager
		want error
	}{
		{"packager error", &recordingPackager{err: iconbuilder.ErrExternalTool}, iconbuilder.ErrExternalTool},
		{"no output", &recordingPackager{noOp: true}, iconbuilder.ErrExternalTool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "App.icns")
			err := Build(context.Background(), out, renditions(t, iconbuilder.WindowsIconSet()), tt.p)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if names := dirNames(t, dir); len(names) != 0 {
				t.Errorf("directory holds %v after failure", names)
			}
		})
	}
}

func TestBuildNoRenditions(t *testing.T) {
	err := Build(context.Background(), filepath.Join(t.TempDir(), "x.icns"), nil, &recordingPackager{})
	if !errors.Is(err, iconbuilder.ErrPartialWrite) {
		t.Errorf("err = %v, want ErrPartialWrite", err)
	}
}

func TestStageWritesPNGs(t *testing.T) {
	dir := t.TempDir()
	if err := Stage(dir, renditions(t, iconbuilder.WindowsIconSet())); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(dir, "icon_48x48.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 48 || cfg.Height != 48 {
		t.Errorf("icon_48x48.png is %dx%d", cfg.Width, cfg.Height)
	}
}

func TestStagePartialWrite(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	err := Stage(missing, renditions(t, iconbuilder.WindowsIconSet()))
	if !errors.Is(err, iconbuilder.ErrPartialWrite) {
		t.Errorf("err = %v, want ErrPartialWrite", err)
	}
}

func TestRetryOnce(t *testing.T) {
	calls := 0
	err := retryOnce(func() error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("err = %v after %d calls", err, calls)
	}
}

func TestWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "App.icns")
	src := iconbuilder.Solid(40, 30, color.NRGBA{})
	err := Write(context.Background(), out, src, iconbuilder.MacIconSet(), iconbuilder.FilterLanczos, &recordingPackager{})
	if !errors.Is(err, iconbuilder.ErrDimensionMismatch) {
		t.Errorf("non-square err = %v, want ErrDimensionMismatch", err)
	}
}
