package iconset

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/iconbuilder"
)

// Stage writes every rendition into dir under the file name its tag
// requires. Each write is retried once; tags that still fail are reported
// together as a partial write.
func Stage(dir string, renditions []iconbuilder.Rendition) error {
	var failed []string
	for _, r := range renditions {
		name := filepath.Join(dir, r.Size.Filename())
		err := retryOnce(func() error { return writePNG(name, r.Buffer) })
		if err != nil {
			log.Printf("iconset warning: %s: %v", r.Size.Tag, err)
			failed = append(failed, r.Size.Tag)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d renditions failed: %s",
			iconbuilder.ErrPartialWrite, len(failed), len(renditions), strings.Join(failed, ", "))
	}
	return nil
}

func writePNG(name string, buf *iconbuilder.PixelBuffer) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, buf.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func retryOnce(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	log.Printf("iconset warning: %v, retrying", err)
	return fn()
}

// Build stages renditions in a temporary .iconset directory next to out,
// packages them into a temporary file and renames it onto out. On failure
// nothing is written at out and all temporary files are removed.
func Build(ctx context.Context, out string, renditions []iconbuilder.Rendition, p Packager) error {
	if len(renditions) == 0 {
		return fmt.Errorf("%w: no renditions to package", iconbuilder.ErrPartialWrite)
	}
	dir := filepath.Dir(out)
	ext := filepath.Ext(out)
	stem := strings.TrimSuffix(filepath.Base(out), ext)

	var staging string
	err := retryOnce(func() error {
		var err error
		staging, err = os.MkdirTemp(dir, stem+"-*.iconset")
		return err
	})
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := Stage(staging, renditions); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+stem+"-*"+ext)
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	// Only the name is reserved; the packager creates the file.
	os.Remove(tmpName)
	defer os.Remove(tmpName)

	if err := p.Package(ctx, staging, tmpName); err != nil {
		return err
	}
	if _, err := os.Stat(tmpName); err != nil {
		return fmt.Errorf("%w: packager produced no output", iconbuilder.ErrExternalTool)
	}
	if err := os.Rename(tmpName, out); err != nil {
		return fmt.Errorf("moving %s into place: %w", out, err)
	}
	return nil
}

// Write resamples icon to every entry of set and packages the result at out.
func Write(ctx context.Context, out string, icon *iconbuilder.PixelBuffer, set iconbuilder.IconSizeSet, filter iconbuilder.ResampleFilter, p Packager) error {
	renditions, err := iconbuilder.Resample(icon, set, filter)
	if err != nil {
		return fmt.Errorf("resampling: %w", err)
	}
	return Build(ctx, out, renditions, p)
}
