// Package iconset stages resampled renditions on disk and turns them into an
// icon container.
package iconset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/setanarut/iconbuilder"
)

// Packager converts a staged directory into a container file at out.
type Packager interface {
	Package(ctx context.Context, dir, out string) error
}

// Iconutil runs macOS iconutil on an .iconset directory.
type Iconutil struct {
	// Path to the binary. Empty means "iconutil" from PATH.
	Path string
}

func (u Iconutil) binary() string {
	if u.Path == "" {
		return "iconutil"
	}
	return u.Path
}

// Available reports whether the iconutil binary can be found.
func (u Iconutil) Available() bool {
	_, err := exec.LookPath(u.binary())
	return err == nil
}

func (u Iconutil) Package(ctx context.Context, dir, out string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, u.binary(), "-c", "icns", dir, "-o", out)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%w: iconutil: %s", iconbuilder.ErrExternalTool, msg)
	}
	return nil
}

// ICO writes a Windows .ico holding every staged rendition of Sizes, one
// entry per distinct dimension up to 256.
type ICO struct {
	Sizes iconbuilder.IconSizeSet
}

// maxICOSize is the largest dimension an ICO directory entry can describe.
const maxICOSize = 256

func (p ICO) Package(_ context.Context, dir, out string) error {
	sizes := p.Sizes
	if len(sizes) == 0 {
		sizes = iconbuilder.WindowsIconSet()
	}
	var images []image.Image
	seen := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		if s.Pixels > maxICOSize || seen[s.Pixels] {
			continue
		}
		seen[s.Pixels] = true
		img, err := decodeStaged(filepath.Join(dir, s.Filename()))
		if err != nil {
			return fmt.Errorf("%w: ico: %v", iconbuilder.ErrExternalTool, err)
		}
		images = append(images, img)
	}
	if len(images) == 0 {
		return fmt.Errorf("%w: ico: no rendition of at most %dpx", iconbuilder.ErrExternalTool, maxICOSize)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, images); err != nil {
		return fmt.Errorf("%w: ico: %v", iconbuilder.ErrExternalTool, err)
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}

func decodeStaged(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(name), err)
	}
	return img, nil
}
