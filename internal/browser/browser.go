// Package browser resolves card links and hands them to the desktop opener.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

var (
	ErrEmptyLink    = errors.New("card has no link")
	ErrRelativeLink = errors.New("relative link without base_url")
)

// Resolve turns link into an absolute URL. Relative links are resolved
// against base; they are an error when base is empty.
func Resolve(base, link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", ErrEmptyLink
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse link %q: %w", link, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	if base == "" {
		return "", fmt.Errorf("%w: %s", ErrRelativeLink, link)
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base_url %q: %w", base, err)
	}
	return b.ResolveReference(ref).String(), nil
}

// Open opens the given URL in the default browser.
func Open(target string) error {
	cmd, err := command(runtime.GOOS, target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", target), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
