//go:build unix

package cellsize

import (
	"os"

	"golang.org/x/sys/unix"
)

// detect queries TIOCGWINSZ. Returns 0 if the terminal has no pixel size.
func detect() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Xpixel == 0 {
		return 0
	}
	return int(ws.Xpixel) / int(ws.Col)
}
