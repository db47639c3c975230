//go:build !unix

package cellsize

func detect() int {
	return 0
}
