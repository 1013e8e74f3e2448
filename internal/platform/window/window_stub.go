//go:build !ebiten

package window

// Run reports that the window host is not compiled in.
func Run(Options) error {
	return ErrUnavailable
}
