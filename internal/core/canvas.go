package core

// Canvas is the drawing surface a host hands to scenes once per frame.
// All coordinates are logical pixels in the configured window size;
// the host scales them to terminal cells or screen pixels.
type Canvas interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// Clear erases the previous frame.
	Clear()

	// FillRect draws a solid rectangle.
	FillRect(r Rect, c Color)

	// FillCircle draws a solid circle.
	FillCircle(ci Circle, c Color)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)

	// TextWidth returns the logical width the text would occupy.
	TextWidth(text string) float64
}
