package canvas

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderASCII uses plain ASCII characters (+, -, |) and is safe for any
	// output.
	BorderASCII BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	default:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	}
}

// ParseBorder returns the border style with the given name. Unknown names
// yield BorderASCII and false.
func ParseBorder(name string) (BorderStyle, bool) {
	switch name {
	case "ascii", "":
		return BorderASCII, true
	case "single":
		return BorderSingle, true
	case "rounded":
		return BorderRounded, true
	case "double":
		return BorderDouble, true
	default:
		return BorderASCII, false
	}
}

// DrawBox draws a box outline. Boxes narrower or shorter than two cells are
// drawn as a filled block so that small items stay visible. Parts outside
// the canvas are clipped.
func DrawBox(c *Canvas, b Box, border BorderStyle, tag int) {
	if b.IsEmpty() {
		return
	}
	if b.Width < 2 || b.Height < 2 {
		c.Fill(b, '#', tag)
		return
	}

	chars := border.Chars()
	left, right := b.X, b.Right()-1
	top, bottom := b.Y, b.Bottom()-1

	c.SetRune(left, top, chars.TopLeft, tag)
	c.SetRune(right, top, chars.TopRight, tag)
	c.SetRune(left, bottom, chars.BottomLeft, tag)
	c.SetRune(right, bottom, chars.BottomRight, tag)

	for x := left + 1; x < right; x++ {
		c.SetRune(x, top, chars.Top, tag)
		c.SetRune(x, bottom, chars.Bottom, tag)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetRune(left, y, chars.Left, tag)
		c.SetRune(right, y, chars.Right, tag)
	}
}
