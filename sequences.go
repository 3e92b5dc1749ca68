package ly

import "fmt"

const (
	// cursor position, 1-indexed row;col
	cup = "\x1b[%d;%dH"

	fgSet    = "\x1b[3%dm"
	bgSet    = "\x1b[4%dm"
	fgRGBSet = "\x1b[38;2;%d;%d;%dm"
	bgRGBSet = "\x1b[48;2;%d;%d;%dm"
	fgReset  = "\x1b[39m"
	bgReset  = "\x1b[49m"
	sgrReset = "\x1b[m"

	// Synchronized Update Mode
	synchronizedUpdate = 2026
)

func decset(mode int) string {
	return fmt.Sprintf("\x1b[?%dh", mode)
}

func decrst(mode int) string {
	return fmt.Sprintf("\x1b[?%dl", mode)
}
