package term

import "golang.org/x/term"

// GetSize reports the size of the console referred to by fd
func GetSize(fd int) (Size, error) {
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return Size{}, err
	}
	return Size{
		Cols: cols,
		Rows: rows,
	}, nil
}
