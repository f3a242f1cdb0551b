package mummymaze

import "errors"

var (
	ErrEmptyMap          = errors.New("mummymaze: map has no header line")
	ErrInvalidHeader     = errors.New("mummymaze: map header must be \"rows cols\"")
	ErrTruncatedGrid     = errors.New("mummymaze: map grid is shorter than rows/cols declare")
	ErrTooManyCharacters = errors.New("mummymaze: map has more than one player or more than four NPCs")
	ErrNoPlayer          = errors.New("mummymaze: map has no player")
)
