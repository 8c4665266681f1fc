package piano

import (
	"fmt"
)

// Note is a natural note name, A through G.
type Note byte

const (
	NoteA Note = 'A'
	NoteB Note = 'B'
	NoteC Note = 'C'
	NoteD Note = 'D'
	NoteE Note = 'E'
	NoteF Note = 'F'
	NoteG Note = 'G'
)

func (n Note) String() string {
	return string(rune(n))
}

// HasSharp reports whether a black key follows n on a piano. B and E have
// none; every other natural note is followed by its sharp.
func (n Note) HasSharp() bool {
	return n != NoteB && n != NoteE
}

// ParseNote parses a natural note name, "A" through "G", case-insensitive.
func ParseNote(s string) (Note, error) {
	if len(s) == 1 {
		b := s[0] &^ 0x20
		if b >= 'A' && b <= 'G' {
			return Note(b), nil
		}
	}
	return 0, fmt.Errorf("invalid note %q", s)
}

var naturals = [7]Note{NoteA, NoteB, NoteC, NoteD, NoteE, NoteF, NoteG}

// Cadence is the repeating 7-note pattern the white keys are named after.
// Its job in the layout is deciding which white-key seams host a black
// key.
type Cadence [7]Note

// CadenceStartingOn returns the natural-note cycle rotated to begin on the
// given note. Keyboards conventionally start on A (the full 88-key piano)
// or on C. Notes outside A through G fall back to A.
func CadenceStartingOn(start Note) Cadence {
	idx := 0
	for i, n := range naturals {
		if n == start {
			idx = i
			break
		}
	}
	var c Cadence
	for i := range c {
		c[i] = naturals[(idx+i)%7]
	}
	return c
}

// At returns the note of white key i. The cadence repeats every 7 keys.
func (c Cadence) At(i int) Note {
	return c[i%7]
}
