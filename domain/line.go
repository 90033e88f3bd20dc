package domain

import "slices"

// LineCapacity is the hard cap of occupants per line.
const LineCapacity = 2

type LineID uint16

type JoinOutcome int

const (
	FirstOccupant JoinOutcome = iota
	SecondOccupant
	AlreadyPresent
	LineFull
)

func (o JoinOutcome) String() string {
	switch o {
	case FirstOccupant:
		return "first_occupant"
	case SecondOccupant:
		return "second_occupant"
	case AlreadyPresent:
		return "already_present"
	case LineFull:
		return "line_full"
	default:
		return "unknown"
	}
}

// Occupancy is the outcome of a join together with the occupant list
// observed in the same atomic read-modify-write.
type Occupancy struct {
	Outcome   JoinOutcome
	Occupants []Token
}

// Partner returns the occupant listed next to token, if any.
func (o Occupancy) Partner(token Token) (Token, bool) {
	return PartnerOf(o.Occupants, token)
}

func PartnerOf(occupants []Token, token Token) (Token, bool) {
	for _, occupant := range occupants {
		if occupant != token {
			return occupant, true
		}
	}
	return Token{}, false
}

func IsOccupant(occupants []Token, token Token) bool {
	return slices.Contains(occupants, token)
}
