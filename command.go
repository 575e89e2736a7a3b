package mocktails

import (
	"fmt"
	"strconv"
)

// NumBottles is the number of pump relays on the rig.
const NumBottles = 8

// Command is a single text command understood by the relay board.
type Command string

const (
	relayOn  = 'r'
	relayOff = 'l'
)

func relayCommand(bottle int, action byte) Command {
	return Command("b" + strconv.Itoa(bottle) + string(action) + "!")
}

// RelayOn opens the relay for bottle.
func RelayOn(bottle int) Command {
	return relayCommand(bottle, relayOn)
}

// RelayOff closes the relay for bottle.
func RelayOff(bottle int) Command {
	return relayCommand(bottle, relayOff)
}

func (c Command) Bytes() []byte {
	return []byte(c)
}

func (c Command) String() string {
	return string(c)
}

func ValidateBottle(bottle int) error {
	if bottle < 0 || bottle >= NumBottles {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidBottle, bottle, NumBottles)
	}
	return nil
}
