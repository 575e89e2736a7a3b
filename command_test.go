package mocktails_test

import (
	"errors"
	"github.com/jt05610/mocktails"
	"testing"
)

func TestRelayCommands(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    mocktails.Command
		expect string
	}{
		{"on0", mocktails.RelayOn(0), "b0r!"},
		{"off0", mocktails.RelayOff(0), "b0l!"},
		{"on7", mocktails.RelayOn(7), "b7r!"},
		{"off3", mocktails.RelayOff(3), "b3l!"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.cmd.String() != tc.expect {
				t.Errorf("expected %s, got %s", tc.expect, tc.cmd)
			}
			if string(tc.cmd.Bytes()) != tc.expect {
				t.Errorf("expected bytes %s, got %s", tc.expect, tc.cmd.Bytes())
			}
		})
	}
}

func TestValidateBottle(t *testing.T) {
	for b := 0; b < mocktails.NumBottles; b++ {
		if err := mocktails.ValidateBottle(b); err != nil {
			t.Errorf("bottle %d: unexpected error %v", b, err)
		}
	}
	for _, b := range []int{-1, mocktails.NumBottles, 99} {
		err := mocktails.ValidateBottle(b)
		if !errors.Is(err, mocktails.ErrInvalidBottle) {
			t.Errorf("bottle %d: expected ErrInvalidBottle, got %v", b, err)
		}
	}
}
