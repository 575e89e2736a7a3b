package mocktails

import "errors"

var (
	ErrUnknownRecipe     = errors.New("unknown recipe")
	ErrInvalidBottle     = errors.New("invalid bottle")
	ErrEmptyRecipe       = errors.New("recipe has no ingredients")
	ErrInvalidProportion = errors.New("proportion must be positive")
	// ErrNegativeBound means a non-dominant pour would take longer than the whole drink.
	ErrNegativeBound  = errors.New("negative start delay bound")
	ErrAlreadyPriming = errors.New("a pump is already priming")
)
