package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/func/prompt/list"
)

// Required rejects empty or whitespace-only answers.
func Required(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return errors.New("A value is required.") //nolint:stylecheck // shown to the user as is
	}
	return nil
}

// MinSelected returns a validator requiring at least n checked options.
func MinSelected[T any](n int) func([]list.Option[T]) error {
	return func(checked []list.Option[T]) error {
		if len(checked) < n {
			if n == 1 {
				return errors.New("Select at least one option.") //nolint:stylecheck // shown to the user as is
			}
			return fmt.Errorf("Select at least %d options.", n) //nolint:stylecheck // shown to the user as is
		}
		return nil
	}
}
