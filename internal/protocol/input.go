package protocol

import (
	"context"
	"errors"
	"fmt"
)

// ErrInputCancelled is returned when the user cancels any prompt of a batch.
var ErrInputCancelled = errors.New("input aborted")

// CollectUserInput prompts once per label, in order, and waits for each answer
// before asking the next. The first cancelled or empty answer aborts the batch and
// everything collected so far is dropped.
func CollectUserInput(ctx context.Context, p Prompter, labels []string) ([]string, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no input prompter available", ErrInputCancelled)
	}

	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInputCancelled, err)
		}

		answer, err := p.Prompt(ctx, InputRequest{
			Prompt:      "Enter a " + label,
			Placeholder: label,
		})
		if err != nil {
			if errors.Is(err, ErrInputCancelled) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrInputCancelled, err)
		}
		if answer == "" {
			return nil, ErrInputCancelled
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
