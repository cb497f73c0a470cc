package prompt

import (
	"context"
	"fmt"
)

// Scripted replays canned answers in order. It records every prompt message
// and info line so tests can assert on the conversation.
type Scripted struct {
	Inputs   []string
	Selects  []int
	Confirms []bool

	Prompts []string
	Infos   []string

	inputPos   int
	selectPos  int
	confirmPos int
}

var _ Driver = (*Scripted)(nil)

func (s *Scripted) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.Prompts = append(s.Prompts, cfg.Message)
	if s.inputPos >= len(s.Inputs) {
		return "", fmt.Errorf("%w: input %q", ErrNoScript, cfg.Message)
	}
	val := s.Inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *Scripted) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.Prompts = append(s.Prompts, cfg.Message)
	if s.confirmPos >= len(s.Confirms) {
		return false, fmt.Errorf("%w: confirm %q", ErrNoScript, cfg.Message)
	}
	val := s.Confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *Scripted) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.Prompts = append(s.Prompts, cfg.Message)
	if s.selectPos >= len(s.Selects) {
		return -1, fmt.Errorf("%w: select %q", ErrNoScript, cfg.Message)
	}
	val := s.Selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *Scripted) Info(_ context.Context, msg string) error {
	s.Infos = append(s.Infos, msg)
	return nil
}
