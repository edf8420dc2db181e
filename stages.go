package main

import "fmt"

// stage is one step of the program start up. Its cleanup is registered as soon
// as init succeeds, so it runs even when a later stage fails.
type stage struct {
	name    string
	init    func() error
	cleanup func()
}

// runStages runs every stage in order and then loop. Cleanups of the stages
// which were initialized run in reverse order before it returns.
func runStages(stages []stage, loop func() error) error {
	for _, s := range stages {
		if err := s.init(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if s.cleanup != nil {
			defer s.cleanup()
		}
	}

	if err := loop(); err != nil {
		return fmt.Errorf("mainLoop: %w", err)
	}
	return nil
}
