package gamebridge

import "fmt"

// Validate checks the contract against the enabled capabilities.
//
// Every text capacity the bridge will terminate must reserve at least the
// terminator byte, and capacities backing optional capabilities are only
// required while the capability is enabled. A non-nil result marks the
// logic's declaration as unusable; the bridge treats that as a
// configuration defect, not a per-call error.
func (c CapacityContract) Validate(caps CapabilitySet) error {
	if c.StateLen < 1 {
		return fmt.Errorf("state text capacity must not be 0")
	}
	if c.MoveLen < 1 {
		return fmt.Errorf("move text capacity must not be 0")
	}
	if caps.Options && c.OptionsLen < 1 {
		return fmt.Errorf("options capability enabled with options text capacity 0")
	}
	if caps.Print && c.PrintLen < 1 {
		return fmt.Errorf("print capability enabled with print text capacity 0")
	}
	return nil
}
