package rules

// Mock is a mock implementation of the Interface for testing
type Mock struct {
	IsGenericLabelFunc func(name string) bool
	AccountEffectFunc  func(accountName, recordName string) Effect
}

// IsGenericLabel implements Interface.IsGenericLabel
func (m *Mock) IsGenericLabel(name string) bool {
	if m.IsGenericLabelFunc != nil {
		return m.IsGenericLabelFunc(name)
	}
	return false
}

// AccountEffect implements Interface.AccountEffect
func (m *Mock) AccountEffect(accountName, recordName string) Effect {
	if m.AccountEffectFunc != nil {
		return m.AccountEffectFunc(accountName, recordName)
	}
	return EffectNone
}
