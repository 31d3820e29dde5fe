package validator

// Validator collects field errors keyed by field name.
type Validator struct {
	Errors map[string]string
}

// New returns an empty Validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true when no errors were recorded
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for key unless key already has one
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds message for key when ok is false
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}
