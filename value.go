package argolis

// Value is an optional option value. Zero Value is not set
type Value struct {
	value string
	isSet bool
}

func NewValue(value string) Value {
	return Value{value: value, isSet: true}
}

func (v Value) Get() (value string, isSet bool) {
	return v.value, v.isSet
}

func (v Value) IsSet() bool {
	return v.isSet
}

// String returns the value or empty string if it's not set
func (v Value) String() string {
	return v.value
}

// Or returns the value if it's set, def otherwise.
// An empty value given as "--name=" is set
func (v Value) Or(def string) string {
	if v.isSet {
		return v.value
	}
	return def
}
