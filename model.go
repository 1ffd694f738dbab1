package commandline

// ArgumentModel is a single resolved token match: the token that matched a
// declared Argument and, if present, the token that followed it.
//
// ArgumentModel is passed by value and never modified after construction.
type ArgumentModel struct {
	// Key is the matched token text as it appeared in arguments.
	Key string
	// Value is the token following Key. Valid only if HasValue.
	Value string
	// HasValue is true if a value token was bound to Key.
	HasValue bool
}

// NewArgumentModel returns an ArgumentModel with a value.
func NewArgumentModel(key, value string) ArgumentModel {
	return ArgumentModel{Key: key, Value: value, HasValue: true}
}

// NewFlagModel returns an ArgumentModel without a value.
func NewFlagModel(key string) ArgumentModel {
	return ArgumentModel{Key: key}
}

// String implements Stringer on ArgumentModel.
func (am ArgumentModel) String() string {
	if !am.HasValue {
		return am.Key
	}
	return am.Key + " " + am.Value
}
