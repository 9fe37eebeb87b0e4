package qtypes

// Known reports whether x is one of the operators defined by this version of the schema.
// Decoding keeps unknown numbers as they are, so callers check this at the point of use.
func (x QueryType) Known() bool {
	return x >= QueryType_NULL && x <= QueryType_HAS_ALL_ELEMENTS
}

// TextOnly reports whether x is only meaningful on the String container.
func (x QueryType) TextOnly() bool {
	switch x {
	case QueryType_HAS_PREFIX,
		QueryType_HAS_SUFFIX,
		QueryType_SUBSTRING,
		QueryType_PATTERN,
		QueryType_MIN_LENGTH,
		QueryType_MAX_LENGTH:
		return true
	default:
		return false
	}
}

// QueryTypes returns every known operator in tag order.
func QueryTypes() []QueryType {
	out := make([]QueryType, 0, len(QueryType_name))
	for t := QueryType_NULL; t.Known(); t++ {
		out = append(out, t)
	}
	return out
}

// CheckOperator returns an UNSUPPORTED_OPERATOR error when the operator of f
// cannot be applied: the tag is unknown, or a text operator is set on a
// numeric or timestamp container. Inactive containers always pass.
func CheckOperator(f Filter) error {
	if !Active(f) {
		return nil
	}
	t := f.GetType()
	if !t.Known() {
		return NewUnsupportedOperatorError(RuleKnownOperator, t, "operator is not defined")
	}
	if t.TextOnly() && !IsText(f) {
		return NewUnsupportedOperatorError(RuleTextOperator, t, "operator requires a text container, got %s", f.ProtoReflect().Descriptor().Name())
	}
	return nil
}
