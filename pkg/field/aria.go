package field

// errorsSuffix is appended to a field id to reference its error block.
const errorsSuffix = "-errors"

// ErrorsID returns the id of the element listing a field's errors.
func ErrorsID(computedID string) string {
	return computedID + errorsSuffix
}

// DescribedBy composes the aria-describedby value. The error reference
// precedes the consumer value and is always followed by a single space, so an
// empty consumer value yields "<id>-errors ".
func DescribedBy(consumerValue string, displayErrors, hasErrors bool, computedID string) string {
	if !displayErrors || !hasErrors {
		return consumerValue
	}
	return ErrorsID(computedID) + " " + consumerValue
}
