// Package form holds the state a form shares with its fields.
//
// A Context carries the validation errors map and the form language. Fields
// read it through the field.Ancestor interface; only the form writes, and it
// always publishes a whole new snapshot. Server responses are turned into a
// Context with ParseValidationResponse and MapErrorPayload, and a Context can
// survive a redirect through EncodeSnapshot/DecodeSnapshot.
package form
