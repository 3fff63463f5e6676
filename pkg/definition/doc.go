// Package definition loads YAML form definitions and builds them into widgets
// and a seeded form context.
//
//	action: /signup
//	lang: nl
//	fields:
//	  - kind: text-field
//	    name: email
//	    label: E-mail
//
// Build constructs every field eagerly, so a field without a name fails here
// rather than at render time.
package definition
