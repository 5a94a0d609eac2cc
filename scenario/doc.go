/*
Package scenario replays scripted store operations and checks what they observe.

A scenario is a YAML document:

	name: clear-keeps-generator
	config:
	  resetGeneratorsOnClear: false
	steps:
	  - op: add
	    type: Item
	    fields: {Name: Steve}
	  - op: commit
	    expect: {keys: [1]}
	  - op: clear
	  - op: add
	    type: Item
	    fields: {Name: Steve}
	  - op: commit
	    expect: {keys: [2]}

Payloads are built from fields through registry.GetUnmarshalFunc; types with no
registered factory get the field map itself as payload.
*/
package scenario
