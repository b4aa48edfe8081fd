// Package metadata handles the metadata.json tracking file kept at the
// root of every tool directory. It provides typed load/save, JSON Schema
// validation against the embedded schema, and the decision log updated
// after solution discovery.
package metadata
