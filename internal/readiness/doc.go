// Package readiness scores generated tool projects against a fixed battery
// of checklist checks grouped by category (structure, documentation,
// testing, license, packaging, version control). The battery and the
// critical/recommended sets are data tables, so adding a check is a table
// edit. Evaluate is a pure function over a Snapshot of filesystem facts;
// Collect is the only part of the package that touches the disk.
package readiness
