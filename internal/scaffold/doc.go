// Package scaffold generates tool directories from embedded templates. It
// powers the "toolforge new" command, producing the tracking notes
// (requirement analysis, development log, evaluation) and a Python
// project skeleton, with schema-validated metadata written alongside.
package scaffold
