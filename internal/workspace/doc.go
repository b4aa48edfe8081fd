// Package workspace initializes and inspects the per-project directories
// behind the guided tool-creation workflow: the assistant config dir with
// its prompts, commands, and settings, and the workspace dir that holds
// tool projects, the evaluation history, and the config marker.
package workspace
