// SPDX-License-Identifier: MPL-2.0

// Package runner applies an envspec Spec step by step.
//
// Steps run sequentially in declaration order. Each step kind is handled by
// an Executor looked up in a Registry. The working directory and the run
// environment are carried in an explicit State value: executors receive the
// current State and return the next one, so a run never changes the process
// environment or working directory.
//
// Run produces a Report with one StepResult per step that was reached. A
// failing required step halts the run unless Options.ContinueOnError is set.
// In dry-run mode every reached step is reported as Skipped and no executor is
// called.
package runner
