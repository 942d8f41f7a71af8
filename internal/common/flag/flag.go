package flag

// Job carries the command line flags a worker invocation was started with.
type Job struct {
	JobName string
	Version string
	DryRun  bool
	Force   bool
}
