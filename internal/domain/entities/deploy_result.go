package entities

import "fmt"

// DeployResult is the status reported by the repository for one upload.
type DeployResult struct {
	Code    int
	Message string
}

// StatusLine renders the result as "<code> <message>".
func (r DeployResult) StatusLine() string {
	return fmt.Sprintf("%d %s", r.Code, r.Message)
}

// Succeeded reports whether the repository accepted the artifact.
func (r DeployResult) Succeeded() bool {
	return r.Code >= 200 && r.Code < 300
}

// Rejection records an upload the repository refused.
type Rejection struct {
	Target UploadTarget
	Result DeployResult
}

// DeploySummary aggregates the outcome of a deploy run.
type DeploySummary struct {
	Found    int
	Uploaded int
	Rejected []Rejection
	DryRun   bool
}
