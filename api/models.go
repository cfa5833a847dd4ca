package api

// File is a file uploaded to remote.it, either an executable script or an
// asset used by scripts.
type File struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Executable bool          `json:"executable"`
	ShortDesc  string        `json:"shortDesc"`
	LongDesc   string        `json:"longDesc"`
	Versions   []FileVersion `json:"versions"`
}

// FileVersion is one uploaded version of a File.
type FileVersion struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

// JobStatus enumerates scripting job states.
type JobStatus string

const (
	JobStatusWaiting   JobStatus = "WAITING"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusSuccess   JobStatus = "SUCCESS"
	JobStatusFailed    JobStatus = "FAILED"
	JobStatusCancelled JobStatus = "CANCELLED"
)

// Job is a scripting job started on one or more devices.
type Job struct {
	ID         string      `json:"id"`
	Status     JobStatus   `json:"status"`
	Created    string      `json:"created"`
	File       *File       `json:"file,omitempty"`
	JobDevices []JobDevice `json:"jobDevices"`
}

// JobDevice is the per-device execution state of a Job.
type JobDevice struct {
	ID     string    `json:"id"`
	Status JobStatus `json:"status"`
	Device Device    `json:"device"`
}

// Device is a device registered with remote.it.
type Device struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	State    string    `json:"state"`
	Created  string    `json:"created"`
	Services []Service `json:"services"`
}

// Service is a service exposed by a Device.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Organization is a remote.it organization.
type Organization struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// Membership is the current user's membership in an Organization.
type Membership struct {
	Role         string       `json:"role"`
	Created      string       `json:"created"`
	Organization Organization `json:"organization"`
}

// ApplicationType describes a service application type known to remote.it.
type ApplicationType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Port        int    `json:"port"`
	Protocol    string `json:"protocol"`
	Description string `json:"description"`
}

// Argument is a named argument passed to an executable script when starting
// a job.
type Argument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
