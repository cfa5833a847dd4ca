package api

import "context"

// The pre-defined operation catalog. Each method wraps one GraphQL operation
// with a plain request/response record pair; anything not covered here can be
// issued with Do directly.

const getFilesQuery = `query GetFiles {
  login {
    files {
      id
      name
      executable
      shortDesc
      longDesc
      versions {
        id
        version
      }
    }
  }
}`

type filesData struct {
	Login struct {
		Files []File `json:"files"`
	} `json:"login"`
}

// GetFiles lists the files uploaded to remote.it.
func (c *Client) GetFiles(ctx context.Context) ([]File, error) {
	resp, err := Do[filesData](ctx, c, Request{Query: getFilesQuery})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return data.Login.Files, nil
}

const deleteFileQuery = `mutation DeleteFile($fileId: ID!) {
  deleteFile(fileId: $fileId)
}`

// DeleteFile deletes a file and all of its versions.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	resp, err := Do[struct{}](ctx, c, Request{
		Query:     deleteFileQuery,
		Variables: map[string]any{"fileId": fileID},
	})
	if err != nil {
		return err
	}

	_, err = dataOrError(resp)

	return err
}

const deleteFileVersionQuery = `mutation DeleteFileVersion($fileVersionId: ID!) {
  deleteFileVersion(fileVersionId: $fileVersionId)
}`

// DeleteFileVersion deletes a single version of a file, leaving the other
// versions in place.
func (c *Client) DeleteFileVersion(ctx context.Context, fileVersionID string) error {
	resp, err := Do[struct{}](ctx, c, Request{
		Query:     deleteFileVersionQuery,
		Variables: map[string]any{"fileVersionId": fileVersionID},
	})
	if err != nil {
		return err
	}

	_, err = dataOrError(resp)

	return err
}

const startJobQuery = `mutation StartJob($fileId: ID!, $deviceIds: [ID!]!, $arguments: [ArgumentInput!]) {
  startJob(fileId: $fileId, deviceIds: $deviceIds, arguments: $arguments) {
    id
  }
}`

// StartJobInput describes a scripting job to start: the executable file and
// the devices to run it on.
type StartJobInput struct {
	FileID    string
	DeviceIDs []string
	Arguments []Argument
}

type startJobData struct {
	StartJob Job `json:"startJob"`
}

// StartJob starts a scripting job and returns it. The file must be an
// executable; get file and device IDs from GetFiles and GetDevices.
func (c *Client) StartJob(ctx context.Context, input StartJobInput) (*Job, error) {
	variables := map[string]any{
		"fileId":    input.FileID,
		"deviceIds": input.DeviceIDs,
	}
	if len(input.Arguments) > 0 {
		variables["arguments"] = input.Arguments
	}

	resp, err := Do[startJobData](ctx, c, Request{
		Query:     startJobQuery,
		Variables: variables,
	})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return &data.StartJob, nil
}

const cancelJobQuery = `mutation CancelJob($jobId: ID!) {
  cancelJob(jobId: $jobId)
}`

// CancelJob cancels a job. See the remote.it documentation for which job
// states allow cancellation.
func (c *Client) CancelJob(ctx context.Context, jobID string) error {
	resp, err := Do[struct{}](ctx, c, Request{
		Query:     cancelJobQuery,
		Variables: map[string]any{"jobId": jobID},
	})
	if err != nil {
		return err
	}

	_, err = dataOrError(resp)

	return err
}

const getJobsQuery = `query GetJobs($orgId: ID, $limit: Int, $jobIds: [ID!], $statuses: [JobStatusEnum!]) {
  login {
    account(id: $orgId) {
      jobs(ids: $jobIds, statuses: $statuses, size: $limit) {
        items {
          id
          status
          created
          file {
            id
            name
          }
          jobDevices {
            id
            status
            device {
              id
              name
            }
          }
        }
      }
    }
  }
}`

// GetJobsOptions filters the jobs returned by GetJobs. Zero values leave the
// corresponding filter unset. Listing without a Limit can take a long time.
type GetJobsOptions struct {
	OrgID    string
	Limit    int
	JobIDs   []string
	Statuses []JobStatus
}

type jobsData struct {
	Login struct {
		Account struct {
			Jobs struct {
				Items []Job `json:"items"`
			} `json:"jobs"`
		} `json:"account"`
	} `json:"login"`
}

// GetJobs lists scripting jobs, optionally filtered.
func (c *Client) GetJobs(ctx context.Context, opts GetJobsOptions) ([]Job, error) {
	variables := map[string]any{}
	if opts.OrgID != "" {
		variables["orgId"] = opts.OrgID
	}
	if opts.Limit > 0 {
		variables["limit"] = opts.Limit
	}
	if len(opts.JobIDs) > 0 {
		variables["jobIds"] = opts.JobIDs
	}
	if len(opts.Statuses) > 0 {
		variables["statuses"] = opts.Statuses
	}

	resp, err := Do[jobsData](ctx, c, Request{
		Query:     getJobsQuery,
		Variables: variables,
	})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return data.Login.Account.Jobs.Items, nil
}

const getOwnedOrganizationQuery = `query GetOwnedOrganization {
  login {
    organization {
      id
      name
      created
    }
  }
}`

type ownedOrganizationData struct {
	Login struct {
		Organization *Organization `json:"organization"`
	} `json:"login"`
}

// GetOwnedOrganization returns the organization owned by the current user,
// or nil if none exists.
func (c *Client) GetOwnedOrganization(ctx context.Context) (*Organization, error) {
	resp, err := Do[ownedOrganizationData](ctx, c, Request{Query: getOwnedOrganizationQuery})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return data.Login.Organization, nil
}

const getOrganizationSelfMembershipQuery = `query GetOrganizationSelfMembership {
  login {
    membership {
      role
      created
      organization {
        id
        name
      }
    }
  }
}`

type selfMembershipData struct {
	Login struct {
		Membership []Membership `json:"membership"`
	} `json:"login"`
}

// GetOrganizationSelfMembership lists the organizations the current user is
// a member of.
func (c *Client) GetOrganizationSelfMembership(ctx context.Context) ([]Membership, error) {
	resp, err := Do[selfMembershipData](ctx, c, Request{Query: getOrganizationSelfMembershipQuery})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return data.Login.Membership, nil
}

const getApplicationTypesQuery = `query GetApplicationTypes {
  applicationTypes {
    id
    name
    port
    protocol
    description
  }
}`

type applicationTypesData struct {
	ApplicationTypes []ApplicationType `json:"applicationTypes"`
}

// GetApplicationTypes lists the service application types known to
// remote.it.
func (c *Client) GetApplicationTypes(ctx context.Context) ([]ApplicationType, error) {
	resp, err := Do[applicationTypesData](ctx, c, Request{Query: getApplicationTypesQuery})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return data.ApplicationTypes, nil
}

const getDevicesQuery = `query GetDevices($orgId: ID, $limit: Int, $offset: Int) {
  login {
    account(id: $orgId) {
      devices(size: $limit, from: $offset) {
        total
        items {
          id
          name
          state
          created
          services {
            id
            name
          }
        }
      }
    }
  }
}`

// GetDevicesOptions controls pagination and organization context for
// GetDevices.
type GetDevicesOptions struct {
	OrgID  string
	Limit  int
	Offset int
}

// DeviceList is one page of devices plus the total count for pagination.
type DeviceList struct {
	Total int      `json:"total"`
	Items []Device `json:"items"`
}

type devicesData struct {
	Login struct {
		Account struct {
			Devices DeviceList `json:"devices"`
		} `json:"account"`
	} `json:"login"`
}

// GetDevices lists devices, paginated.
func (c *Client) GetDevices(ctx context.Context, opts GetDevicesOptions) (*DeviceList, error) {
	variables := map[string]any{}
	if opts.OrgID != "" {
		variables["orgId"] = opts.OrgID
	}
	if opts.Limit > 0 {
		variables["limit"] = opts.Limit
	}
	if opts.Offset > 0 {
		variables["offset"] = opts.Offset
	}

	resp, err := Do[devicesData](ctx, c, Request{
		Query:     getDevicesQuery,
		Variables: variables,
	})
	if err != nil {
		return nil, err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return nil, err
	}

	return &data.Login.Account.Devices, nil
}

const getDevicesCSVQuery = `query GetDevicesCSV($orgId: ID) {
  login {
    account(id: $orgId) {
      devicesCSV {
        url
      }
    }
  }
}`

type devicesCSVData struct {
	Login struct {
		Account struct {
			DevicesCSV struct {
				URL string `json:"url"`
			} `json:"devicesCSV"`
		} `json:"account"`
	} `json:"login"`
}

// GetDevicesCSV returns a download link for a CSV export of the device list.
func (c *Client) GetDevicesCSV(ctx context.Context, orgID string) (string, error) {
	variables := map[string]any{}
	if orgID != "" {
		variables["orgId"] = orgID
	}

	resp, err := Do[devicesCSVData](ctx, c, Request{
		Query:     getDevicesCSVQuery,
		Variables: variables,
	})
	if err != nil {
		return "", err
	}

	data, err := dataOrError(resp)
	if err != nil {
		return "", err
	}

	return data.Login.Account.DevicesCSV.URL, nil
}
