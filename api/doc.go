// Package api is a client for the remote.it GraphQL API.
//
// Every request is signed with the caller's access key pair via the reqsig
// package; callers only supply credentials and pick operations.
//
//	creds, err := credentials.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := api.New(api.Config{Credentials: creds})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	devices, err := client.GetDevices(ctx, api.GetDevicesOptions{Limit: 100})
//
// The catalog methods (GetDevices, GetJobs, StartJob, ...) cover the
// pre-defined operations. Custom GraphQL operations go through Do:
//
//	resp, err := api.Do[myData](ctx, client, api.Request{
//	    Query: `query { login { id email } }`,
//	})
//
// All methods take a context; cancellation and timeouts behave as with any
// net/http client. The client is safe for concurrent use.
package api
