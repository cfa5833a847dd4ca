// Package credentials loads remote.it access key pairs from the places the
// remote.it tooling stores them.
//
// The canonical location is the INI-format file ~/.remoteit/credentials,
// which holds one or more named profiles:
//
//	[default]
//	R3_ACCESS_KEY_ID=AKIDEXAMPLE
//	R3_SECRET_ACCESS_KEY=c2VjcmV0MTIz
//
// Secret access keys are stored base64-encoded. A profile's secret is
// validated when the profile is retrieved, not when the file is parsed, so a
// broken profile does not prevent use of the others.
//
//	profiles, err := credentials.Load(credentials.LoadOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	creds, err := profiles.Profile("default")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Credentials can also come from the environment (FromEnv) or be constructed
// directly (New) when the caller manages storage itself.
package credentials
