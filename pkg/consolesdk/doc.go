/*
Package consolesdk provides a client SDK for the Novalend admin console API.

# Overview

The consolesdk package implements a typed client for the console service. It
provides both unauthenticated operations (via SDKClient) and authenticated
operations (via Session).

# SDKClient vs Session

The package is organized around two main types:

  - SDKClient: Provides unauthenticated operations and creates authenticated sessions
  - Session: Provides authenticated operations scoped to a bearer token

Create an SDKClient to interact with public endpoints and log in:

	client := consolesdk.NewSDKClient("https://console.example.com")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Authenticate to create a session
	session, err := client.Login(ctx, email, password)

Use a Session for authenticated operations:

	// List users with filters and pagination
	page, err := session.ListUsers(ctx, consolesdk.ListUsersOptions{Page: 1, PageSize: 10})

	// Fetch one user
	user, err := session.GetUser(ctx, "ls-0042")

	// Dashboard stats
	stats, err := session.GetUserStats(ctx)

# MFA

When the admin account has TOTP enabled, Login returns *MFARequiredError
carrying a short-lived mfa_token. Complete the challenge to get a session:

	session, err := client.Login(ctx, email, password)
	if mfaErr, ok := err.(*consolesdk.MFARequiredError); ok {
		session, err = client.CompleteMFA(ctx, mfaErr.MFAToken, otpCode)
	}

# Error Handling

API errors are returned as *APIError with the HTTP status code and the
service's error code, so callers can branch on failure modes:

	user, err := session.GetUser(ctx, id)
	var apiErr *consolesdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// unknown user id
	}
*/
package consolesdk
