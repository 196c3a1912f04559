// Package directory resolves student identifiers against the university
// directory over its Graph-style HTTP API. The directory is authoritative:
// signup uses the name and email it returns, never user-supplied values.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

// ErrNotFound means the identifier does not exist in the directory, as
// opposed to the directory being unreachable.
var ErrNotFound = errors.New("directory: student not found")

// Student is the directory-resolved identity for a student identifier.
type Student struct {
	StudentID string
	Name      string
	Email     string
}

type Client struct {
	http        *http.Client
	baseURL     string
	accessToken string
	emailDomain string
}

// NewClient builds a directory client from config. Lookup calls are bounded
// by directory.timeout so a slow directory can't stall a signup forever.
func NewClient() *Client {
	timeout := viper.GetDuration("directory.timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		http:        &http.Client{Timeout: timeout},
		baseURL:     viper.GetString("directory.base_url"),
		accessToken: viper.GetString("directory.access_token"),
		emailDomain: viper.GetString("directory.email_domain"),
	}
}

type directoryUser struct {
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	EmployeeID        string `json:"employeeId"`
}

// LookupStudent resolves a student id to its directory record. Accounts are
// addressed by principal name <studentID>@<emailDomain>.
func (c *Client) LookupStudent(ctx context.Context, studentID string) (*Student, error) {
	url := fmt.Sprintf("%s/users/%s@%s?$select=displayName,mail,userPrincipalName,employeeId",
		c.baseURL, studentID, c.emailDomain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to build request, %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory: lookup failed, %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("directory: unexpected status %d", resp.StatusCode)
	}

	var u directoryUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("directory: failed to decode response, %w", err)
	}

	email := u.Mail
	if email == "" {
		email = u.UserPrincipalName
	}

	id := u.EmployeeID
	if id == "" {
		id = studentID
	}

	return &Student{
		StudentID: id,
		Name:      u.DisplayName,
		Email:     email,
	}, nil
}
