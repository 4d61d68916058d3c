package main

import (
	"fmt"
	"net/http"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/utils"
	"github.com/scies/greenchem/models"
)

// apiClient talks to the greenchem REST API, carrying the bearer token
// obtained at login on every subsequent request.
type apiClient struct {
	http    *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

func newAPIClient(baseURL string, logger *logger.Logger) *apiClient {
	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &apiClient{
		http:    client,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (c *apiClient) Login(username, password string) error {
	var loginResponse models.LoginResponse

	resp, err := c.http.R().
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&loginResponse).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("login rejected: %s", resp.Status())
	}

	c.http.SetAuthToken(loginResponse.Token)
	c.logger.Debug().Str("username", loginResponse.Username).Msg("logged in")

	return nil
}

func (c *apiClient) Search(cas, purpose string) (models.SearchResponse, error) {
	var searchResponse models.SearchResponse

	resp, err := c.http.R().
		SetBody(models.SearchRequest{CASNumber: cas, UsagePurpose: purpose}).
		SetResult(&searchResponse).
		Post("/api/search")
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.SearchResponse{}, fmt.Errorf("search rejected: %s: %s", resp.Status(), resp.String())
	}

	return searchResponse, nil
}

func (c *apiClient) ListUsers() ([]models.UserSummary, error) {
	var users []models.UserSummary

	resp, err := c.http.R().
		SetResult(&users).
		Get("/api/admin/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("list users rejected: %s", resp.Status())
	}

	return users, nil
}

func (c *apiClient) CreateUser(request models.CreateUserRequest) (models.UserSummary, error) {
	var created models.UserSummary

	resp, err := c.http.R().
		SetBody(request).
		SetResult(&created).
		Post("/api/admin/users")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("create user request: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return models.UserSummary{}, fmt.Errorf("create user rejected: %s: %s", resp.Status(), resp.String())
	}

	return created, nil
}

func (c *apiClient) DeleteUser(username string) error {
	resp, err := c.http.R().
		Delete("/api/admin/users/" + username)
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("delete user rejected: %s: %s", resp.Status(), resp.String())
	}

	return nil
}

func (c *apiClient) ResetPassword(username, newPassword string) error {
	resp, err := c.http.R().
		SetBody(models.ResetPasswordRequest{NewPassword: newPassword}).
		Post("/api/admin/users/" + username + "/password")
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("reset password rejected: %s: %s", resp.Status(), resp.String())
	}

	return nil
}

func (c *apiClient) ListLogs(start, end string) ([]models.QueryLogEntry, error) {
	var entries []models.QueryLogEntry

	resp, err := c.http.R().
		SetQueryParams(logRangeParams(start, end)).
		SetResult(&entries).
		Get("/api/admin/logs")
	if err != nil {
		return nil, fmt.Errorf("list logs request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("list logs rejected: %s: %s", resp.Status(), resp.String())
	}

	return entries, nil
}

func (c *apiClient) ExportLogs(start, end, outputPath string) error {
	resp, err := c.http.R().
		SetQueryParams(logRangeParams(start, end)).
		SetOutput(outputPath).
		Get("/api/admin/logs/export")
	if err != nil {
		return fmt.Errorf("export logs request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("export logs rejected: %s", resp.Status())
	}

	return nil
}

func (c *apiClient) LogStats(start, end string) (models.QueryLogStats, error) {
	var stats models.QueryLogStats

	resp, err := c.http.R().
		SetQueryParams(logRangeParams(start, end)).
		SetResult(&stats).
		Get("/api/admin/logs/stats")
	if err != nil {
		return models.QueryLogStats{}, fmt.Errorf("log stats request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.QueryLogStats{}, fmt.Errorf("log stats rejected: %s: %s", resp.Status(), resp.String())
	}

	return stats, nil
}

func logRangeParams(start, end string) map[string]string {
	params := make(map[string]string)
	if start != "" {
		params["start"] = start
	}
	if end != "" {
		params["end"] = end
	}
	return params
}
