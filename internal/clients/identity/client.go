// Package identity provides the client for the external identity provider
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rapicredit/backoffice/internal/common"
	"github.com/rapicredit/backoffice/internal/interfaces"
	"github.com/rapicredit/backoffice/internal/models"
)

const DefaultTimeout = 15 * time.Second

// EmployeeRoster is the subset of the core API the identity client needs
// for the secondary authorization check after login.
type EmployeeRoster interface {
	ListEmpleados(ctx context.Context) ([]models.Empleado, error)
}

// Client authenticates staff against the identity provider and holds the
// resulting session. It implements interfaces.TokenSource: expired or
// absent sessions yield an empty token and calls proceed
// unauthenticated, leaving rejection to the upstream API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	roster     EmployeeRoster

	mu      sync.Mutex
	session *models.Sesion
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRoster sets the employee roster used for the post-login
// authorization check. Without a roster the check is skipped.
func WithRoster(roster EmployeeRoster) ClientOption {
	return func(c *Client) {
		c.roster = roster
	}
}

// NewClient creates a new identity provider client
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Login exchanges credentials for a bearer token, then verifies the
// account against the employee roster. An unknown or inactive employee
// forces a local sign-out even though the identity provider accepted
// the credentials.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Sesion, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login payload: %w", err)
	}

	url := c.baseURL + "/v1/sesiones"
	if c.apiKey != "" {
		url += "?key=" + c.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("email", email).Msg("Login rejected by identity provider")
		return nil, fmt.Errorf("credenciales inválidas")
	}

	var loginResp struct {
		Token   string `json:"token"`
		IDToken string `json:"idToken"` // legacy field name
	}
	if err := json.Unmarshal(body, &loginResp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	token := loginResp.Token
	if token == "" {
		token = loginResp.IDToken
	}
	if token == "" {
		return nil, fmt.Errorf("identity provider returned no token")
	}

	session := &models.Sesion{
		Token:     token,
		Email:     email,
		ExpiresAt: tokenExpiry(token),
	}

	// Secondary authorization: the identity provider only proves who the
	// caller is; the employee roster decides whether they may work here.
	if c.roster != nil {
		empleado, err := c.lookupEmpleado(ctx, session, email)
		if err != nil {
			c.SignOut()
			return nil, err
		}
		session.Empleado = *empleado
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	c.logger.Info().Str("email", email).Msg("Staff login")
	return session, nil
}

func (c *Client) lookupEmpleado(ctx context.Context, session *models.Sesion, email string) (*models.Empleado, error) {
	ctx = common.WithStaffContext(ctx, &common.StaffContext{Token: session.Token, Email: email})

	empleados, err := c.roster.ListEmpleados(ctx)
	if err != nil {
		return nil, fmt.Errorf("no se pudo verificar el estado del empleado: %w", err)
	}

	for i := range empleados {
		if strings.EqualFold(empleados[i].Email, email) {
			if !empleados[i].Activo {
				return nil, fmt.Errorf("empleado inactivo")
			}
			return &empleados[i], nil
		}
	}
	return nil, fmt.Errorf("empleado no autorizado")
}

// SignOut drops the cached session. No remote call is made; the token
// simply stops being attached to upstream requests.
func (c *Client) SignOut() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
}

// Token implements interfaces.TokenSource.
func (c *Client) Token(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.Expired() {
		return ""
	}
	return c.session.Token
}

// tokenExpiry reads the exp claim from a JWT without verifying the
// signature; verification belongs to the issuer and the upstream API.
// Tokens without a readable exp claim are treated as never-expiring
// locally and left to upstream rejection.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Ensure Client implements both contracts
var (
	_ interfaces.IdentityClient = (*Client)(nil)
	_ interfaces.TokenSource    = (*Client)(nil)
)
