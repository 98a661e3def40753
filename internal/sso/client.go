// Package sso 通过学校统一身份认证（CAS）门户校验管理员密码。
package sso

import (
	"center_backend/internal/config"
	"center_backend/pkg/tracing"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	defaultExecution = "e1s1"
	maxBodyBytes     = 2 << 20
)

var (
	ErrTokenMissing = errors.New("sso: login ticket not found on login page")
	ErrUnexpected   = errors.New("sso: unexpected response status")
)

// Authority 外部认证源
type Authority interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

// CASClient 模拟浏览器提交 CAS 登录表单
type CASClient struct {
	LoginURL      string
	SuccessMarker string
	UserAgent     string
	Encoder       Encoder
	// HTTPClient 可替换 Transport 以便测试；每次认证都会使用独立的 cookie jar
	HTTPClient *http.Client
}

func NewCASClient(cfg *config.SSOConfig, httpClient *http.Client) *CASClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &CASClient{
		LoginURL:      cfg.LoginURL,
		SuccessMarker: cfg.SuccessMarker,
		UserAgent:     cfg.UserAgent,
		Encoder:       NewDESEncoder(cfg.DESKeys),
		HTTPClient:    httpClient,
	}
}

type loginForm struct {
	action    string
	lt        string
	execution string
}

func (c *CASClient) Authenticate(ctx context.Context, username, password string) (bool, error) {
	ctx, span := tracing.Tracer.Start(ctx, "sso.authenticate")
	defer span.End()
	span.SetAttributes(attribute.String("sso.login_url", c.LoginURL))

	ok, err := c.authenticate(ctx, username, password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Bool("sso.success", ok))
	return ok, err
}

func (c *CASClient) authenticate(ctx context.Context, username, password string) (bool, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return false, err
	}
	client := *c.HTTPClient
	client.Jar = jar

	form, err := c.fetchLoginForm(ctx, &client)
	if err != nil {
		return false, err
	}

	rsa, err := c.Encoder.Encode(username + password + form.lt)
	if err != nil {
		return false, err
	}

	values := url.Values{}
	values.Set("rsa", rsa)
	values.Set("ul", strconv.Itoa(utf16Len(username)))
	values.Set("pl", strconv.Itoa(utf16Len(password)))
	values.Set("lt", form.lt)
	values.Set("execution", form.execution)
	values.Set("_eventId", "submit")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, form.action, strings.NewReader(values.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.decorate(req)

	resp, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, err
	}
	return strings.Contains(string(body), c.SuccessMarker), nil
}

func (c *CASClient) fetchLoginForm(ctx context.Context, client *http.Client) (*loginForm, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LoginURL, nil)
	if err != nil {
		return nil, err
	}
	c.decorate(req)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET login page returned %d", ErrUnexpected, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	ltInput := doc.Find(`input[name="lt"]`).First()
	lt, _ := ltInput.Attr("value")
	if lt == "" {
		return nil, ErrTokenMissing
	}

	execution, _ := doc.Find(`input[name="execution"]`).First().Attr("value")
	if execution == "" {
		execution = defaultExecution
	}

	action := resp.Request.URL.String()
	if raw, ok := ltInput.Closest("form").Attr("action"); ok && strings.TrimSpace(raw) != "" {
		if ref, err := url.Parse(strings.TrimSpace(raw)); err == nil {
			action = resp.Request.URL.ResolveReference(ref).String()
		}
	}

	return &loginForm{action: action, lt: lt, execution: execution}, nil
}

func (c *CASClient) decorate(req *http.Request) {
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
}
