package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MasterDimmy/zipologger"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/goupdate/bigomap/bench"
	"github.com/goupdate/bigomap/complexity"
)

var (
	Timeout = 15 * time.Second
	// benchmark runs can take far longer than a lookup
	RunTimeout = 5 * time.Minute
)

type Client struct {
	baseURL   string
	client    *fasthttp.Client
	error_log *zipologger.Logger
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &fasthttp.Client{
			ReadTimeout:  RunTimeout,
			WriteTimeout: Timeout,
		},
	}
}

func (c *Client) SetErrorLog(log *zipologger.Logger) *Client {
	c.error_log = log
	return c
}

// SetDial replaces the dialer, e.g. with an in-memory listener.
func (c *Client) SetDial(dial fasthttp.DialFunc) *Client {
	c.client.Dial = dial
	return c
}

func (c *Client) logf(format string, args ...interface{}) {
	if c.error_log != nil {
		c.error_log.Print(fmt.Sprintf(format, args...))
	}
}

func (c *Client) do(method, endpoint string, requestBody interface{}, timeout time.Duration) ([]byte, error) {
	var body []byte
	var err error

	if requestBody != nil {
		body, err = json.Marshal(requestBody)
		if err != nil {
			c.logf("%s error: [%s]", endpoint, err.Error())
			return nil, err
		}
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.baseURL + endpoint)
	req.Header.SetMethod(method)
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	err = c.client.DoTimeout(req, resp, timeout)
	if err != nil {
		c.logf("%s timeout: [%s]", endpoint, err.Error())
		return nil, errors.Wrap(err, endpoint)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logf("incorrect status [%d] : [%s]", resp.StatusCode(), string(resp.Body()))
		return nil, errors.Errorf("%s: status %d: %s", endpoint, resp.StatusCode(), string(resp.Body()))
	}

	return bytes.Clone(resp.Body()), nil
}

func (c *Client) post(endpoint string, requestBody interface{}) ([]byte, error) {
	return c.do(fasthttp.MethodPost, endpoint, requestBody, Timeout)
}

func (c *Client) get(endpoint string) ([]byte, error) {
	return c.do(fasthttp.MethodGet, endpoint, nil, Timeout)
}

func (c *Client) decode(endpoint string, response []byte, v interface{}) error {
	if err := json.Unmarshal(response, v); err != nil {
		c.logf("%s error: [%s] : [%s]", endpoint, string(response), err.Error())
		return errors.Wrap(err, endpoint)
	}
	return nil
}

// Run benchmarks one kind, or every configured kind when kind is empty,
// and returns the ids of the stored results.
func (c *Client) Run(kind string) ([]int64, error) {
	req := struct {
		Kind string `json:"kind"`
	}{Kind: kind}

	response, err := c.do(fasthttp.MethodPost, "/api/run", req, RunTimeout)
	if err != nil {
		return nil, err
	}

	var result struct {
		Ids []int64 `json:"ids"`
	}
	err = c.decode("/api/run", response, &result)
	return result.Ids, err
}

// Get returns nil without error when the id is unknown.
func (c *Client) Get(id int64) (*bench.Result, error) {
	response, err := c.get(fmt.Sprintf("/api/get?id=%d", id))
	if err != nil {
		return nil, err
	}
	if len(response) == 0 {
		return nil, nil
	}

	var r bench.Result
	if err := c.decode("/api/get", response, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) All() ([]bench.Result, error) {
	response, err := c.get("/api/all")
	if err != nil {
		return nil, err
	}

	var results []bench.Result
	err = c.decode("/api/all", response, &results)
	return results, err
}

func (c *Client) Find(kind string) ([]bench.Result, error) {
	response, err := c.get("/api/find?kind=" + url.QueryEscape(kind))
	if err != nil {
		return nil, err
	}

	var results []bench.Result
	err = c.decode("/api/find", response, &results)
	return results, err
}

func (c *Client) Delete(id int64) error {
	_, err := c.get(fmt.Sprintf("/api/delete?id=%d", id))
	return err
}

func (c *Client) Clear() error {
	_, err := c.post("/api/clear", nil)
	return err
}

func (c *Client) Classify(samples complexity.Samples) (*complexity.Report, error) {
	response, err := c.post("/api/classify", samples)
	if err != nil {
		return nil, err
	}

	var report complexity.Report
	if err := c.decode("/api/classify", response, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
