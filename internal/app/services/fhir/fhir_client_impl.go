package fhir

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"glucolog-service/internal/app/config"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/fhir_dto"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/goccy/go-json"
)

type fhirClient struct {
	BaseUrl     string
	SendTimeout time.Duration
	PingTimeout time.Duration
	HTTPClient  *http.Client
}

func NewFhirClient(internalConfig *config.InternalConfig) contracts.FhirClient {
	return &fhirClient{
		BaseUrl:     internalConfig.FHIR.BaseUrl,
		SendTimeout: time.Duration(internalConfig.FHIR.SendTimeoutInSecond) * time.Second,
		PingTimeout: time.Duration(internalConfig.FHIR.PingTimeoutInSecond) * time.Second,
		HTTPClient:  &http.Client{},
	}
}

func (c *fhirClient) SendResource(ctx context.Context, resourceType string, resource interface{}) error {
	requestJSON, err := json.Marshal(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.SendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/%s", c.BaseUrl, resourceType), bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return exceptions.ErrFHIRSendResource(err, resourceType)
		}

		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			return exceptions.ErrFHIRSendResource(errors.New(outcome.Issue[0].Diagnostics), resourceType)
		}
		return exceptions.ErrFHIRSendResource(fmt.Errorf("unexpected status %d", resp.StatusCode), resourceType)
	}

	return nil
}

// Ping reports reachability only: any HTTP response at all, whatever its
// status, means the integration engine answered.
func (c *fhirClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.PingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	resp.Body.Close()

	return nil
}

// classifyTransportError splits transport failures into the kinds the
// caller surfaces distinctly: timeout, connection refused, everything else.
// A timed-out send is reported as such, never retried here.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrFHIRRequestTimedOut(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return exceptions.ErrFHIRRequestTimedOut(err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return exceptions.ErrFHIRConnectionRefused(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}
