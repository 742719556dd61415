package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/Nami-00/cas/contracts"
	json "github.com/bytedance/sonic"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const PubchemBaseUrl = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

// PubChem rejects clients sending more than roughly five requests per second.
const PubchemRequestsPerSecond = 5

const pubchemRequestTimeout = 10 * time.Second

const maxPubchemResponseSize = 1 << 20

var PubchemResponseError = errors.New("unexpected pubchem response")

// PubchemResolver resolves CAS registry numbers through the PUG REST API.
// The shared http.Client and rate limiter are safe for concurrent workers.
type PubchemResolver struct {
	baseUrl string
	client  *http.Client
	limiter *rate.Limiter
}

func NewPubchemResolver(baseUrl string) *PubchemResolver {
	return &PubchemResolver{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client: &http.Client{
			Timeout: pubchemRequestTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(PubchemRequestsPerSecond), PubchemRequestsPerSecond),
	}
}

type pubchemPropertyTable struct {
	PropertyTable struct {
		Properties []pubchemProperty `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemProperty struct {
	MolecularFormula string `json:"MolecularFormula"`
	// the API returns the weight as a JSON string, older responses as a number
	MolecularWeight any `json:"MolecularWeight"`
}

func (r *PubchemResolver) Resolve(ctx context.Context, casNumber string) (result contracts.LookupResult, err error) {
	result = contracts.LookupResult{CasNumber: casNumber}

	if err = r.limiter.Wait(ctx); err != nil {
		return result, fmt.Errorf("pubchem rate limit: %w", err)
	}

	requestUrl := r.baseUrl + "/compound/name/" + url.PathEscape(casNumber) +
		"/property/MolecularFormula,MolecularWeight/JSON"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return result, fmt.Errorf("build pubchem request: %w", err)
	}

	response, err := r.client.Do(request)
	if err != nil {
		return result, fmt.Errorf("pubchem request: %w", err)
	}
	defer response.Body.Close()

	// 404 is how PUG reports an unregistered name, 400 a name it cannot
	// parse at all; both are blank rows, not failures
	if response.StatusCode == http.StatusNotFound || response.StatusCode == http.StatusBadRequest {
		return result, nil
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxPubchemResponseSize))
	if err != nil {
		return result, fmt.Errorf("read pubchem response: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return result, fmt.Errorf("%w: http status %d", PubchemResponseError, response.StatusCode)
	}

	payload := pubchemPropertyTable{}
	if err = json.Unmarshal(body, &payload); err != nil {
		return result, fmt.Errorf("%w: %s", PubchemResponseError, err)
	}

	properties := payload.PropertyTable.Properties
	if len(properties) == 0 {
		return result, nil
	}

	// a registry number can map to several compounds, the first one wins
	property := properties[0]
	if property.MolecularFormula != "" {
		result.MolecularFormula = &property.MolecularFormula
	}
	result.MolecularWeight = weightToFloat(property.MolecularWeight)

	return result, nil
}

func weightToFloat(raw any) *float64 {
	switch value := raw.(type) {
	case float64:
		return &value

	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return &parsed
		}
	}

	return nil
}
