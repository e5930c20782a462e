package bedrock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "bedrock"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "anthropic.claude-3-5-sonnet-20241022-v2:0"

	// DefaultRegion is used when no region is configured.
	DefaultRegion = "us-east-1"

	// DefaultGatewayURL is the Cloudflare AI Gateway root.
	DefaultGatewayURL = "https://gateway.ai.cloudflare.com/v1"

	signingService = "bedrock"
)

// Signer signs a request for AWS. *v4.Signer satisfies it.
type Signer interface {
	SignHTTP(ctx context.Context, credentials aws.Credentials, r *http.Request, payloadHash string, service string, region string, signingTime time.Time, optFns ...func(*v4.SignerOptions)) error
}

// Gateway routes signed requests through a Cloudflare AI Gateway.
type Gateway struct {
	AccountID   string
	GatewayName string
	// BaseURL defaults to DefaultGatewayURL.
	BaseURL string
}

func (g Gateway) enabled() bool {
	return g.AccountID != "" && g.GatewayName != ""
}

// Options configures the Bedrock client.
type Options struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Model           string
	// BaseURL overrides https://bedrock-runtime.{region}.amazonaws.com.
	BaseURL string
	Gateway Gateway

	// Credentials takes precedence over the static keys and the AWS_* environment.
	Credentials aws.CredentialsProvider
	Signer      Signer
	HTTPClient  *http.Client
}

// Client implements llm.Provider over the Bedrock Converse API.
type Client struct {
	region      string
	model       string
	baseURL     string
	gateway     Gateway
	credentials aws.CredentialsProvider
	signer      Signer
	client      *http.Client
	now         func() time.Time
	logger      zerolog.Logger
}

// New creates a new Client. Credentials come from opts, then from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func New(opts Options, logger zerolog.Logger) (*Client, error) {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = DefaultRegion
	}

	creds := opts.Credentials
	if creds == nil {
		static, err := staticCredentials(opts)
		if err != nil {
			return nil, err
		}
		creds = aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return static, nil
		}))
	}

	signer := opts.Signer
	if signer == nil {
		signer = v4.NewSigner()
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", region)
	}

	gateway := opts.Gateway
	if gateway.enabled() && gateway.BaseURL == "" {
		gateway.BaseURL = DefaultGatewayURL
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	return &Client{
		region:      region,
		model:       model,
		baseURL:     baseURL,
		gateway:     gateway,
		credentials: creds,
		signer:      signer,
		client:      httpClient,
		now:         time.Now,
		logger:      logger.With().Str("component", "llm").Str("provider", ProviderName).Logger(),
	}, nil
}

func staticCredentials(opts Options) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     opts.AccessKeyID,
		SecretAccessKey: opts.SecretAccessKey,
		SessionToken:    opts.SessionToken,
		Source:          "codebolt-config",
	}
	if creds.AccessKeyID == "" && creds.SecretAccessKey == "" {
		creds = aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, fmt.Errorf("aws access key id and secret access key are required")
	}
	return creds, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string { return ProviderName }

// Model implements llm.Provider.
func (c *Client) Model() string { return c.model }

// CreateCompletion implements llm.Provider. ConverseStream uses the binary
// AWS event-stream framing, so stream requests are served by Converse.
func (c *Client) CreateCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	if req == nil {
		return nil, llm.NewInvalidRequestError("request is required", nil).WithProvider(ProviderName)
	}
	if err := llm.ValidateMessages(req.Messages); err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	model := req.Model
	if model == "" {
		model = c.model
	}
	if req.Stream {
		c.logger.Debug().Str("model", model).Msg("Streaming not supported, using converse")
	}

	httpReq, err := c.transformRequest(ctx, model, req)
	if err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	httpResp, err := llm.Send(c.client, httpReq)
	if err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}
	requestID := httpResp.Header.Get("X-Amzn-Requestid")

	var body converseResponse
	if err := llm.DecodeResponse(httpResp, &body); err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	resp := transformResponse(&body, model, c.now())
	resp.ID = requestID
	Models.AttachFor(resp, model)
	return resp, nil
}

// GetModels implements llm.Provider.
func (c *Client) GetModels(ctx context.Context) ([]llm.Model, error) {
	return Models.Models(ProviderName), nil
}

// transformRequest builds and signs the Converse call. With a gateway
// configured the request is signed for the AWS host and then re-targeted.
func (c *Client) transformRequest(ctx context.Context, model string, req *llm.ChatCompletionRequest) (*http.Request, error) {
	modelPath := escapeModelID(model)
	endpoint := fmt.Sprintf("%s/model/%s/converse", c.baseURL, modelPath)

	httpReq, payload, err := llm.NewJSONRequest(ctx, http.MethodPost, endpoint, toConverseRequest(req))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")

	creds, err := c.credentials.Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve aws credentials: %w", err)
	}

	sum := sha256.Sum256(payload)
	if err := c.signer.SignHTTP(ctx, creds, httpReq, hex.EncodeToString(sum[:]), signingService, c.region, c.now()); err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	if c.gateway.enabled() {
		target, err := url.Parse(fmt.Sprintf("%s/%s/%s/aws-bedrock/bedrock-runtime/%s/model/%s/converse",
			strings.TrimRight(c.gateway.BaseURL, "/"), c.gateway.AccountID, c.gateway.GatewayName, c.region, modelPath))
		if err != nil {
			return nil, fmt.Errorf("gateway url: %w", err)
		}
		httpReq.URL = target
		httpReq.Host = target.Host
	}
	return httpReq, nil
}

// escapeModelID escapes a model id for use as a path segment. Colons in
// versioned ids are escaped as well.
func escapeModelID(model string) string {
	return strings.ReplaceAll(url.PathEscape(model), ":", "%3A")
}

var _ llm.Provider = (*Client)(nil)
