package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homecrew/homecrew-backend/constants"
)

const extractPrompt = "Read this receipt image and return every line of text you can see, top to bottom, as plain text. Keep amounts and dates exactly as printed. Do not summarize."

// Config holds settings for the vision client.
type Config struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// ExtractText implements TextExtractor against a chat/completions endpoint.
func (c *Client) ExtractText(ctx context.Context, req ExtractRequest) (ExtractResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	dataURL := req.ImageDataURL
	if dataURL == "" {
		var err error
		dataURL, err = readAsDataURL(req.ImagePath)
		if err != nil {
			c.log.Error("vision.extract.read_image_failed", "req_id", rid, "path", req.ImagePath, "error", err)
			return ExtractResult{}, fmt.Errorf("read image: %w", err)
		}
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": extractPrompt},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
	}

	c.log.Info("vision.extract.start", "req_id", rid, "model", c.cfg.Model, "payload_bytes", len(dataURL))

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("vision.extract.http_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return ExtractResult{}, err
	}

	// Validate the envelope shape before trusting any of it.
	if err := ValidateEnvelope(raw); err != nil {
		c.log.Error("vision.extract.bad_envelope", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return ExtractResult{}, fmt.Errorf("vision reply envelope: %w", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return ExtractResult{}, fmt.Errorf("decode vision response: %w", err)
	}
	text := cc.Choices[0].Message.Content
	conf := heuristicConfidence(text)

	c.log.Info("vision.extract.ok",
		"req_id", rid,
		"text_len", len(text),
		"confidence", conf,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return ExtractResult{Text: text, Confidence: conf}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vision http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("vision response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vision status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

func readAsDataURL(path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedImageExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	if st, err := os.Stat(path); err != nil {
		return "", err
	} else if st.Size() > int64(constants.MaxVisionMB)*1024*1024 {
		return "", fmt.Errorf("image exceeds %dMB cap", constants.MaxVisionMB)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		default:
			mt = "image/" + ext
		}
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
